package feed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the curated configuration of the home feed.
type Catalog struct {
	// FeaturedPlaceIDs are resolved through the by-id lookup, in order.
	FeaturedPlaceIDs []string `yaml:"featuredPlaceIds"`
	// NearbyRadius overrides the server default radius when positive.
	NearbyRadius int `yaml:"nearbyRadius"`
	// NearbyMaxResults overrides the server default result cap when positive.
	NearbyMaxResults int `yaml:"nearbyMaxResults"`
}

// DefaultCatalog has no featured places and uses the server defaults.
func DefaultCatalog() Catalog {
	return Catalog{}
}

// LoadCatalog reads a YAML catalog. An empty path or a missing file yields
// DefaultCatalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultCatalog(), nil
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("read featured catalog: %w", err)
	}

	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse featured catalog: %w", err)
	}

	ids := make([]string, 0, len(cat.FeaturedPlaceIDs))
	seen := make(map[string]struct{}, len(cat.FeaturedPlaceIDs))
	for _, id := range cat.FeaturedPlaceIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) > maxFeatured {
		return Catalog{}, fmt.Errorf("featured catalog lists %d places, at most %d allowed", len(ids), maxFeatured)
	}
	cat.FeaturedPlaceIDs = ids

	if cat.NearbyRadius < 0 || cat.NearbyRadius > 50000 {
		return Catalog{}, fmt.Errorf("nearbyRadius %d out of range", cat.NearbyRadius)
	}
	if cat.NearbyMaxResults < 0 || cat.NearbyMaxResults > 20 {
		return Catalog{}, fmt.Errorf("nearbyMaxResults %d out of range", cat.NearbyMaxResults)
	}
	return cat, nil
}
