// Package feed composes the home screen: curated featured places plus places
// near the device for a selected category.
package feed

import (
	"context"
	"fmt"

	"bumpti_backend/internal/places/gateway"
	"bumpti_backend/internal/places/placetype"
	"bumpti_backend/internal/places/transport"
	"bumpti_backend/platform/apperr"
	"bumpti_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const maxFeatured = transport.MaxPlaceIDs

// Coordinates is a device position.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Locator supplies the current device location.
type Locator interface {
	CurrentLocation(ctx context.Context) (Coordinates, error)
}

// StaticLocator always reports the same position.
type StaticLocator Coordinates

func (l StaticLocator) CurrentLocation(context.Context) (Coordinates, error) {
	return Coordinates(l), nil
}

// PlacesGateway is the subset of *gateway.Gateway the feed needs.
type PlacesGateway interface {
	GetNearbyPlaces(ctx context.Context, lat, lng float64, types []placetype.PlaceType, opts ...gateway.Option) ([]transport.Place, error)
	GetFeaturedPlaces(ctx context.Context, placeIDs []string) []transport.Place
}

// Home is one rendering of the home screen.
type Home struct {
	Category placetype.Category `json:"category"`
	Featured []transport.Place  `json:"featured"`
	Nearby   []transport.Place  `json:"nearby"`
}

type Feed struct {
	places  PlacesGateway
	locator Locator
	catalog Catalog
	log     *logger.Logger
}

func New(places PlacesGateway, locator Locator, catalog Catalog, log *logger.Logger) *Feed {
	return &Feed{places: places, locator: locator, catalog: catalog, log: log}
}

// Home builds the feed for categoryID; an empty id selects the first
// category. Featured lookups never fail the feed; nearby failures do.
// Nearby places that are also featured are dropped.
func (f *Feed) Home(ctx context.Context, categoryID string) (Home, error) {
	category, err := resolveCategory(categoryID)
	if err != nil {
		return Home{}, err
	}

	loc, err := f.locator.CurrentLocation(ctx)
	if err != nil {
		return Home{}, apperr.Wrap(apperr.KindFailedPrecondition, "Device location unavailable", err)
	}

	home := Home{Category: category, Featured: []transport.Place{}}

	g, gctx := errgroup.WithContext(ctx)
	if len(f.catalog.FeaturedPlaceIDs) > 0 {
		g.Go(func() error {
			home.Featured = f.places.GetFeaturedPlaces(gctx, f.catalog.FeaturedPlaceIDs)
			return nil
		})
	}
	g.Go(func() error {
		nearby, err := f.places.GetNearbyPlaces(gctx, loc.Lat, loc.Lng, category.Types, f.nearbyOptions()...)
		if err != nil {
			return err
		}
		home.Nearby = nearby
		return nil
	})
	if err := g.Wait(); err != nil {
		return Home{}, err
	}

	home.Nearby = withoutFeatured(home.Nearby, home.Featured)

	f.log.WithContext(ctx).Debug("home feed built",
		"category", category.ID,
		"featured", len(home.Featured),
		"nearby", len(home.Nearby),
	)
	return home, nil
}

func (f *Feed) nearbyOptions() []gateway.Option {
	var opts []gateway.Option
	if f.catalog.NearbyRadius > 0 {
		opts = append(opts, gateway.WithRadius(f.catalog.NearbyRadius))
	}
	if f.catalog.NearbyMaxResults > 0 {
		opts = append(opts, gateway.WithMaxResultCount(f.catalog.NearbyMaxResults))
	}
	return opts
}

func resolveCategory(id string) (placetype.Category, error) {
	if id == "" {
		return placetype.Categories()[0], nil
	}
	category, ok := placetype.CategoryByID(id)
	if !ok {
		return placetype.Category{}, apperr.NotFound(fmt.Sprintf("Unknown category: %s", id))
	}
	return category, nil
}

func withoutFeatured(nearby, featured []transport.Place) []transport.Place {
	if len(featured) == 0 {
		return nearby
	}
	ids := make(map[string]struct{}, len(featured))
	for _, p := range featured {
		ids[p.PlaceID] = struct{}{}
	}
	out := make([]transport.Place, 0, len(nearby))
	for _, p := range nearby {
		if _, ok := ids[p.PlaceID]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}
