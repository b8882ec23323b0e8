// Command placesctl calls the places callables the way the mobile client does
// and prints the result as JSON.
//
//	placesctl nearby -lat -23.55 -lng -46.63 -types bar,night_club
//	placesctl featured -ids ChIJa,ChIJb
//	placesctl home -lat -23.55 -lng -46.63 -category cafes
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bumpti_backend/internal/feed"
	"bumpti_backend/internal/places/gateway"
	"bumpti_backend/internal/places/placetype"
	"bumpti_backend/platform/callable"
	"bumpti_backend/platform/config"
	"bumpti_backend/platform/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	types := fs.String("types", "", "comma-separated place types")
	keyword := fs.String("keyword", "", "free-text filter")
	radius := fs.Int("radius", 0, "search radius in meters")
	rank := fs.String("rank", "", "POPULARITY or DISTANCE")
	ids := fs.String("ids", "", "comma-separated place ids")
	category := fs.String("category", "", "home category id")
	timeout := fs.Duration("timeout", 30*time.Second, "overall timeout")
	_ = fs.Parse(os.Args[2:])

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	opts := []callable.Option{}
	if token := cfg.GetCallableIDToken(); token != "" {
		opts = append(opts, callable.WithTokenSource(callable.StaticToken(token)))
	}
	gw := gateway.New(callable.NewClient(cfg.GetCallableBaseURL(), opts...), log)

	var out any
	switch os.Args[1] {
	case "nearby":
		var nearbyOpts []gateway.Option
		if *keyword != "" {
			nearbyOpts = append(nearbyOpts, gateway.WithKeyword(*keyword))
		}
		if *radius > 0 {
			nearbyOpts = append(nearbyOpts, gateway.WithRadius(*radius))
		}
		if *rank != "" {
			nearbyOpts = append(nearbyOpts, gateway.WithRankPreference(strings.ToUpper(*rank)))
		}
		out, err = gw.GetNearbyPlaces(ctx, *lat, *lng, parseTypes(*types), nearbyOpts...)
	case "featured":
		out = gw.GetFeaturedPlaces(ctx, splitCSV(*ids))
	case "home":
		catalog, loadErr := feed.LoadCatalog(cfg.GetFeaturedPlacesFile())
		if loadErr != nil {
			log.Error("failed to load featured catalog", "error", loadErr)
			os.Exit(1)
		}
		if extra := splitCSV(*ids); len(extra) > 0 {
			catalog.FeaturedPlaceIDs = extra
		}
		f := feed.New(gw, feed.StaticLocator{Lat: *lat, Lng: *lng}, catalog, log)
		out, err = f.Home(ctx, *category)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error("call failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("failed to write output", "error", err)
		os.Exit(1)
	}
}

func parseTypes(raw string) []placetype.PlaceType {
	var types []placetype.PlaceType
	for _, s := range splitCSV(raw) {
		types = append(types, placetype.PlaceType(s))
	}
	return types
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: placesctl <nearby|featured|home> [flags]")
}
