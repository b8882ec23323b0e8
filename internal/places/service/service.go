// Package service provides the Nearby-Places and Places-By-Id operations that
// proxy the Google Places API.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"strings"
	"time"

	"bumpti_backend/internal/places/client"
	"bumpti_backend/internal/places/placetype"
	"bumpti_backend/internal/places/transport"
	"bumpti_backend/platform/apperr"
	"bumpti_backend/platform/logger"
	"bumpti_backend/platform/sanitize"
	"bumpti_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

const (
	msgInvalidCoordinates = "Missing or invalid coordinates"
	msgTypesRequired      = "At least one place type is required"
	msgKeyNotConfigured   = "Google Places API key not configured"
	msgIDsRequired        = "placeIds must be a non-empty array"
	msgTooManyIDs         = "Maximum 50 placeIds per request"
	msgBlankID            = "placeIds must contain non-empty strings"
	msgNearbyUpstream     = "Failed to fetch from Google Places API"
	msgUnknownName        = "Unknown"

	maxKeywordRunes = 200
)

// PlacesAPI is the upstream the service talks to; *client.Client satisfies it.
type PlacesAPI interface {
	SearchNearby(ctx context.Context, apiKey string, body client.SearchNearbyRequest) ([]client.Place, error)
	GetPlace(ctx context.Context, apiKey, placeID string) (client.Place, error)
}

// Service implements both place lookups. It holds no per-request state.
type Service struct {
	api     PlacesAPI
	creds   CredentialProvider
	val     *validator.Validator
	log     *logger.Logger
	timeout time.Duration
}

// New creates the places service. timeout bounds each operation end to end;
// zero disables the bound.
func New(api PlacesAPI, creds CredentialProvider, val *validator.Validator, log *logger.Logger, timeout time.Duration) *Service {
	return &Service{
		api:     api,
		creds:   creds,
		val:     val,
		log:     log,
		timeout: timeout,
	}
}

// nearbyOptions holds the defaulted optional fields for validation.
type nearbyOptions struct {
	Radius         int    `json:"radius" validate:"min=1,max=50000"`
	RankPreference string `json:"rankPreference" validate:"oneof=POPULARITY DISTANCE"`
	MaxResultCount int    `json:"maxResultCount" validate:"min=1,max=20"`
}

// NearbyPlaces searches around a coordinate for the requested place types.
func (s *Service) NearbyPlaces(ctx context.Context, req transport.NearbyPlacesRequest) (transport.PlacesResponse, error) {
	if !validCoordinates(req.Lat, req.Lng) {
		return transport.PlacesResponse{}, apperr.InvalidArgument(msgInvalidCoordinates)
	}
	if len(req.Types) == 0 {
		return transport.PlacesResponse{}, apperr.InvalidArgument(msgTypesRequired)
	}
	for _, t := range req.Types {
		if !placetype.IsKnown(string(t)) {
			return transport.PlacesResponse{}, apperr.InvalidArgument(fmt.Sprintf("Unknown place type: %s", t))
		}
		if placetype.IsExcluded(t) {
			return transport.PlacesResponse{}, apperr.InvalidArgument(fmt.Sprintf("Place type %s is excluded from search", t))
		}
	}

	opts := nearbyOptions{
		Radius:         transport.DefaultRadius,
		RankPreference: transport.RankPopularity,
		MaxResultCount: transport.DefaultMaxResultCount,
	}
	if req.Radius != nil {
		opts.Radius = *req.Radius
	}
	if req.RankPreference != "" {
		opts.RankPreference = req.RankPreference
	}
	if req.MaxResultCount != nil {
		opts.MaxResultCount = *req.MaxResultCount
	}
	if err := s.val.Struct(opts); err != nil {
		return transport.PlacesResponse{}, apperr.InvalidArgument(validator.Message(err))
	}

	apiKey, err := s.creds.APIKey(ctx)
	if err != nil || apiKey == "" {
		if err != nil {
			s.log.WithContext(ctx).Error("resolve places api key failed", "error", err)
		}
		return transport.PlacesResponse{}, apperr.FailedPrecondition(msgKeyNotConfigured)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	included := placetype.Strings(req.Types)
	body := client.SearchNearbyRequest{
		IncludedTypes:  included,
		ExcludedTypes:  placetype.Strings(placetype.Excluded()),
		RankPreference: opts.RankPreference,
		MaxResultCount: opts.MaxResultCount,
		LocationRestriction: client.LocationRestriction{Circle: client.Circle{
			Center: client.LatLng{Latitude: *req.Lat, Longitude: *req.Lng},
			Radius: float64(opts.Radius),
		}},
		Keyword: sanitize.Keyword(req.Keyword, maxKeywordRunes),
	}

	raw, err := s.api.SearchNearby(ctx, apiKey, body)
	if err != nil {
		return transport.PlacesResponse{}, nearbyError(err)
	}

	places := make([]transport.Place, 0, len(raw))
	for _, p := range raw {
		places = append(places, normalizeNearby(p, included))
	}
	return transport.PlacesResponse{Places: places}, nil
}

// PlacesByIDs resolves a batch of place ids concurrently. The batch is
// all-or-nothing: one failed lookup fails the whole call.
func (s *Service) PlacesByIDs(ctx context.Context, req transport.PlacesByIDsRequest) (transport.PlacesResponse, error) {
	if len(req.PlaceIDs) == 0 {
		return transport.PlacesResponse{}, apperr.InvalidArgument(msgIDsRequired)
	}
	if len(req.PlaceIDs) > transport.MaxPlaceIDs {
		return transport.PlacesResponse{}, apperr.InvalidArgument(msgTooManyIDs)
	}
	for _, id := range req.PlaceIDs {
		if strings.TrimSpace(id) == "" {
			return transport.PlacesResponse{}, apperr.InvalidArgument(msgBlankID)
		}
	}

	apiKey, err := s.creds.APIKey(ctx)
	if err != nil || apiKey == "" {
		if err != nil {
			s.log.WithContext(ctx).Error("resolve places api key failed", "error", err)
		}
		return transport.PlacesResponse{}, apperr.Internal(msgKeyNotConfigured)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	places := make([]transport.Place, len(req.PlaceIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range req.PlaceIDs {
		g.Go(func() error {
			raw, err := s.api.GetPlace(gctx, apiKey, id)
			if err != nil {
				return byIDError(id, err)
			}
			places[i] = normalizeByID(raw, id)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.WithContext(ctx).Warn("places batch lookup failed", "count", len(req.PlaceIDs), "error", err)
		return transport.PlacesResponse{}, err
	}
	return transport.PlacesResponse{Places: places}, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func validCoordinates(lat, lng *float64) bool {
	if lat == nil || lng == nil {
		return false
	}
	if math.IsNaN(*lat) || math.IsNaN(*lng) {
		return false
	}
	return *lat >= -90 && *lat <= 90 && *lng >= -180 && *lng <= 180
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func nearbyError(err error) *apperr.Error {
	var statusErr *client.StatusError
	switch {
	case errors.As(err, &statusErr):
		return apperr.Wrap(apperr.KindUnknown, fmt.Sprintf("%s: %d - %s", msgNearbyUpstream, statusErr.Status, statusErr.Body), err)
	case isTimeout(err):
		return apperr.Wrap(apperr.KindDeadlineExceeded, msgNearbyUpstream+": request timed out", err)
	default:
		return apperr.Wrap(apperr.KindUnknown, fmt.Sprintf("%s: %v", msgNearbyUpstream, err), err)
	}
}

func byIDError(placeID string, err error) *apperr.Error {
	prefix := "Failed to fetch place " + placeID
	var statusErr *client.StatusError
	switch {
	case errors.As(err, &statusErr):
		return apperr.Wrap(apperr.KindInternal, fmt.Sprintf("%s: %d - %s", prefix, statusErr.Status, statusErr.Body), err)
	case isTimeout(err):
		return apperr.Wrap(apperr.KindDeadlineExceeded, prefix+": request timed out", err)
	default:
		return apperr.Wrap(apperr.KindInternal, fmt.Sprintf("%s: %v", prefix, err), err)
	}
}
