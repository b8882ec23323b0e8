package onboarding

import (
	"context"
	"strings"

	"bumpti_backend/platform/apperr"
	"bumpti_backend/platform/kv"
	"bumpti_backend/platform/logger"
)

const (
	onboardedKey   = "hasOnboarded"
	onboardedValue = "true"
)

// Service persists the onboarding-completed flag.
type Service struct {
	store kv.Store
	log   *logger.Logger
}

func NewService(store kv.Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// Complete marks userID as onboarded. Repeated calls are harmless.
func (s *Service) Complete(ctx context.Context, userID string) error {
	key, err := flagKey(userID)
	if err != nil {
		return err
	}
	if err := s.store.SetItem(ctx, key, onboardedValue); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Failed to save onboarding state", err)
	}
	s.log.WithContext(ctx).Info("onboarding completed")
	return nil
}

// HasOnboarded reports whether userID completed the flow.
func (s *Service) HasOnboarded(ctx context.Context, userID string) (bool, error) {
	key, err := flagKey(userID)
	if err != nil {
		return false, err
	}
	value, ok, err := s.store.GetItem(ctx, key)
	if err != nil {
		return false, apperr.Wrap(apperr.KindInternal, "Failed to read onboarding state", err)
	}
	return ok && value == onboardedValue, nil
}

func flagKey(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", apperr.Unauthenticated("missing user")
	}
	return onboardedKey + ":" + userID, nil
}
