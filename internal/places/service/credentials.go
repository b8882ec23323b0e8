package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// CredentialProvider resolves the Places API key for a call.
// An empty key with a nil error means the key is not configured.
type CredentialProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// StaticKey is a key resolved once at startup, typically from the environment.
type StaticKey string

func (k StaticKey) APIKey(context.Context) (string, error) {
	return strings.TrimSpace(string(k)), nil
}

// FileKey reads the key from a mounted secret file on every call, so a
// rotated secret is picked up without a restart.
type FileKey struct {
	Path string
}

func (k FileKey) APIKey(context.Context) (string, error) {
	data, err := os.ReadFile(k.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read api key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// FirstKey tries each provider in order and returns the first non-empty key.
type FirstKey []CredentialProvider

func (ks FirstKey) APIKey(ctx context.Context) (string, error) {
	for _, k := range ks {
		key, err := k.APIKey(ctx)
		if err != nil {
			return "", err
		}
		if key != "" {
			return key, nil
		}
	}
	return "", nil
}
