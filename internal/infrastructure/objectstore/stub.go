package objectstore

import (
	"context"
	"errors"
	"time"
)

// StubObjectStore is a placeholder object store for development. URLs it
// returns are not usable; they only let the surrounding flows run without
// a real backend.
type StubObjectStore struct {
	// BaseURL is the base URL for generated upload/download URLs
	BaseURL string
}

// NewStubObjectStore creates a new StubObjectStore
func NewStubObjectStore() *StubObjectStore {
	return &StubObjectStore{
		BaseURL: "https://storage.example.com",
	}
}

// GenerateUploadURL generates a stub upload URL
func (s *StubObjectStore) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// GenerateDownloadURL generates a stub download URL
func (s *StubObjectStore) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/download/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// DeleteObject is a no-op stub that always succeeds
func (s *StubObjectStore) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	return nil
}

// ObjectExists always reports true so confirmation flows can run in
// development
func (s *StubObjectStore) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	return true, nil
}
