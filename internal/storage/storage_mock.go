package storage

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockFileStorage is a mock implementation of FileStorage for testing.
type MockFileStorage struct {
	mock.Mock
}

var _ FileStorage = &MockFileStorage{} // Compile-time check

func (m *MockFileStorage) PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error {
	return m.Called(ctx, objectKey, contentType, body).Error(0)
}

func (m *MockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expires)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	return m.Called(ctx, objectKey).Error(0)
}
