package mocks

import (
	"bytes"
	"context"
	"io"

	"github.com/powerdash/powerdash/internal/domain"
)

// MockAnomalyDetector is a mock implementation of AnomalyDetector
type MockAnomalyDetector struct {
	CheckLatestFunc func(ctx context.Context, companyID, meterID string) (*domain.Alert, error)
	Calls           []string
}

func (m *MockAnomalyDetector) CheckLatest(ctx context.Context, companyID, meterID string) (*domain.Alert, error) {
	m.Calls = append(m.Calls, meterID)
	if m.CheckLatestFunc != nil {
		return m.CheckLatestFunc(ctx, companyID, meterID)
	}
	return nil, nil
}

// MockFileStore is a mock implementation of FileStore that keeps files in memory
type MockFileStore struct {
	Files    map[string][]byte
	SaveFunc func(name string, r io.Reader) (string, error)
}

func NewMockFileStore() *MockFileStore {
	return &MockFileStore{
		Files: make(map[string][]byte),
	}
}

func (m *MockFileStore) Save(name string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(name, r)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	m.Files[name] = buf.Bytes()
	return name, nil
}
