package local

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestSave_WritesFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := NewFileStore(dir, newTestLogger())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	// Act
	name, err := store.Save("MTR-001_20240315143045.jpg", strings.NewReader("image bytes"))

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if name != "MTR-001_20240315143045.jpg" {
		t.Errorf("expected name preserved, got %q", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("expected stored file: %v", err)
	}
	if string(data) != "image bytes" {
		t.Errorf("unexpected file contents: %q", data)
	}
}

func TestSave_SanitizesName(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := NewFileStore(dir, newTestLogger())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	// Act
	name, err := store.Save("../../etc/pass wd.jpg", strings.NewReader("x"))

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.ContainsAny(name, "/\\ ") {
		t.Errorf("expected sanitized name, got %q", name)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Errorf("expected file inside upload dir: %v", err)
	}
}

func TestSave_RejectsEmptyName(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := NewFileStore(dir, newTestLogger())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	// Act
	_, err = store.Save("..", strings.NewReader("x"))

	// Assert
	if err == nil {
		t.Fatal("expected error for unusable name")
	}
}
