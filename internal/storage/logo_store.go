package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LogoStore holds uploaded airline logos. Paths returned by Store are
// relative references suitable for persisting on the airline record.
type LogoStore interface {
	Store(originalName string, content io.Reader) (string, error)
	Delete(path string) error
	Exists(path string) bool
}

// DiskLogoStore writes logos under a root directory with randomized
// filenames, keeping the original extension for content-type sniffing by
// static file servers.
type DiskLogoStore struct {
	root string
}

func NewDiskLogoStore(root string) (*DiskLogoStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logo directory: %w", err)
	}
	return &DiskLogoStore{root: root}, nil
}

func (s *DiskLogoStore) Store(originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("failed to create logo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("failed to write logo file: %w", err)
	}
	return name, nil
}

func (s *DiskLogoStore) Delete(path string) error {
	if err := os.Remove(filepath.Join(s.root, filepath.Base(path))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete logo file: %w", err)
	}
	return nil
}

func (s *DiskLogoStore) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(s.root, filepath.Base(path)))
	return err == nil
}
