// Package media stores product images on an afero filesystem.
package media

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/junaidrashid-git/armory-api/models"
	"github.com/spf13/afero"
)

type Store struct {
	fs  afero.Fs
	dir string
}

// New keeps images under dir on fs.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: filepath.Clean(dir)}
}

// NewOS stores images on the local disk.
func NewOS(dir string) *Store {
	return New(afero.NewOsFs(), dir)
}

// Dir is the directory images are written to.
func (s *Store) Dir() string { return s.dir }

// Fs is the filesystem images are written to.
func (s *Store) Fs() afero.Fs { return s.fs }

// FileName is the name the image of code is stored under.
func FileName(code string) string {
	return (&models.Product{Code: code}).ImageName()
}

func (s *Store) path(code string) (string, error) {
	if code == "" || strings.ContainsAny(code, `/\`) || code == "." || code == ".." {
		return "", fmt.Errorf("media: invalid product code %q", code)
	}
	return filepath.Join(s.dir, FileName(code)), nil
}

// Save writes r as the image of code, replacing any previous one, and
// returns the stored file name.
func (s *Store) Save(code string, r io.Reader) (string, error) {
	path, err := s.path(code)
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = s.fs.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return FileName(code), nil
}

// Remove deletes the image of code. A missing image is not an error.
func (s *Store) Remove(code string) error {
	path, err := s.path(code)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) Exists(code string) (bool, error) {
	path, err := s.path(code)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, path)
}

// HTTP exposes the image directory read-only.
func (s *Store) HTTP() http.FileSystem {
	return afero.NewHttpFs(afero.NewReadOnlyFs(afero.NewBasePathFs(s.fs, s.dir)))
}
