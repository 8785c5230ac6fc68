// Package backup copies the product image directory once a day and prunes
// old copies.
package backup

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const stampLayout = "2006-01-02_15-04-05"

type Scheduler struct {
	fs        afero.Fs
	src       string
	dst       string
	retention time.Duration
	hour      int
	minute    int
}

// New backs src up into dst at hour:00 every day, keeping copies for
// retention.
func New(fs afero.Fs, src, dst string, retention time.Duration, hour int) *Scheduler {
	return &Scheduler{fs: fs, src: src, dst: dst, retention: retention, hour: hour}
}

// NextRun is the first scheduled time strictly after now.
func (s *Scheduler) NextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := s.NextRun(time.Now())
		log.Info().Time("next", next).Msg("next image backup scheduled")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case at := <-timer.C:
			if dir, err := s.Backup(at); err != nil {
				log.Error().Err(err).Msg("image backup failed")
			} else {
				log.Info().Str("dir", dir).Msg("images backed up")
			}
			s.Cleanup(at)
		}
	}
}

// Backup copies the source directory into a new timestamped directory.
func (s *Scheduler) Backup(at time.Time) (string, error) {
	dest := filepath.Join(s.dst, at.Format(stampLayout))
	return dest, s.copyDir(s.src, dest)
}

func (s *Scheduler) copyDir(src, dest string) error {
	entries, err := afero.ReadDir(s.fs, src)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			err = s.copyDir(from, to)
		} else {
			err = s.copyFile(from, to)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) copyFile(src, dest string) error {
	in, err := s.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := s.fs.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// Cleanup removes backup directories last modified before now minus the
// retention window and returns their paths.
func (s *Scheduler) Cleanup(now time.Time) []string {
	entries, err := afero.ReadDir(s.fs, s.dst)
	if err != nil {
		log.Error().Err(err).Str("dir", s.dst).Msg("cannot read backup directory")
		return nil
	}

	cutoff := now.Add(-s.retention)
	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() || !entry.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(s.dst, entry.Name())
		if err := s.fs.RemoveAll(path); err != nil {
			log.Error().Err(err).Str("dir", path).Msg("cannot remove old backup")
			continue
		}
		log.Info().Str("dir", path).Msg("old backup removed")
		removed = append(removed, path)
	}
	return removed
}
