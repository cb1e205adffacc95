package activity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/ports"
)

// Scanner walks a directory tree and reports regular files. Directories
// whose name starts with "." are not descended into.
type Scanner struct {
	root string
}

var _ ports.FileScanner = (*Scanner)(nil)

// NewScanner scans root, or the working directory at scan time when root
// is empty.
func NewScanner(root string) *Scanner {
	root = strings.TrimSpace(root)
	if root != "" {
		root = filepath.Clean(root)
	}
	return &Scanner{root: root}
}

func (s *Scanner) Scan(ctx context.Context, visit func(domain.FileRecord) bool) error {
	root, err := s.resolveRoot()
	if err != nil {
		return err
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return fmt.Errorf("walk %s: %w", root, walkErr)
			}
			// Unreadable entries are skipped.
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if entry.IsDir() {
			if path != root && isHidden(entry.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return nil
		}

		if !visit(domain.FileRecord{Path: path, Type: "file", ModTime: info.ModTime()}) {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.SkipAll) {
		return err
	}

	return nil
}

func (s *Scanner) resolveRoot() (string, error) {
	if s.root != "" {
		return s.root, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Clean(wd), nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
