package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv keeps one file per key in a flat directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// OpenDiskv creates a Diskv store rooted at basePath.
func OpenDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			Transform: flatTransform,
			// Other processes rewrite these files; always read from disk.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}, nil
}

func flatTransform(string) []string {
	return []string{}
}

func (p *Diskv) Get(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *Diskv) Set(key string, val []byte) error {
	if err := p.d.Write(key, val); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *Diskv) Keys() []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(nil) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BasePath is the directory holding the key files.
func (p *Diskv) BasePath() string {
	return p.basePath
}

func (p *Diskv) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.Base(rel)
}
