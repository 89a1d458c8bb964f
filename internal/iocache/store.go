// Package iocache implements the durable store for taxonomy cache
// snapshots. The whole cache is serialized as one GOB-encoded blob;
// there is no partial or streaming access.
package iocache

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/gnames/protax/pkg/errcode"
	"github.com/gnames/protax/pkg/taxon"
)

// Store loads and saves taxonomy cache snapshots at one configured
// path. A snapshot is the entire organism-to-record mapping.
type Store interface {
	// Load deserializes the full snapshot. A missing snapshot is
	// reported with a CacheNotFoundError; callers treat it as "start
	// from an empty cache", not as fatal.
	Load() (taxon.Cache, error)

	// Save writes the full snapshot, replacing any prior one. The
	// write is atomic: a partially written file is never visible
	// under the snapshot path.
	Save(cache taxon.Cache) error

	// Path returns the snapshot location.
	Path() string
}

// store implements the Store interface.
type store struct {
	path string
}

// New creates a Store backed by the file at path.
func New(path string) Store {
	return &store{path: path}
}

func (s *store) Path() string {
	return s.path
}

func (s *store) Load() (taxon.Cache, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, NotFoundError(s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		slog.Error("Cannot read taxonomy cache", "error", err, "path", s.path)
		return nil, ReadError(s.path, err)
	}

	enc := gnfmt.GNgob{}
	var res taxon.Cache
	if err = enc.Decode(data, &res); err != nil {
		slog.Error("Cannot decode taxonomy cache", "error", err, "path", s.path)
		return nil, DecodeError(s.path, err)
	}

	return res, nil
}

func (s *store) Save(cache taxon.Cache) error {
	dir := filepath.Dir(s.path)
	if err := gnsys.MakeDir(dir); err != nil {
		slog.Error("Cannot create cache directory", "error", err, "dir", dir)
		return WriteError(s.path, err)
	}

	enc := gnfmt.GNgob{}
	data, err := enc.Encode(cache)
	if err != nil {
		slog.Error("Cannot encode taxonomy cache", "error", err)
		return EncodeError(err)
	}

	// write-then-rename keeps the previous snapshot intact until the
	// new one is complete
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return WriteError(s.path, err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return WriteError(s.path, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return WriteError(s.path, err)
	}

	if err = os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return WriteError(s.path, err)
	}

	return nil
}

// IsNotFound reports whether err is a missing-snapshot condition.
func IsNotFound(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.CacheNotFoundError
	}
	return false
}
