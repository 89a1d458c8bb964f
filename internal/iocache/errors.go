package iocache

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protax/pkg/errcode"
)

// NotFoundError creates an error for when no cache snapshot exists at
// the configured path. This is a recoverable condition; builders
// start from an empty cache.
func NotFoundError(path string) error {
	msg := "No taxonomy cache found at <em>%s</em>"

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CacheNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cache snapshot %s does not exist", path),
	}
}

// ReadError creates an error for when the cache snapshot cannot be
// read.
func ReadError(path string, err error) error {
	msg := "Cannot read taxonomy cache at <em>%s</em>"

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read cache snapshot %s: %w", path, err),
	}
}

// DecodeError creates an error for when the cache snapshot cannot be
// decoded.
func DecodeError(path string, err error) error {
	msg := `Cannot decode taxonomy cache at <em>%s</em>

<em>How to fix:</em>
  1. The snapshot may be corrupted or from an incompatible version
  2. Rebuild it with <em>'protax build --recreate'</em>`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CacheDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode cache snapshot %s: %w", path, err),
	}
}

// EncodeError creates an error for when the cache cannot be encoded.
func EncodeError(err error) error {
	msg := "Cannot encode taxonomy cache"

	return &gn.Error{
		Code: errcode.CacheEncodeError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot encode cache: %w", err),
	}
}

// WriteError creates an error for when the cache snapshot cannot be
// written.
func WriteError(path string, err error) error {
	msg := "Cannot write taxonomy cache to <em>%s</em>"

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CacheWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write cache snapshot %s: %w", path, err),
	}
}
