package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Taxonomy lookup errors
	LookupRequestError
	LookupStatusError
	LookupDecodeError

	// Cache store errors
	CacheNotFoundError
	CacheDecodeError
	CacheEncodeError
	CacheWriteError

	// Sequence table errors
	SeqFileReadError
	SeqFileWriteError
	FastaFileError
	FastaHeaderError

	// Labeling errors
	MissingLineageError

	// Balancing errors
	InsufficientSamplesError
)
