package domain

import "go.trai.ch/zerr"

var (
	// ErrFileNotFound is returned when a specific file path is loaded
	// directly and does not exist. Dataset lookups never return it; a
	// dataset missing from every search directory is an empty mapping.
	ErrFileNotFound = zerr.New("file not found")

	// ErrParse is returned when a dataset file cannot be decoded in its
	// declared format. It always carries the offending path as metadata.
	ErrParse = zerr.New("invalid dataset file")

	// ErrUnsupportedFormat is returned when a file extension selects no
	// known parser.
	ErrUnsupportedFormat = zerr.New("unsupported dataset format")

	// ErrProfileNotFound is returned when a plant profile does not exist.
	ErrProfileNotFound = zerr.New("profile not found")

	// ErrPendingNotFound is returned when a pending threshold record does
	// not exist.
	ErrPendingNotFound = zerr.New("pending record not found")

	// ErrInvalidProfile is returned when a profile fails validation.
	ErrInvalidProfile = zerr.New("invalid profile")
)
