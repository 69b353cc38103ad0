package multihash

import "errors"

var (
	// ErrFileNotFound is returned when the target path does
	// not exist at the time the file is read.
	ErrFileNotFound = errors.New("file not found")

	// ErrReadFailure is returned for any other failure while
	// opening or reading the target file.
	ErrReadFailure = errors.New("read failure")

	// ErrUnsupportedAlgorithm is returned for identifiers
	// outside the supported algorithm set.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)
