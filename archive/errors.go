package archive

import "errors"

// ErrInvalidMagic is returned when an archive or target header's magic
// number does not match the expected constant.
var ErrInvalidMagic = errors.New("archive: invalid magic number")

// ErrTruncated is returned when an archive or target header is shorter
// than its declared structure requires.
var ErrTruncated = errors.New("archive: truncated data")

// ErrEntryOutOfRange is returned by Archive.Entry for an index outside
// [0, Count()).
var ErrEntryOutOfRange = errors.New("archive: entry index out of range")
