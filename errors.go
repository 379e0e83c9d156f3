package translate

import "errors"

// ErrNoPaths indicates a loader was built without any file paths.
var ErrNoPaths = errors.New("translate: no loader paths configured")

// ErrUnsupportedFormat indicates a dictionary file extension with no decoder.
var ErrUnsupportedFormat = errors.New("translate: unsupported dictionary format")

// ErrInvalidDictionary indicates a document that decodes to neither a
// language keyed dictionary nor a flat translation table.
var ErrInvalidDictionary = errors.New("translate: invalid dictionary document")
