package ports

import "errors"

// ErrBlobNotFound is returned by BlobStore.Get for ids that were never stored or have been released.
var ErrBlobNotFound = errors.New("blob not found")
