package objectstore

import "errors"

// ErrUnsupportedContentType is returned when the requested avatar content
// type is not one of the four allowed image MIME types.
var ErrUnsupportedContentType = errors.New("Invalid content type. Allowed: png, jpeg, gif, webp")
