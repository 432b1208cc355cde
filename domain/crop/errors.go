package crop

import "errors"

var (
	// ErrImageLoad is returned when a path does not resolve to a decodable image.
	ErrImageLoad = errors.New("image load failed")
	// ErrEncode is returned when the cropped image cannot be encoded.
	ErrEncode = errors.New("image encode failed")
	// ErrIO is returned when the output file cannot be created or moved into place.
	ErrIO = errors.New("image write failed")
	// ErrNoSourceFile is returned when saving an image that was not loaded from a file.
	ErrNoSourceFile = errors.New("image has no source file")
)
