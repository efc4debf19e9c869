package ocr

import "errors"

// ErrDecode is returned when the slip image cannot be decoded at all.
// The pipeline aborts; no partial buffer is produced.
var ErrDecode = errors.New("image decode failed")

// ErrEngine is returned when a recognition engine call fails. The pipeline
// aborts; no partial result set is returned. Everything downstream of
// recognition degrades to defaults instead of erroring.
var ErrEngine = errors.New("recognition engine failed")
