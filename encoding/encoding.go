// Package encoding provides the generic API implemented by parquet value
// encodings used on the write path: PLAIN (for values and for the fallback
// re-encode of an abandoned dictionary) and the RLE/dictionary-index family
// used by dictionary-encoded pages.
//
// The page writer only depends on these interfaces; the bit-exact layout of
// any individual run of values is an external collaborator's concern.
package encoding

import (
	"errors"
	"io"

	"github.com/parquetcore/pagewriter/format"
)

// ErrNotSupported is returned when an encoding cannot serialize a given
// physical type.
var ErrNotSupported = errors.New("encoding: not supported for this type")

// Encoding identifies a parquet value encoding and constructs encoders and
// decoders for it.
type Encoding interface {
	// Encoding returns the on-disk code for this encoding.
	Encoding() format.Encoding

	// NewDecoder returns a decoder reading encoded values from r.
	NewDecoder(r io.Reader) Decoder

	// NewEncoder returns an encoder writing encoded values to w.
	NewEncoder(w io.Writer) Encoder
}

// Encoder serializes columns of typed values.
type Encoder interface {
	Encoding() format.Encoding
	EncodeBoolean(data []bool) error
	EncodeInt32(data []int32) error
	EncodeInt64(data []int64) error
	EncodeFloat(data []float32) error
	EncodeDouble(data []float64) error
	EncodeByteArray(data [][]byte) error
	EncodeFixedLenByteArray(size int, data []byte) error
}

// Decoder deserializes columns of typed values. Each Decode method returns
// the number of values decoded and io.EOF once the encoded stream is
// exhausted.
type Decoder interface {
	Encoding() format.Encoding
	DecodeBoolean(data []bool) (int, error)
	DecodeInt32(data []int32) (int, error)
	DecodeInt64(data []int64) (int, error)
	DecodeFloat(data []float32) (int, error)
	DecodeDouble(data []float64) (int, error)
	DecodeByteArray(data [][]byte) (int, error)
	DecodeFixedLenByteArray(size int, data []byte) (int, error)
}
