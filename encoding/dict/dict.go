// Package dict implements the RLE-encoded dictionary index scheme used by
// dictionary-encoded pages: regardless of the column's physical type, the
// values written to a dictionary-encoded page body are int32 indices into
// the column's dictionary page.
package dict

import (
	"io"
	"math/bits"

	"github.com/parquetcore/pagewriter/encoding"
	"github.com/parquetcore/pagewriter/encoding/rle"
	"github.com/parquetcore/pagewriter/format"
)

type Encoding struct{}

func (Encoding) Encoding() format.Encoding { return format.RLEDictionary }

func (Encoding) NewDecoder(r io.Reader) encoding.Decoder {
	return &decoder{rle: rle.NewDecoder(r)}
}

func (Encoding) NewEncoder(w io.Writer) encoding.Encoder {
	return &encoder{writer: w}
}

// BitWidthForCardinality returns the number of bits needed to represent any
// index into a dictionary with the given number of entries.
func BitWidthForCardinality(numEntries int) uint8 {
	if numEntries <= 1 {
		return 0
	}
	return uint8(bits.Len(uint(numEntries - 1)))
}

// BitWidthSetter is implemented by the dictionary index encoder returned
// from NewEncoder. Callers must set the bit width before the first
// EncodeInt32 call.
type BitWidthSetter interface {
	SetBitWidth(width uint8)
}

type encoder struct {
	writer io.Writer
	rle    *rle.Encoder
	width  uint8
}

// SetBitWidth configures the index bit width; callers must invoke it before
// the first EncodeInt32, typically with BitWidthForCardinality.
func (e *encoder) SetBitWidth(width uint8) {
	e.width = width
	e.rle = rle.NewEncoder(e.writer, width)
}

func (e *encoder) Encoding() format.Encoding { return format.RLEDictionary }

func (e *encoder) EncodeInt32(data []int32) error {
	if e.rle == nil {
		e.SetBitWidth(e.width)
	}
	return e.rle.Encode(data)
}

func (e *encoder) Close() error {
	if e.rle == nil {
		return nil
	}
	return e.rle.Close()
}

func (e *encoder) EncodeBoolean([]bool) error { return encoding.ErrNotSupported }
func (e *encoder) EncodeInt64([]int64) error  { return encoding.ErrNotSupported }
func (e *encoder) EncodeFloat([]float32) error { return encoding.ErrNotSupported }
func (e *encoder) EncodeDouble([]float64) error { return encoding.ErrNotSupported }
func (e *encoder) EncodeByteArray([][]byte) error { return encoding.ErrNotSupported }
func (e *encoder) EncodeFixedLenByteArray(int, []byte) error { return encoding.ErrNotSupported }

type decoder struct {
	rle *rle.Decoder
}

func (d *decoder) Encoding() format.Encoding { return format.RLEDictionary }

func (d *decoder) DecodeInt32(data []int32) (int, error) {
	return d.rle.Decode(data)
}

func (d *decoder) DecodeBoolean([]bool) (int, error) { return 0, encoding.ErrNotSupported }
func (d *decoder) DecodeInt64([]int64) (int, error)  { return 0, encoding.ErrNotSupported }
func (d *decoder) DecodeFloat([]float32) (int, error) { return 0, encoding.ErrNotSupported }
func (d *decoder) DecodeDouble([]float64) (int, error) { return 0, encoding.ErrNotSupported }
func (d *decoder) DecodeByteArray([][]byte) (int, error) { return 0, encoding.ErrNotSupported }
func (d *decoder) DecodeFixedLenByteArray(int, []byte) (int, error) {
	return 0, encoding.ErrNotSupported
}

var (
	_ encoding.Encoding = Encoding{}
	_ encoding.Encoder  = (*encoder)(nil)
	_ encoding.Decoder  = (*decoder)(nil)
	_ BitWidthSetter    = (*encoder)(nil)
)
