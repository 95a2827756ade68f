// Package plain implements the PLAIN parquet encoding: values are written
// back to back in their natural binary layout, with no compression of the
// index space. It is the encoding the dictionary fallback path re-encodes
// into when a column's speculative dictionary is abandoned.
package plain

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/parquetcore/pagewriter/encoding"
	"github.com/parquetcore/pagewriter/format"
)

type Encoding struct{}

func (Encoding) Encoding() format.Encoding { return format.Plain }

func (Encoding) NewDecoder(r io.Reader) encoding.Decoder { return &decoder{reader: r} }

func (Encoding) NewEncoder(w io.Writer) encoding.Encoder { return &encoder{writer: w} }

type encoder struct{ writer io.Writer }

func (e *encoder) Encoding() format.Encoding { return format.Plain }

func (e *encoder) EncodeBoolean(data []bool) error {
	buf := make([]byte, len(data))
	for i, v := range data {
		if v {
			buf[i] = 1
		}
	}
	_, err := e.writer.Write(buf)
	return err
}

func (e *encoder) EncodeInt32(data []int32) error {
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	_, err := e.writer.Write(buf)
	return err
}

func (e *encoder) EncodeInt64(data []int64) error {
	buf := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}
	_, err := e.writer.Write(buf)
	return err
}

func (e *encoder) EncodeFloat(data []float32) error {
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	_, err := e.writer.Write(buf)
	return err
}

func (e *encoder) EncodeDouble(data []float64) error {
	buf := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	_, err := e.writer.Write(buf)
	return err
}

func (e *encoder) EncodeByteArray(data [][]byte) error {
	var lenBuf [4]byte
	for _, v := range data {
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(v)))
		if _, err := e.writer.Write(lenBuf[:]); err != nil {
			return err
		}
		if _, err := e.writer.Write(v); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) EncodeFixedLenByteArray(size int, data []byte) error {
	if len(data)%size != 0 {
		return fmt.Errorf("plain: fixed length byte array data is not a multiple of size %d", size)
	}
	_, err := e.writer.Write(data)
	return err
}

type decoder struct{ reader io.Reader }

func (d *decoder) Encoding() format.Encoding { return format.Plain }

func (d *decoder) DecodeBoolean(data []bool) (int, error) {
	buf := make([]byte, len(data))
	n, err := io.ReadFull(d.reader, buf)
	for i := 0; i < n; i++ {
		data[i] = buf[i] != 0
	}
	return n, plainEOF(n, len(data), err)
}

func (d *decoder) DecodeInt32(data []int32) (int, error) {
	buf := make([]byte, 4*len(data))
	n, err := io.ReadFull(d.reader, buf)
	count := n / 4
	for i := 0; i < count; i++ {
		data[i] = int32(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return count, plainEOF(n, len(buf), err)
}

func (d *decoder) DecodeInt64(data []int64) (int, error) {
	buf := make([]byte, 8*len(data))
	n, err := io.ReadFull(d.reader, buf)
	count := n / 8
	for i := 0; i < count; i++ {
		data[i] = int64(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return count, plainEOF(n, len(buf), err)
}

func (d *decoder) DecodeFloat(data []float32) (int, error) {
	buf := make([]byte, 4*len(data))
	n, err := io.ReadFull(d.reader, buf)
	count := n / 4
	for i := 0; i < count; i++ {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return count, plainEOF(n, len(buf), err)
}

func (d *decoder) DecodeDouble(data []float64) (int, error) {
	buf := make([]byte, 8*len(data))
	n, err := io.ReadFull(d.reader, buf)
	count := n / 8
	for i := 0; i < count; i++ {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return count, plainEOF(n, len(buf), err)
}

func (d *decoder) DecodeByteArray(data [][]byte) (int, error) {
	var lenBuf [4]byte
	for i := range data {
		if _, err := io.ReadFull(d.reader, lenBuf[:]); err != nil {
			if err == io.EOF {
				return i, io.EOF
			}
			return i, err
		}
		n := binary.LittleEndian.Uint32(lenBuf[:])
		value := make([]byte, n)
		if _, err := io.ReadFull(d.reader, value); err != nil {
			return i, err
		}
		data[i] = value
	}
	return len(data), nil
}

func (d *decoder) DecodeFixedLenByteArray(size int, data []byte) (int, error) {
	n, err := io.ReadFull(d.reader, data)
	count := n / size
	return count, plainEOF(n, len(data), err)
}

// plainEOF maps io.ReadFull's end-of-input errors (io.EOF and
// io.ErrUnexpectedEOF) to io.EOF, matching the Decoder contract's use of
// io.EOF to signal end of stream. A short read that ends part-way through
// a value is reported the same way; it is not distinguished from one that
// ends on a value boundary.
func plainEOF(n, want int, err error) error {
	if err == nil {
		return nil
	}
	if n == 0 || err == io.ErrUnexpectedEOF {
		if n < want {
			return io.EOF
		}
	}
	return err
}

var (
	_ encoding.Encoding = Encoding{}
	_ encoding.Encoder  = (*encoder)(nil)
	_ encoding.Decoder  = (*decoder)(nil)
)
