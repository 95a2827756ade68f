// Package rle implements a run-length encoding of 32 bit integers, used for
// definition/repetition levels and as the index encoding that backs
// dictionary-encoded pages.
//
// The real parquet RLE/bit-packing hybrid mixes runs of repeated values with
// bit-packed literal runs for maximum density; the page writer only needs a
// decoder/encoder pair that round-trips a stream of small integers
// correctly; the exact run layout is an external, out-of-scope concern, so
// this implementation always emits RLE runs (including degenerate runs of
// length 1), trading density for simplicity.
package rle

import (
	"encoding/binary"
	"io"
)

// Encoder writes a sequence of int32 values as a stream of (run-length,
// value) pairs prefixed by the bit width the values were declared with.
type Encoder struct {
	writer      io.Writer
	bitWidth    uint8
	wroteHeader bool
	pending     int32
	pendingRun  int64
	hasPending  bool
}

func NewEncoder(w io.Writer, bitWidth uint8) *Encoder {
	return &Encoder{writer: w, bitWidth: bitWidth}
}

func (e *Encoder) Encode(data []int32) error {
	if !e.wroteHeader {
		if _, err := e.writer.Write([]byte{e.bitWidth}); err != nil {
			return err
		}
		e.wroteHeader = true
	}
	for _, v := range data {
		if e.hasPending && v == e.pending {
			e.pendingRun++
			continue
		}
		if e.hasPending {
			if err := e.flushRun(); err != nil {
				return err
			}
		}
		e.pending, e.pendingRun, e.hasPending = v, 1, true
	}
	return nil
}

func (e *Encoder) flushRun() error {
	var header [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(header[:], uint64(e.pendingRun)<<1)
	if _, err := e.writer.Write(header[:n]); err != nil {
		return err
	}
	var value [4]byte
	binary.LittleEndian.PutUint32(value[:], uint32(e.pending))
	_, err := e.writer.Write(value[:])
	return err
}

// Close flushes any buffered run. It must be called exactly once, after the
// last call to Encode.
func (e *Encoder) Close() error {
	if !e.wroteHeader {
		if _, err := e.writer.Write([]byte{e.bitWidth}); err != nil {
			return err
		}
		e.wroteHeader = true
	}
	if e.hasPending {
		err := e.flushRun()
		e.hasPending = false
		return err
	}
	return nil
}

// Decoder reads back a stream produced by Encoder.
type Decoder struct {
	reader   io.Reader
	bitWidth uint8
	gotWidth bool
	runLeft  int64
	runValue int32
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{reader: r}
}

// BitWidth returns the bit width declared in the stream header, reading it
// lazily on first use.
func (d *Decoder) BitWidth() (uint8, error) {
	if !d.gotWidth {
		var b [1]byte
		if _, err := io.ReadFull(d.reader, b[:]); err != nil {
			return 0, err
		}
		d.bitWidth, d.gotWidth = b[0], true
	}
	return d.bitWidth, nil
}

func (d *Decoder) Decode(data []int32) (int, error) {
	if _, err := d.BitWidth(); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, err
	}

	n := 0
	for n < len(data) {
		if d.runLeft == 0 {
			runHeader, err := binary.ReadUvarint(byteReader{d.reader})
			if err != nil {
				if err == io.EOF {
					break
				}
				return n, err
			}
			var value [4]byte
			if _, err := io.ReadFull(d.reader, value[:]); err != nil {
				return n, io.ErrUnexpectedEOF
			}
			d.runLeft = int64(runHeader >> 1)
			d.runValue = int32(binary.LittleEndian.Uint32(value[:]))
		}
		for d.runLeft > 0 && n < len(data) {
			data[n] = d.runValue
			n++
			d.runLeft--
		}
	}
	if n == 0 && len(data) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// byteReader adapts an io.Reader to io.ByteReader one byte at a time, which
// is all binary.ReadUvarint needs.
type byteReader struct{ r io.Reader }

func (b byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	_, err := io.ReadFull(b.r, buf[:])
	return buf[0], err
}
