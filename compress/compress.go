// Package compress provides the generic API implemented by parquet
// compression codecs, and the pooled encode/decode helpers the concrete
// codecs build on.
//
// https://github.com/apache/parquet-format/blob/master/Compression.md
package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/parquetcore/pagewriter/format"
)

// Codec is the contract the column chunk page writer requires from a
// compression implementation: deterministic, allocation-conscious encode of
// a page body. Each column's writer uses the codec set on its
// ColumnDescriptor; one codec instance may be set on several descriptors,
// so Codec values must be safe for concurrent use.
type Codec interface {
	// String returns a human readable name, used as the "codec" label the
	// file writer records for a column chunk.
	String() string

	// CompressionCodec returns the on-disk code for this codec.
	CompressionCodec() format.CompressionCodec

	// Encode writes the compressed form of src to dst and returns it,
	// growing dst if its capacity is insufficient.
	Encode(dst, src []byte) ([]byte, error)

	// Decode writes the decompressed form of src to dst and returns it.
	Decode(dst, src []byte) ([]byte, error)
}

// Reader is a resettable decompressing reader, used internally by codecs
// built on top of a streaming compression library.
type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

// Writer is a resettable compressing writer.
type Writer interface {
	io.WriteCloser
	Reset(io.Writer)
}

// Compressor pools streaming writers so that repeated Encode calls for many
// small pages do not pay allocation cost per page.
type Compressor struct {
	writers sync.Pool
}

func (c *Compressor) Encode(dst, src []byte, newWriter func(io.Writer) (Writer, error)) ([]byte, error) {
	output := bytes.NewBuffer(dst[:0])

	w, _ := c.writers.Get().(Writer)
	if w != nil {
		w.Reset(output)
	} else {
		var err error
		if w, err = newWriter(output); err != nil {
			return dst, err
		}
	}
	defer c.writers.Put(w)
	defer w.Reset(io.Discard)

	if _, err := w.Write(src); err != nil {
		return output.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}

// Decompressor pools streaming readers the same way Compressor pools
// writers.
type Decompressor struct {
	readers sync.Pool
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := io.Copy(output, r)
	return output.Bytes(), err
}
