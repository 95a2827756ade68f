// Package lz4 implements the LZ4_RAW parquet compression codec.
package lz4

import (
	"io"

	"github.com/parquetcore/pagewriter/compress"
	"github.com/parquetcore/pagewriter/format"
	"github.com/pierrec/lz4/v4"
)

type Codec struct {
	compressor   compress.Compressor
	decompressor compress.Decompressor
}

func (c *Codec) String() string { return "LZ4_RAW" }

func (c *Codec) CompressionCodec() format.CompressionCodec { return format.Lz4Raw }

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return c.compressor.Encode(dst, src, func(w io.Writer) (compress.Writer, error) {
		return writer{lz4.NewWriter(w)}, nil
	})
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return c.decompressor.Decode(dst, src, func(r io.Reader) (compress.Reader, error) {
		return reader{lz4.NewReader(r)}, nil
	})
}

type writer struct{ *lz4.Writer }

func (w writer) Reset(ww io.Writer) { w.Writer.Reset(ww) }

type reader struct{ *lz4.Reader }

func (r reader) Close() error { return nil }

func (r reader) Reset(rr io.Reader) error {
	r.Reader.Reset(rr)
	return nil
}
