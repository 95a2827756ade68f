package compress_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/parquetcore/pagewriter/compress"
	"github.com/parquetcore/pagewriter/compress/brotli"
	"github.com/parquetcore/pagewriter/compress/gzip"
	"github.com/parquetcore/pagewriter/compress/lz4"
	"github.com/parquetcore/pagewriter/compress/snappy"
	"github.com/parquetcore/pagewriter/compress/uncompressed"
	"github.com/parquetcore/pagewriter/compress/zstd"
)

func TestCompressionCodecRoundTrip(t *testing.T) {
	tests := []struct {
		scenario string
		codec    compress.Codec
	}{
		{scenario: "uncompressed", codec: new(uncompressed.Codec)},
		{scenario: "snappy", codec: new(snappy.Codec)},
		{scenario: "gzip", codec: new(gzip.Codec)},
		{scenario: "brotli", codec: new(brotli.Codec)},
		{scenario: "zstd", codec: new(zstd.Codec)},
		{scenario: "lz4", codec: new(lz4.Codec)},
	}

	input := bytes.Repeat([]byte("1234567890qwertyuiopasdfghjklzxcvbnm"), 1000)

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			compressed, err := test.codec.Encode(nil, input)
			if err != nil {
				t.Fatal("encode:", err)
			}
			decompressed, err := test.codec.Decode(nil, compressed)
			if err != nil {
				t.Fatal("decode:", err)
			}
			if !bytes.Equal(input, decompressed) {
				edits := myers.ComputeEdits(span.URIFromPath("want.txt"), string(input), string(decompressed))
				diff := fmt.Sprint(gotextdiff.ToUnified("want.txt", "got.txt", string(input), edits))
				t.Errorf("round trip mismatch:\n%s", diff)
			}
		})
	}
}
