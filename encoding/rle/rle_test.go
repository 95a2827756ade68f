package rle_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/parquetcore/pagewriter/encoding/rle"
)

func TestRoundTrip(t *testing.T) {
	tests := [][]int32{
		{},
		{0},
		{1, 1, 1, 1},
		{0, 1, 2, 0, 1, 2},
		{7, 7, 7, 3, 3, 5},
	}

	for _, values := range tests {
		buf := new(bytes.Buffer)
		enc := rle.NewEncoder(buf, 8)
		if err := enc.Encode(values); err != nil {
			t.Fatal(err)
		}
		if err := enc.Close(); err != nil {
			t.Fatal(err)
		}

		dec := rle.NewDecoder(buf)
		got := make([]int32, len(values))
		if len(values) > 0 {
			n, err := dec.Decode(got)
			if err != nil {
				t.Fatal(err)
			}
			if n != len(values) {
				t.Fatalf("decoded %d values, want %d", n, len(values))
			}
		}
		if !reflect.DeepEqual(got, values) {
			t.Errorf("got %v, want %v", got, values)
		}
	}
}
