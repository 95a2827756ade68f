package plain_test

import (
	"bytes"
	"testing"

	"github.com/parquetcore/pagewriter/encoding/plain"
)

func TestInt32RoundTrip(t *testing.T) {
	values := []int32{1, -2, 3, 1 << 30}
	buf := new(bytes.Buffer)
	enc := plain.Encoding{}.NewEncoder(buf)
	if err := enc.EncodeInt32(values); err != nil {
		t.Fatal(err)
	}

	dec := plain.Encoding{}.NewDecoder(buf)
	got := make([]int32, len(values))
	n, err := dec.DecodeInt32(got)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("decoded %d values, want %d", n, len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("value %d: got %d, want %d", i, got[i], values[i])
		}
	}
}

func TestByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{[]byte("hello"), []byte(""), []byte("parquet")}
	buf := new(bytes.Buffer)
	enc := plain.Encoding{}.NewEncoder(buf)
	if err := enc.EncodeByteArray(values); err != nil {
		t.Fatal(err)
	}

	dec := plain.Encoding{}.NewDecoder(buf)
	got := make([][]byte, len(values))
	n, err := dec.DecodeByteArray(got)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("decoded %d values, want %d", n, len(values))
	}
	for i := range values {
		if !bytes.Equal(got[i], values[i]) {
			t.Errorf("value %d: got %q, want %q", i, got[i], values[i])
		}
	}
}
