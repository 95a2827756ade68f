package parquet

import (
	"bytes"

	"github.com/parquetcore/pagewriter/encoding/dict"
	"github.com/parquetcore/pagewriter/encoding/plain"
)

// decodeDictionaryEntries decodes a dictionary page's PLAIN-encoded
// payload into its logical values using the column's primitive type.
// Dictionary pages are always PLAIN-encoded regardless of the column's
// data page encoding; that is a format-level invariant, not a choice the
// core makes.
func decodeDictionaryEntries(pt PrimitiveType, data []byte, numValues int) ([]Value, error) {
	dec := plain.Encoding{}.NewDecoder(bytes.NewReader(data))
	return pt.DecodeValues(dec, numValues)
}

// encodeDictionaryEntries serializes dictionary values back to their
// PLAIN-encoded byte form, used when the sorter emits a new dictionary
// page in sorted order.
func encodeDictionaryEntries(pt PrimitiveType, values []Value) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := plain.Encoding{}.NewEncoder(buf)
	if err := pt.EncodeValues(enc, values); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeDictionaryIndices reads exactly n RLE-encoded dictionary indices
// from data.
func decodeDictionaryIndices(data []byte, n int) ([]int32, error) {
	dec := dict.Encoding{}.NewDecoder(bytes.NewReader(data))
	ids := make([]int32, n)
	k, err := dec.DecodeInt32(ids)
	if err != nil {
		return nil, err
	}
	return ids[:k], nil
}

// encodeDictionaryIndices RLE-encodes ids against a dictionary with
// numEntries entries.
func encodeDictionaryIndices(ids []int32, numEntries int) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := dict.Encoding{}.NewEncoder(buf)
	enc.(dict.BitWidthSetter).SetBitWidth(dict.BitWidthForCardinality(numEntries))
	if err := enc.EncodeInt32(ids); err != nil {
		return nil, err
	}
	if closer, ok := enc.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
