package parquet

import (
	"bytes"
	"fmt"

	"github.com/parquetcore/pagewriter/encoding"
	"github.com/parquetcore/pagewriter/format"
)

// PrimitiveType is the contract a column's physical type must satisfy for
// the page writer to decode/re-encode its values during dictionary
// fallback and sorting, and to compare values for natural dictionary
// ordering. It is the "primitive type" external collaborator
// named throughout the design: the core never interprets value bytes on
// its own, it always goes through this interface.
type PrimitiveType interface {
	fmt.Stringer

	Kind() format.Type

	// Length returns the fixed size in bytes for FixedLenByteArray types,
	// and is ignored for every other kind.
	Length() int

	// Compare returns a negative, zero or positive number as a compares
	// less than, equal to, or greater than b. It defines the natural
	// dictionary sort order; statistics min/max are merged byte-wise.
	Compare(a, b Value) int

	// DecodeValues is the read half of the primitive type's copy hook: it
	// decodes up to n values from d.
	DecodeValues(d encoding.Decoder, n int) ([]Value, error)

	// EncodeValues is the write half of the copy hook.
	EncodeValues(e encoding.Encoder, values []Value) error
}

type booleanType struct{}

func (booleanType) String() string   { return "BOOLEAN" }
func (booleanType) Kind() format.Type { return format.Boolean }
func (booleanType) Length() int      { return 0 }

func (booleanType) Compare(a, b Value) int {
	x, y := a.Boolean(), b.Boolean()
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}

func (booleanType) DecodeValues(d encoding.Decoder, n int) ([]Value, error) {
	buf := make([]bool, n)
	k, err := d.DecodeBoolean(buf)
	return mapValues(k, err, buf, BooleanValue)
}

func (booleanType) EncodeValues(e encoding.Encoder, values []Value) error {
	buf := make([]bool, len(values))
	for i, v := range values {
		buf[i] = v.Boolean()
	}
	return e.EncodeBoolean(buf)
}

type int32Type struct{}

func (int32Type) String() string   { return "INT32" }
func (int32Type) Kind() format.Type { return format.Int32 }
func (int32Type) Length() int      { return 0 }

func (int32Type) Compare(a, b Value) int {
	x, y := a.Int32(), b.Int32()
	return compareOrdered(x, y)
}

func (int32Type) DecodeValues(d encoding.Decoder, n int) ([]Value, error) {
	buf := make([]int32, n)
	k, err := d.DecodeInt32(buf)
	return mapValues(k, err, buf, Int32Value)
}

func (int32Type) EncodeValues(e encoding.Encoder, values []Value) error {
	buf := make([]int32, len(values))
	for i, v := range values {
		buf[i] = v.Int32()
	}
	return e.EncodeInt32(buf)
}

type int64Type struct{}

func (int64Type) String() string   { return "INT64" }
func (int64Type) Kind() format.Type { return format.Int64 }
func (int64Type) Length() int      { return 0 }

func (int64Type) Compare(a, b Value) int {
	return compareOrdered(a.Int64(), b.Int64())
}

func (int64Type) DecodeValues(d encoding.Decoder, n int) ([]Value, error) {
	buf := make([]int64, n)
	k, err := d.DecodeInt64(buf)
	return mapValues(k, err, buf, Int64Value)
}

func (int64Type) EncodeValues(e encoding.Encoder, values []Value) error {
	buf := make([]int64, len(values))
	for i, v := range values {
		buf[i] = v.Int64()
	}
	return e.EncodeInt64(buf)
}

type floatType struct{}

func (floatType) String() string   { return "FLOAT" }
func (floatType) Kind() format.Type { return format.Float }
func (floatType) Length() int      { return 0 }

func (floatType) Compare(a, b Value) int {
	return compareOrdered(a.Float(), b.Float())
}

func (floatType) DecodeValues(d encoding.Decoder, n int) ([]Value, error) {
	buf := make([]float32, n)
	k, err := d.DecodeFloat(buf)
	return mapValues(k, err, buf, FloatValue)
}

func (floatType) EncodeValues(e encoding.Encoder, values []Value) error {
	buf := make([]float32, len(values))
	for i, v := range values {
		buf[i] = v.Float()
	}
	return e.EncodeFloat(buf)
}

type doubleType struct{}

func (doubleType) String() string   { return "DOUBLE" }
func (doubleType) Kind() format.Type { return format.Double }
func (doubleType) Length() int      { return 0 }

func (doubleType) Compare(a, b Value) int {
	return compareOrdered(a.Double(), b.Double())
}

func (doubleType) DecodeValues(d encoding.Decoder, n int) ([]Value, error) {
	buf := make([]float64, n)
	k, err := d.DecodeDouble(buf)
	return mapValues(k, err, buf, DoubleValue)
}

func (doubleType) EncodeValues(e encoding.Encoder, values []Value) error {
	buf := make([]float64, len(values))
	for i, v := range values {
		buf[i] = v.Double()
	}
	return e.EncodeDouble(buf)
}

type byteArrayType struct{}

func (byteArrayType) String() string   { return "BYTE_ARRAY" }
func (byteArrayType) Kind() format.Type { return format.ByteArray }
func (byteArrayType) Length() int      { return 0 }

func (byteArrayType) Compare(a, b Value) int {
	return bytes.Compare(a.ByteArray(), b.ByteArray())
}

func (byteArrayType) DecodeValues(d encoding.Decoder, n int) ([]Value, error) {
	buf := make([][]byte, n)
	k, err := d.DecodeByteArray(buf)
	return mapValues(k, err, buf, ByteArrayValue)
}

func (byteArrayType) EncodeValues(e encoding.Encoder, values []Value) error {
	buf := make([][]byte, len(values))
	for i, v := range values {
		buf[i] = v.ByteArray()
	}
	return e.EncodeByteArray(buf)
}

type fixedLenByteArrayType struct{ size int }

func (t fixedLenByteArrayType) String() string   { return "FIXED_LEN_BYTE_ARRAY" }
func (t fixedLenByteArrayType) Kind() format.Type { return format.FixedLenByteArray }
func (t fixedLenByteArrayType) Length() int      { return t.size }

func (t fixedLenByteArrayType) Compare(a, b Value) int {
	return bytes.Compare(a.ByteArray(), b.ByteArray())
}

func (t fixedLenByteArrayType) DecodeValues(d encoding.Decoder, n int) ([]Value, error) {
	buf := make([]byte, n*t.size)
	k, err := d.DecodeFixedLenByteArray(t.size, buf)
	if k == 0 && err != nil {
		return nil, err
	}
	values := make([]Value, k)
	for i := 0; i < k; i++ {
		values[i] = FixedLenByteArrayValue(buf[i*t.size : (i+1)*t.size])
	}
	if err != nil {
		return values, nil
	}
	return values, nil
}

func (t fixedLenByteArrayType) EncodeValues(e encoding.Encoder, values []Value) error {
	buf := make([]byte, 0, len(values)*t.size)
	for _, v := range values {
		buf = append(buf, v.ByteArray()...)
	}
	return e.EncodeFixedLenByteArray(t.size, buf)
}

// Concrete primitive types, exported so callers can build ColumnDescriptors.
var (
	BooleanType           PrimitiveType = booleanType{}
	Int32Type             PrimitiveType = int32Type{}
	Int64Type             PrimitiveType = int64Type{}
	FloatType             PrimitiveType = floatType{}
	DoubleType            PrimitiveType = doubleType{}
	ByteArrayType         PrimitiveType = byteArrayType{}
)

// FixedLenByteArrayType returns the primitive type for fixed-length byte
// arrays of the given size (e.g. INT96 timestamps modeled as FLBA(12),
// UUIDs as FLBA(16)).
func FixedLenByteArrayType(size int) PrimitiveType { return fixedLenByteArrayType{size: size} }

type ordered interface{ ~int32 | ~int64 | ~float32 | ~float64 }

func compareOrdered[T ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func mapValues[T any](k int, err error, buf []T, wrap func(T) Value) ([]Value, error) {
	if k == 0 && err != nil {
		return nil, err
	}
	values := make([]Value, k)
	for i := 0; i < k; i++ {
		values[i] = wrap(buf[i])
	}
	return values, nil
}
