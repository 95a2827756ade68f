package parquet

import (
	"math"

	"github.com/parquetcore/pagewriter/format"
)

// Value is a minimal tagged union over the physical types a column can
// carry. It exists so that dictionary entries, and the values pumped
// between a decoder and an encoder during dictionary fallback, can be
// passed around without the core caring which concrete primitive type it
// is handling.
type Value struct {
	kind  format.Type
	num   uint64
	bytes []byte
}

func BooleanValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: format.Boolean, num: n}
}

func Int32Value(v int32) Value { return Value{kind: format.Int32, num: uint64(uint32(v))} }

func Int64Value(v int64) Value { return Value{kind: format.Int64, num: uint64(v)} }

func FloatValue(v float32) Value {
	return Value{kind: format.Float, num: uint64(math.Float32bits(v))}
}

func DoubleValue(v float64) Value {
	return Value{kind: format.Double, num: math.Float64bits(v)}
}

func ByteArrayValue(v []byte) Value { return Value{kind: format.ByteArray, bytes: v} }

func FixedLenByteArrayValue(v []byte) Value {
	return Value{kind: format.FixedLenByteArray, bytes: v}
}

func (v Value) Kind() format.Type { return v.kind }
func (v Value) Boolean() bool     { return v.num != 0 }
func (v Value) Int32() int32      { return int32(uint32(v.num)) }
func (v Value) Int64() int64      { return int64(v.num) }
func (v Value) Float() float32    { return math.Float32frombits(uint32(v.num)) }
func (v Value) Double() float64   { return math.Float64frombits(v.num) }
func (v Value) ByteArray() []byte { return v.bytes }
