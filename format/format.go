// Package format declares the value vocabulary of the Parquet on-disk
// format: physical types, encodings, compression codecs and page kinds.
//
// These are the same constants a parquet-format thrift definition would
// generate; the core page writer treats the richer page header structures
// (DataPageHeader, DictionaryPageHeader, ...) as opaque values produced by
// an injected converter, so this package only needs to carry the pieces the
// writer reasons about directly: what an encoding is, whether it is
// dictionary-based, and how a codec identifies itself in column metadata.
package format

// Type is the physical (on-disk) type of a column's values.
type Type int8

const (
	Boolean Type = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// Encoding identifies how a page's values were serialized.
type Encoding int8

const (
	Plain Encoding = iota
	PlainDictionary
	RLE
	RLEDictionary
	DeltaBinaryPacked
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	default:
		return "UNKNOWN"
	}
}

// UsesDictionary reports whether values encoded with e are indices into a
// dictionary page rather than literal values.
func (e Encoding) UsesDictionary() bool {
	return e == PlainDictionary || e == RLEDictionary
}

// CompressionCodec identifies the codec used to compress a page body.
type CompressionCodec int8

const (
	Uncompressed CompressionCodec = iota
	Snappy
	Gzip
	Lz4Raw
	Brotli
	Zstd
)

func (c CompressionCodec) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Lz4Raw:
		return "LZ4_RAW"
	case Brotli:
		return "BROTLI"
	case Zstd:
		return "ZSTD"
	default:
		return "UNKNOWN"
	}
}

// PageType distinguishes the four kinds of pages that can appear in a
// column chunk.
type PageType int8

const (
	DataPageV1 PageType = iota
	DataPageV2
	DictionaryPageType
	IndexPageType
)

// Statistics is the subset of per-page / per-column statistics the page
// writer accumulates and forwards to the file writer. Computing min/max/
// distinct-count from values is the job of the statistics merger
// collaborator (out of scope here); the writer only merges and carries
// whatever that collaborator already produced.
type Statistics struct {
	Min       []byte
	Max       []byte
	NullCount int64
	HasMinMax bool
}

// Merge folds other into s, keeping the widest min/max bounds and summing
// null counts. The caller supplies the comparator because only the column's
// primitive type knows the value's ordering.
func (s *Statistics) Merge(other Statistics, less func(a, b []byte) bool) {
	s.NullCount += other.NullCount
	if !other.HasMinMax {
		return
	}
	if !s.HasMinMax {
		s.Min, s.Max, s.HasMinMax = other.Min, other.Max, true
		return
	}
	if less(other.Min, s.Min) {
		s.Min = other.Min
	}
	if less(s.Max, other.Max) {
		s.Max = other.Max
	}
}
