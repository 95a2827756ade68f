package parquet

import "github.com/parquetcore/pagewriter/format"

// This file declares the external collaborators the page writer consumes
// but never implements itself: byte allocation, the downstream file
// writer, and the page header wire converter. Production code wires real
// implementations of these in; the test suite uses the in-memory ones in
// testutil_test.go.

// Allocator is the buffer pool the writer draws page bodies from. It lets
// a caller reuse large byte slices across flushes instead of handing that
// decision to the garbage collector.
type Allocator interface {
	Allocate(size int) []byte
	Release(buf []byte)
}

// FileWriter is the downstream sink a PageWriteStore flushes finished
// column chunks into. Columns are always started, written, and ended in
// strict sequence; the store never interleaves two columns' calls.
type FileWriter interface {
	// Pos returns the writer's current byte offset in the file. It is
	// read once per column, after StartColumn and after the dictionary
	// page (if any) has been written, as the offset of the first data
	// page's header.
	Pos() int64

	// StartColumn is called once per column before any page is written.
	StartColumn(desc *ColumnDescriptor, totalValueCount int64, codecName string) error

	// WriteDictionaryPage writes a finalized dictionary page's header and
	// body. It is called at most once per column, and only when the
	// column committed to dictionary encoding.
	WriteDictionaryPage(page DictionaryPageOut) error

	// WriteDataPages writes the column's finalized, ordered sequence of
	// data pages along with the aggregates accumulated over them.
	WriteDataPages(pages DataPagesOut) error

	// EndColumn finalizes the column chunk and returns control to the
	// store so it can move to the next column.
	EndColumn() error
}

// DictionaryPageOut is the finalized dictionary page handed to the file
// writer: its framed header/body bytes plus the metadata a column-chunk
// footer needs to describe it.
type DictionaryPageOut struct {
	Header    []byte
	Body      []byte
	NumValues int
	Encoding  format.Encoding
	Sorted    bool
}

// PageHeaderWithOffset pairs a page's serialized header bytes with the
// absolute file offset at which its body begins.
type PageHeaderWithOffset struct {
	Header []byte
	Offset int64
}

// DataPagesOut is the finalized, ordered sequence of a column's data
// pages plus the aggregates the framer accumulated while emitting them.
type DataPagesOut struct {
	Bytes              []byte
	UncompressedLength int64
	CompressedLength   int64
	Statistics         format.Statistics
	RLEncodings        []format.Encoding
	DLEncodings        []format.Encoding
	DataEncodings      []format.Encoding
	Pages              []PageHeaderWithOffset
}

// PageHeaderConverter serializes the metadata of a single page into the
// opaque header bytes a FileWriter writes immediately before the page
// body. The core never parses what comes back; only the returned slice's
// length participates in offset bookkeeping.
type PageHeaderConverter interface {
	// DataPageHeader encodes a V1 data page header.
	DataPageHeader(meta DataPageV1Meta) ([]byte, error)

	// DataPageV2Header encodes a V2 data page header.
	DataPageV2Header(meta DataPageV2Meta) ([]byte, error)

	// DictionaryPageHeader encodes a dictionary page header.
	DictionaryPageHeader(meta DictionaryPageMeta) ([]byte, error)
}

// DataPageV1Meta carries the fields a V1 page header must record.
type DataPageV1Meta struct {
	NumValues               int
	Encoding                 format.Encoding
	DefinitionLevelEncoding  format.Encoding
	RepetitionLevelEncoding  format.Encoding
	UncompressedSize         int
	CompressedSize           int
	Statistics               format.Statistics
}

// DataPageV2Meta carries the fields a V2 page header must record.
type DataPageV2Meta struct {
	NumValues                  int
	NumNulls                   int
	NumRows                    int
	Encoding                   format.Encoding
	DefinitionLevelsByteLength int
	RepetitionLevelsByteLength int
	IsCompressed               bool
	UncompressedSize           int
	CompressedSize             int
	Statistics                 format.Statistics
}

// DictionaryPageMeta carries the fields a dictionary page header must
// record.
type DictionaryPageMeta struct {
	NumValues        int
	Encoding         format.Encoding
	UncompressedSize int
	CompressedSize   int
	IsSorted         bool
}
