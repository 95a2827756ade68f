package parquet

import "github.com/parquetcore/pagewriter/format"

// memFileWriter is an in-memory FileWriter test double. It tracks the
// byte position a real file writer would have, and records everything
// passed to it so tests can assert on column layout and offsets.
type memFileWriter struct {
	pos int64

	columns []memColumn
	current *memColumn
}

type memColumn struct {
	desc            *ColumnDescriptor
	totalValueCount int64
	codecName       string
	dictionary      *DictionaryPageOut
	dictionaryBase  int64
	dataPages       DataPagesOut
	dataPagesBase   int64
	ended           bool
}

func (w *memFileWriter) Pos() int64 { return w.pos }

func (w *memFileWriter) StartColumn(desc *ColumnDescriptor, totalValueCount int64, codecName string) error {
	w.columns = append(w.columns, memColumn{desc: desc, totalValueCount: totalValueCount, codecName: codecName})
	w.current = &w.columns[len(w.columns)-1]
	return nil
}

func (w *memFileWriter) WriteDictionaryPage(page DictionaryPageOut) error {
	w.current.dictionaryBase = w.pos
	pg := page
	w.current.dictionary = &pg
	w.pos += int64(len(page.Header) + len(page.Body))
	return nil
}

func (w *memFileWriter) WriteDataPages(pages DataPagesOut) error {
	w.current.dataPagesBase = w.pos
	w.current.dataPages = pages
	w.pos += int64(len(pages.Bytes))
	return nil
}

func (w *memFileWriter) EndColumn() error {
	w.current.ended = true
	w.current = nil
	return nil
}

// memAllocator is a trivial Allocator that always returns fresh slices and
// ignores Release; it exists only so tests don't have to special-case
// buffer reuse semantics.
type memAllocator struct{}

func (memAllocator) Allocate(size int) []byte { return make([]byte, size) }
func (memAllocator) Release([]byte)           {}

func newInt32Descriptor(path string) *ColumnDescriptor {
	return &ColumnDescriptor{
		Path:             path,
		Type:             Int32Type,
		Codec:            noopCodec{},
		EnableDictionary: true,
	}
}

func newInt64Descriptor(path string) *ColumnDescriptor {
	return &ColumnDescriptor{
		Path:             path,
		Type:             Int64Type,
		Codec:            noopCodec{},
		EnableDictionary: true,
	}
}

// noopCodec is a zero-dependency stand-in for compress/uncompressed so the
// core's tests don't need to import a codec subpackage just to exercise
// compressIfNeeded.
type noopCodec struct{}

func (noopCodec) String() string                            { return "UNCOMPRESSED" }
func (noopCodec) CompressionCodec() format.CompressionCodec { return format.Uncompressed }
func (noopCodec) Encode(dst, src []byte) ([]byte, error)    { return append(dst[:0], src...), nil }
func (noopCodec) Decode(dst, src []byte) ([]byte, error)    { return append(dst[:0], src...), nil }
