package parquet

// PageWriteStore maps each column descriptor in a schema to its own
// ColumnChunkPageWriter and flushes them, strictly sequentially, to a
// downstream file writer in schema iteration order. It is the top-level
// object a caller constructs once per row group.
type PageWriteStore struct {
	converter PageHeaderConverter
	alloc     Allocator

	order   []string
	writers map[string]*ColumnChunkPageWriter
}

// NewPageWriteStore builds one ColumnChunkPageWriter per descriptor in
// columns, in the order given; that order is also the on-disk column
// order FlushToFileWriter honors.
func NewPageWriteStore(columns []*ColumnDescriptor, alloc Allocator, converter PageHeaderConverter) *PageWriteStore {
	store := &PageWriteStore{
		converter: converter,
		alloc:     alloc,
		order:     make([]string, 0, len(columns)),
		writers:   make(map[string]*ColumnChunkPageWriter, len(columns)),
	}
	for _, desc := range columns {
		store.order = append(store.order, desc.Path)
		store.writers[desc.Path] = newColumnChunkPageWriter(desc, alloc, converter)
	}
	return store
}

// GetPageWriter returns the writer for desc's column, or nil if desc's
// path is not part of this store's schema.
func (s *PageWriteStore) GetPageWriter(desc *ColumnDescriptor) *ColumnChunkPageWriter {
	return s.writers[desc.Path]
}

// FlushToFileWriter finalizes every column's writer, in schema order,
// against fw. A failure on one column aborts the flush; columns already
// flushed are not rolled back, and the store must be discarded afterward.
func (s *PageWriteStore) FlushToFileWriter(fw FileWriter) error {
	for _, path := range s.order {
		if err := s.writers[path].writeToFileWriter(fw); err != nil {
			return err
		}
	}
	return nil
}
