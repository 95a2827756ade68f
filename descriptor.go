package parquet

import "github.com/parquetcore/pagewriter/compress"

// ColumnDescriptor identifies a single column within the file's schema and
// describes it: the column's physical type, its nesting depth, and the
// compression codec and dictionary policy selected for it. A
// ColumnChunkPageWriter reads the type and the codec; the level bounds
// and EnableDictionary are carried for the caller and are not read by the
// writer.
type ColumnDescriptor struct {
	// Path is the dotted schema path, e.g. "a.b.c". PageWriteStore keys
	// its writers by Path, so paths must be unique within a store.
	Path string

	// Type is the external collaborator that knows how to compare and
	// (de)serialize the column's values.
	Type PrimitiveType

	// MaxRepetitionLevel and MaxDefinitionLevel bound the rl/dl streams
	// carried by V2 pages and embedded in V1 page bodies. A column at the
	// top of the schema with no optional/repeated ancestors has both at 0.
	MaxRepetitionLevel int
	MaxDefinitionLevel int

	// Codec is the compression codec applied to page bodies (and, for V1
	// pages, the whole rl+dl+values blob).
	Codec compress.Codec

	// EnableDictionary records whether dictionary encoding was requested
	// for this column. The page writer does not read it: a column keeps
	// its dictionary only if it received one and every data page is
	// dictionary-encoded, and falls back to PLAIN as soon as one data page
	// arrives with a non-dictionary encoding.
	EnableDictionary bool
}
