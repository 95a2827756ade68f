package parquet

import "errors"

// These sentinels classify the failure modes a ColumnChunkPageWriter or
// PageWriteStore can raise. Callers should use errors.Is against them. The
// writer returns them, and errors from the FileWriter, codec and
// converter, unwrapped; no column path or page index is attached.
var (
	// ErrPageTooLarge is returned when a page's uncompressed or compressed
	// size would overflow the 32 bit signed size field of its header.
	ErrPageTooLarge = errors.New("parquet: page size exceeds the 32-bit signed maximum")

	// ErrDuplicateDictionary is returned by writeDictionaryPage when a
	// column already has a buffered dictionary page.
	ErrDuplicateDictionary = errors.New("parquet: column already has a dictionary page")

	// ErrInvalidPageType is returned when a buffered page's variant tag is
	// not recognized at emit time. Reaching this indicates a construction
	// bug elsewhere in the writer, since only writePage and writePageV2
	// append to the buffered page list.
	ErrInvalidPageType = errors.New("parquet: invalid buffered page type")

	// ErrEncodingFailure is returned when dictionary fallback's decode or
	// re-encode step fails, e.g. a page's dictionary index is out of
	// range for the buffered dictionary.
	ErrEncodingFailure = errors.New("parquet: dictionary fallback encoding failed")
)

const maxPageSize = (1 << 31) - 1
