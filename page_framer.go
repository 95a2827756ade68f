package parquet

import "github.com/parquetcore/pagewriter/format"

// pageFramer turns buffered, already-compressed pageHolders into their
// on-disk byte representation (serialized header immediately followed by
// body) and accumulates the column-level aggregates the file writer
// needs at the end of the page sequence. One pageFramer is used per
// column flush; its pageOffset starts at the file position the dictionary
// page (if any) left behind.
type pageFramer struct {
	converter  PageHeaderConverter
	pageOffset int64

	out                []byte
	uncompressedLength int64
	compressedLength   int64
	statistics         format.Statistics
	rlEncodings        []format.Encoding
	dlEncodings        []format.Encoding
	dataEncodings      []format.Encoding
	pages              []PageHeaderWithOffset
}

func newPageFramer(converter PageHeaderConverter, startOffset int64) *pageFramer {
	return &pageFramer{converter: converter, pageOffset: startOffset}
}

func appendUnique(list []format.Encoding, e format.Encoding) []format.Encoding {
	for _, existing := range list {
		if existing == e {
			return list
		}
	}
	return append(list, e)
}

func checkPageSize(n int) error {
	if n > maxPageSize {
		return ErrPageTooLarge
	}
	return nil
}

// frameV1 serializes h's header, appends [header][body] to the running
// output, and advances pageOffset by the framed size.
func (f *pageFramer) frameV1(h *pageHolderV1) error {
	if err := checkPageSize(h.uncompressedSize); err != nil {
		return err
	}
	if err := checkPageSize(h.compressedSize()); err != nil {
		return err
	}

	header, err := f.converter.DataPageHeader(DataPageV1Meta{
		NumValues:               h.valueCount,
		Encoding:                h.valuesEncoding,
		DefinitionLevelEncoding: h.dlEncoding,
		RepetitionLevelEncoding: h.rlEncoding,
		UncompressedSize:        h.uncompressedSize,
		CompressedSize:          h.compressedSize(),
		Statistics:              h.statistics,
	})
	if err != nil {
		return err
	}

	bodyOffset := f.pageOffset + int64(len(header))
	f.out = append(f.out, header...)
	f.out = append(f.out, h.body...)

	f.uncompressedLength += int64(h.uncompressedSize)
	f.compressedLength += int64(h.compressedSize())
	f.statistics.Merge(h.statistics, defaultLess)
	f.rlEncodings = appendUnique(f.rlEncodings, h.rlEncoding)
	f.dlEncodings = appendUnique(f.dlEncodings, h.dlEncoding)
	f.dataEncodings = appendUnique(f.dataEncodings, h.valuesEncoding)
	f.pages = append(f.pages, PageHeaderWithOffset{Header: header, Offset: bodyOffset})

	f.pageOffset = bodyOffset + int64(h.compressedSize())
	return nil
}

// frameV2 serializes h's header, appends [header][rl][dl][values] to the
// running output, and advances pageOffset by the framed size.
func (f *pageFramer) frameV2(h *pageHolderV2) error {
	uncompressedSize := len(h.rlBytes) + len(h.dlBytes) + h.uncompressedValuesSize
	compressedSize := len(h.rlBytes) + len(h.dlBytes) + h.compressedValuesSize()
	if err := checkPageSize(uncompressedSize); err != nil {
		return err
	}
	if err := checkPageSize(compressedSize); err != nil {
		return err
	}

	header, err := f.converter.DataPageV2Header(DataPageV2Meta{
		NumValues:                  h.valueCount,
		NumNulls:                   h.nullCount,
		NumRows:                    h.rowCount,
		Encoding:                   h.valuesEncoding,
		DefinitionLevelsByteLength: len(h.dlBytes),
		RepetitionLevelsByteLength: len(h.rlBytes),
		IsCompressed:               h.compressed,
		UncompressedSize:           uncompressedSize,
		CompressedSize:             compressedSize,
		Statistics:                 h.statistics,
	})
	if err != nil {
		return err
	}

	bodyOffset := f.pageOffset + int64(len(header))
	f.out = append(f.out, header...)
	f.out = append(f.out, h.rlBytes...)
	f.out = append(f.out, h.dlBytes...)
	f.out = append(f.out, h.valuesBody...)

	f.uncompressedLength += int64(uncompressedSize)
	f.compressedLength += int64(compressedSize)
	f.statistics.Merge(h.statistics, defaultLess)
	f.dataEncodings = appendUnique(f.dataEncodings, h.valuesEncoding)
	f.pages = append(f.pages, PageHeaderWithOffset{Header: header, Offset: bodyOffset})

	f.pageOffset = bodyOffset + int64(compressedSize)
	return nil
}

func (f *pageFramer) result() DataPagesOut {
	return DataPagesOut{
		Bytes:              f.out,
		UncompressedLength: f.uncompressedLength,
		CompressedLength:   f.compressedLength,
		Statistics:         f.statistics,
		RLEncodings:        f.rlEncodings,
		DLEncodings:        f.dlEncodings,
		DataEncodings:      f.dataEncodings,
		Pages:              f.pages,
	}
}

// defaultLess orders statistics min/max bytes lexicographically. pageFramer
// merges every page's statistics with it; the column's PrimitiveType
// comparator is not used for statistics.
func defaultLess(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
