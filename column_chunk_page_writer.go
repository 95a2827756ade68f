package parquet

import (
	"github.com/parquetcore/pagewriter/compress"
	"github.com/parquetcore/pagewriter/format"
)

// bufferedDictionaryPage is the column's at-most-one buffered dictionary
// page: a copy of its PLAIN-encoded entry bytes, held in an
// allocator-owned buffer until the column is finalized (or the dictionary
// is abandoned during fallback).
type bufferedDictionaryPage struct {
	body             []byte
	numValues        int
	encoding         format.Encoding
	uncompressedSize int
}

// ColumnChunkPageWriter is the per-column state machine: it accepts
// writeDictionaryPage/writePage/writePageV2 calls in any order the caller
// chooses (dictionary first, by convention, though nothing enforces it
// before finalize), buffers everything in memory, and on
// writeToFileWriter runs the fallback-check → dictionary-sort → emit
// pipeline exactly once before releasing its buffers.
type ColumnChunkPageWriter struct {
	desc      *ColumnDescriptor
	codec     compress.Codec
	alloc     Allocator
	converter PageHeaderConverter

	pages                  []*pageHolder
	dict                   *bufferedDictionaryPage
	allPagesUsedDictionary bool

	ownedBuffers [][]byte
}

func newColumnChunkPageWriter(desc *ColumnDescriptor, alloc Allocator, converter PageHeaderConverter) *ColumnChunkPageWriter {
	return &ColumnChunkPageWriter{
		desc:                   desc,
		codec:                  desc.Codec,
		alloc:                  alloc,
		converter:              converter,
		allPagesUsedDictionary: true,
	}
}

func (w *ColumnChunkPageWriter) register(buf []byte) {
	w.ownedBuffers = append(w.ownedBuffers, buf)
}

// writeDictionaryPage buffers data (the dictionary's PLAIN-encoded entry
// bytes) as the column's dictionary page. Compression is deferred to
// emit time so an abandoned dictionary costs no compression work.
func (w *ColumnChunkPageWriter) writeDictionaryPage(data []byte, numValues int, enc format.Encoding) error {
	if w.dict != nil {
		return ErrDuplicateDictionary
	}
	buf := w.alloc.Allocate(len(data))
	copy(buf, data)
	w.register(buf)
	w.dict = &bufferedDictionaryPage{
		body:             buf,
		numValues:        numValues,
		encoding:         enc,
		uncompressedSize: len(data),
	}
	return nil
}

// writePage buffers a v1 data page. rl and dl are the already-encoded
// repetition/definition level bytes; values is the already-encoded value
// run. nonNullValueCount is the number of non-null positions in values,
// derived by the caller from the definition levels (level decoding is
// value-run encoding machinery and stays outside the core, per the
// primitive-type copy hook contract).
func (w *ColumnChunkPageWriter) writePage(rl, dl, values []byte, valueCount, nonNullValueCount int, statistics format.Statistics, rlEncoding, dlEncoding, valuesEncoding format.Encoding) error {
	w.allPagesUsedDictionary = w.allPagesUsedDictionary && valuesEncoding.UsesDictionary()

	holder := newPageHolderV1(rl, dl, values, valueCount, nonNullValueCount, statistics, rlEncoding, dlEncoding, valuesEncoding)
	if !valuesEncoding.UsesDictionary() {
		if err := holder.compressIfNeeded(w.codec, w.alloc, w.register); err != nil {
			return err
		}
	}
	page := newV1Holder(holder)
	w.pages = append(w.pages, &page)
	return nil
}

// writePageV2 buffers a v2 data page. Only values is compressible; rl and
// dl are stored and later emitted verbatim.
func (w *ColumnChunkPageWriter) writePageV2(rowCount, nullCount, valueCount int, rlBytes, dlBytes []byte, dataEncoding format.Encoding, values []byte, statistics format.Statistics) error {
	w.allPagesUsedDictionary = w.allPagesUsedDictionary && dataEncoding.UsesDictionary()

	holder := newPageHolderV2(rowCount, nullCount, valueCount, rlBytes, dlBytes, dataEncoding, values, statistics)
	if !dataEncoding.UsesDictionary() {
		if err := holder.compressIfNeeded(w.codec, w.alloc, w.register); err != nil {
			return err
		}
	}
	page := newV2Holder(holder)
	w.pages = append(w.pages, &page)
	return nil
}

// writeToFileWriter runs fallback check → dictionary sort → emit against
// fw, then releases every buffer the column owns. On error it returns at
// once: nothing is rolled back or released, and the writer is left in an
// undefined state, so callers must discard it.
func (w *ColumnChunkPageWriter) writeToFileWriter(fw FileWriter) error {
	if w.dict != nil && !w.allPagesUsedDictionary {
		if err := runDictionaryFallback(w.desc.Type, w.dict, w.pages); err != nil {
			return err
		}
		w.dict = nil
	}

	if w.dict != nil {
		sorted, oldToNew, err := sortDictionary(w.desc.Type, w.dict)
		if err != nil {
			return err
		}
		for _, page := range w.pages {
			if err := remapPageIndices(page, oldToNew, len(sorted)); err != nil {
				return err
			}
		}
		encoded, err := encodeDictionaryEntries(w.desc.Type, sorted)
		if err != nil {
			return err
		}
		w.dict = &bufferedDictionaryPage{
			body:             encoded,
			numValues:        len(sorted),
			encoding:         w.dict.encoding,
			uncompressedSize: len(encoded),
		}
	}

	var totalValueCount int64
	for _, page := range w.pages {
		totalValueCount += int64(page.valueCount())
	}

	if err := fw.StartColumn(w.desc, totalValueCount, w.codec.String()); err != nil {
		return err
	}

	var leadingEncodings []format.Encoding
	if w.dict != nil {
		dst := w.alloc.Allocate(len(w.dict.body))
		compressedBody, err := w.codec.Encode(dst, w.dict.body)
		if err != nil {
			return err
		}
		w.register(compressedBody)

		header, err := w.converter.DictionaryPageHeader(DictionaryPageMeta{
			NumValues:        w.dict.numValues,
			Encoding:         w.dict.encoding,
			UncompressedSize: w.dict.uncompressedSize,
			CompressedSize:   len(compressedBody),
			IsSorted:         true,
		})
		if err != nil {
			return err
		}

		if err := fw.WriteDictionaryPage(DictionaryPageOut{
			Header:    header,
			Body:      compressedBody,
			NumValues: w.dict.numValues,
			Encoding:  w.dict.encoding,
			Sorted:    true,
		}); err != nil {
			return err
		}
		leadingEncodings = append(leadingEncodings, w.dict.encoding)
	}

	framer := newPageFramer(w.converter, fw.Pos())
	for _, page := range w.pages {
		if err := page.compressIfNeeded(w.codec, w.alloc, w.register); err != nil {
			return err
		}

		var err error
		switch {
		case page.isV1():
			err = framer.frameV1(page.v1)
		case page.isV2():
			err = framer.frameV2(page.v2)
		default:
			err = ErrInvalidPageType
		}
		if err != nil {
			return err
		}
	}

	out := framer.result()
	finalEncodings := append([]format.Encoding{}, leadingEncodings...)
	for _, e := range out.DataEncodings {
		finalEncodings = appendUnique(finalEncodings, e)
	}
	out.DataEncodings = finalEncodings

	if err := fw.WriteDataPages(out); err != nil {
		return err
	}
	if err := fw.EndColumn(); err != nil {
		return err
	}

	w.releaseAll()
	return nil
}

func (w *ColumnChunkPageWriter) releaseAll() {
	for _, buf := range w.ownedBuffers {
		w.alloc.Release(buf)
	}
	w.ownedBuffers = nil
	w.pages = nil
	w.dict = nil
	w.allPagesUsedDictionary = true
}
