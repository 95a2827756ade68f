package parquet

import (
	"github.com/parquetcore/pagewriter/compress"
	"github.com/parquetcore/pagewriter/format"
)

// pageHolder is the tagged union over the two page-format variants a
// column can buffer. Exactly one of v1/v2 is non-nil for a given holder.
// Common bookkeeping (value counts, statistics, values encoding) lives on
// both variants rather than a shared embedded struct, since v1 and v2
// disagree on what "the body" even means: v1 compresses the whole
// rl+dl+values blob, v2 only ever compresses the values.
type pageHolder struct {
	v1 *pageHolderV1
	v2 *pageHolderV2
}

func newV1Holder(h *pageHolderV1) pageHolder { return pageHolder{v1: h} }
func newV2Holder(h *pageHolderV2) pageHolder { return pageHolder{v2: h} }

func (p *pageHolder) isV1() bool { return p.v1 != nil }
func (p *pageHolder) isV2() bool { return p.v2 != nil }

func (p *pageHolder) valueCount() int {
	if p.isV1() {
		return p.v1.valueCount
	}
	return p.v2.valueCount
}

func (p *pageHolder) nonNullValueCount() int {
	if p.isV1() {
		return p.v1.nonNullValueCount
	}
	return p.v2.nonNullValueCount
}

func (p *pageHolder) valuesEncoding() format.Encoding {
	if p.isV1() {
		return p.v1.valuesEncoding
	}
	return p.v2.valuesEncoding
}

func (p *pageHolder) setValuesEncoding(e format.Encoding) {
	if p.isV1() {
		p.v1.valuesEncoding = e
		return
	}
	p.v2.valuesEncoding = e
}

func (p *pageHolder) statistics() format.Statistics {
	if p.isV1() {
		return p.v1.statistics
	}
	return p.v2.statistics
}

// valuesBytes returns the uncompressed bytes holding just this page's
// values run, skipping any rl/dl prefix. Only meaningful while the page
// is uncompressed, which always holds for dictionary-encoded pages until
// the emit pipeline compresses them.
func (p *pageHolder) valuesBytes() []byte {
	if p.isV1() {
		return p.v1.valuesBytes()
	}
	return p.v2.valuesBytes()
}

// rewrite replaces the page's values run with newValues encoded with
// newEncoding, and marks the page uncompressed again so the emit pipeline
// recompresses it.
func (p *pageHolder) rewrite(newValues []byte, newEncoding format.Encoding) {
	if p.isV1() {
		p.v1.rewrite(newValues, newEncoding)
		return
	}
	p.v2.rewrite(newValues, newEncoding)
}

// compressIfNeeded compresses the page's body in place if it is not
// already compressed. It is idempotent: a page whose compressed flag is
// already set is left untouched. Output buffers are allocator-owned and
// registered with register so they are released exactly once at
// end-of-chunk.
func (p *pageHolder) compressIfNeeded(codec compress.Codec, alloc Allocator, register func([]byte)) error {
	if p.isV1() {
		return p.v1.compressIfNeeded(codec, alloc, register)
	}
	return p.v2.compressIfNeeded(codec, alloc, register)
}

// pageHolderV1 buffers a single v1 data page. body holds either the
// uncompressed concatenation of rl ‖ dl ‖ values (while !compressed) or
// the codec-compressed blob of that same concatenation (once
// compressed). dataOffset is the byte offset within the uncompressed
// body at which the values run begins; it is only meaningful while
// !compressed, which holds for every dictionary-encoded page until the
// emit pipeline compresses it.
type pageHolderV1 struct {
	valueCount        int
	nonNullValueCount int
	statistics        format.Statistics
	rlEncoding        format.Encoding
	dlEncoding        format.Encoding
	valuesEncoding    format.Encoding

	uncompressedSize int
	body             []byte
	compressed       bool
	dataOffset       int
}

func newPageHolderV1(rl, dl, values []byte, valueCount, nonNullValueCount int, stats format.Statistics, rlEncoding, dlEncoding, valuesEncoding format.Encoding) *pageHolderV1 {
	body := make([]byte, 0, len(rl)+len(dl)+len(values))
	body = append(body, rl...)
	body = append(body, dl...)
	body = append(body, values...)
	return &pageHolderV1{
		valueCount:        valueCount,
		nonNullValueCount: nonNullValueCount,
		statistics:        stats,
		rlEncoding:        rlEncoding,
		dlEncoding:        dlEncoding,
		valuesEncoding:    valuesEncoding,
		uncompressedSize:  len(body),
		body:              body,
		dataOffset:        len(rl) + len(dl),
	}
}

// valuesBytes returns the slice of the uncompressed body holding just the
// values run, skipping the rl/dl prefix. Only valid while !compressed.
func (h *pageHolderV1) valuesBytes() []byte { return h.body[h.dataOffset:] }

// rewrite replaces the page's values run with newValues (already encoded
// with newEncoding) and resets compressed to false so the emit pipeline
// recompresses it. The rl/dl prefix is preserved verbatim.
func (h *pageHolderV1) rewrite(newValues []byte, newEncoding format.Encoding) {
	body := make([]byte, h.dataOffset, h.dataOffset+len(newValues))
	copy(body, h.body[:h.dataOffset])
	body = append(body, newValues...)
	h.body = body
	h.uncompressedSize = len(body)
	h.valuesEncoding = newEncoding
	h.compressed = false
}

func (h *pageHolderV1) compressIfNeeded(codec compress.Codec, alloc Allocator, register func([]byte)) error {
	if h.compressed {
		return nil
	}
	dst := alloc.Allocate(len(h.body))
	out, err := codec.Encode(dst, h.body)
	if err != nil {
		return err
	}
	register(out)
	h.body = out
	h.compressed = true
	return nil
}

// compressedSize is the current on-disk size of the body: only valid
// after compressIfNeeded has run (or immediately, for a page that was
// compressed eagerly at write time).
func (h *pageHolderV1) compressedSize() int { return len(h.body) }

// pageHolderV2 buffers a single v2 data page. rlBytes/dlBytes are always
// stored uncompressed and emitted verbatim; valuesBody follows the same
// compressed/uncompressed lifecycle as pageHolderV1.body, scoped to just
// the values run.
type pageHolderV2 struct {
	rowCount          int
	nullCount         int
	valueCount        int
	nonNullValueCount int
	statistics        format.Statistics
	valuesEncoding    format.Encoding

	rlBytes []byte
	dlBytes []byte

	uncompressedValuesSize int
	valuesBody             []byte
	compressed             bool
}

func newPageHolderV2(rowCount, nullCount, valueCount int, rlBytes, dlBytes []byte, valuesEncoding format.Encoding, values []byte, stats format.Statistics) *pageHolderV2 {
	return &pageHolderV2{
		rowCount:               rowCount,
		nullCount:              nullCount,
		valueCount:             valueCount,
		nonNullValueCount:      valueCount - nullCount,
		statistics:             stats,
		valuesEncoding:         valuesEncoding,
		rlBytes:                rlBytes,
		dlBytes:                dlBytes,
		uncompressedValuesSize: len(values),
		valuesBody:             values,
	}
}

func (h *pageHolderV2) valuesBytes() []byte { return h.valuesBody }

func (h *pageHolderV2) rewrite(newValues []byte, newEncoding format.Encoding) {
	h.valuesBody = newValues
	h.uncompressedValuesSize = len(newValues)
	h.valuesEncoding = newEncoding
	h.compressed = false
}

func (h *pageHolderV2) compressIfNeeded(codec compress.Codec, alloc Allocator, register func([]byte)) error {
	if h.compressed {
		return nil
	}
	dst := alloc.Allocate(len(h.valuesBody))
	out, err := codec.Encode(dst, h.valuesBody)
	if err != nil {
		return err
	}
	register(out)
	h.valuesBody = out
	h.compressed = true
	return nil
}

func (h *pageHolderV2) compressedValuesSize() int { return len(h.valuesBody) }
