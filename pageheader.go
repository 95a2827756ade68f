package parquet

import (
	"bytes"
	"encoding/binary"

	"github.com/parquetcore/pagewriter/format"
)

// BinaryPageHeaderConverter is a minimal PageHeaderConverter: it packs a
// page's metadata fields into a small fixed/varint binary record. It does
// not attempt to match the real parquet.thrift DataPageHeader encoding —
// the wire format of page headers is an external collaborator's concern
// per the writer's contract, and the core only ever reads back the
// returned slice's length. Production callers wire in a converter backed
// by the project's actual thrift (or equivalent) serializer; this one
// exists so the writer is usable, and testable, standalone.
type BinaryPageHeaderConverter struct{}

func (BinaryPageHeaderConverter) DataPageHeader(meta DataPageV1Meta) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(0))
	writeVarint(buf, int64(meta.NumValues))
	buf.WriteByte(byte(meta.Encoding))
	buf.WriteByte(byte(meta.RepetitionLevelEncoding))
	buf.WriteByte(byte(meta.DefinitionLevelEncoding))
	writeVarint(buf, int64(meta.UncompressedSize))
	writeVarint(buf, int64(meta.CompressedSize))
	writeStatistics(buf, meta.Statistics)
	return buf.Bytes(), nil
}

func (BinaryPageHeaderConverter) DataPageV2Header(meta DataPageV2Meta) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(1))
	writeVarint(buf, int64(meta.NumValues))
	writeVarint(buf, int64(meta.NumNulls))
	writeVarint(buf, int64(meta.NumRows))
	buf.WriteByte(byte(meta.Encoding))
	writeVarint(buf, int64(meta.RepetitionLevelsByteLength))
	writeVarint(buf, int64(meta.DefinitionLevelsByteLength))
	if meta.IsCompressed {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	writeVarint(buf, int64(meta.UncompressedSize))
	writeVarint(buf, int64(meta.CompressedSize))
	writeStatistics(buf, meta.Statistics)
	return buf.Bytes(), nil
}

func (BinaryPageHeaderConverter) DictionaryPageHeader(meta DictionaryPageMeta) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(2))
	writeVarint(buf, int64(meta.NumValues))
	buf.WriteByte(byte(meta.Encoding))
	writeVarint(buf, int64(meta.UncompressedSize))
	writeVarint(buf, int64(meta.CompressedSize))
	if meta.IsSorted {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	return buf.Bytes(), nil
}

func writeVarint(buf *bytes.Buffer, v int64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], v)
	buf.Write(tmp[:n])
}

func writeStatistics(buf *bytes.Buffer, stats format.Statistics) {
	if stats.HasMinMax {
		buf.WriteByte(1)
		writeVarint(buf, int64(len(stats.Min)))
		buf.Write(stats.Min)
		writeVarint(buf, int64(len(stats.Max)))
		buf.Write(stats.Max)
	} else {
		buf.WriteByte(0)
	}
	writeVarint(buf, stats.NullCount)
}

var _ PageHeaderConverter = BinaryPageHeaderConverter{}
