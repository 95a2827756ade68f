package parquet

import "github.com/parquetcore/pagewriter/format"

// runDictionaryFallback decodes the column's buffered dictionary page and
// re-encodes every dictionary-encoded buffered page with a plain encoder,
// because at least one page ended up with a non-dictionary encoding and
// the dictionary would otherwise describe indices a reader can no longer
// resolve. Pages already using a non-dictionary encoding are left
// untouched.
func runDictionaryFallback(pt PrimitiveType, dict *bufferedDictionaryPage, pages []*pageHolder) error {
	entries, err := decodeDictionaryEntries(pt, dict.body, dict.numValues)
	if err != nil {
		return ErrEncodingFailure
	}

	for _, page := range pages {
		if !page.valuesEncoding().UsesDictionary() {
			continue
		}

		ids, err := decodeDictionaryIndices(page.valuesBytes(), page.nonNullValueCount())
		if err != nil {
			return ErrEncodingFailure
		}

		values := make([]Value, len(ids))
		for i, id := range ids {
			if int(id) < 0 || int(id) >= len(entries) {
				return ErrEncodingFailure
			}
			values[i] = entries[id]
		}

		encoded, err := encodeDictionaryEntries(pt, values)
		if err != nil {
			return ErrEncodingFailure
		}

		page.rewrite(encoded, format.Plain)
	}

	return nil
}
