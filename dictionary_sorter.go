package parquet

import "sort"

// sortDictionary decodes the buffered dictionary's entries, sorts them in
// the primitive type's natural order, and returns the entries in sorted
// order together with the oldId -> newId permutation every buffered
// page's indices must be rewritten through.
func sortDictionary(pt PrimitiveType, dict *bufferedDictionaryPage) (sorted []Value, oldToNew []int32, err error) {
	entries, err := decodeDictionaryEntries(pt, dict.body, dict.numValues)
	if err != nil {
		return nil, nil, err
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return pt.Compare(entries[order[i]], entries[order[j]]) < 0
	})

	sorted = make([]Value, len(entries))
	oldToNew = make([]int32, len(entries))
	for newID, oldID := range order {
		sorted[newID] = entries[oldID]
		oldToNew[oldID] = int32(newID)
	}
	return sorted, oldToNew, nil
}

// remapPageIndices rewrites page's dictionary indices from old ids to new
// ids using oldToNew, re-encoding the index run with the same (still
// dictionary) encoding. Preconditions: page is dictionary-encoded.
func remapPageIndices(page *pageHolder, oldToNew []int32, numEntries int) error {
	ids, err := decodeDictionaryIndices(page.valuesBytes(), page.nonNullValueCount())
	if err != nil {
		return ErrEncodingFailure
	}

	remapped := make([]int32, len(ids))
	for i, id := range ids {
		if int(id) < 0 || int(id) >= len(oldToNew) {
			return ErrEncodingFailure
		}
		remapped[i] = oldToNew[id]
	}

	encoded, err := encodeDictionaryIndices(remapped, numEntries)
	if err != nil {
		return ErrEncodingFailure
	}

	page.rewrite(encoded, page.valuesEncoding())
	return nil
}
