package sheetconv

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/aerissecure/sheetconv/xlsx"
)

// ErrUnknownSheet is returned by ApplyMerges for a sheet id the document does
// not contain.
var ErrUnknownSheet = errors.New("unknown sheet")

// ApplyMerges decodes the merge strings returned by Import into each sheet's
// mergeData, replacing what was there. doc is left untouched on error.
func ApplyMerges(doc *univer.WorkbookData, merges map[string][]string) error {
	ids := make([]string, 0, len(merges))
	for id := range merges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	decoded := make(map[string][]univer.Range, len(ids))
	for _, id := range ids {
		if ws := doc.Sheets[id]; ws == nil {
			return fmt.Errorf("applying merges to %q: %w", id, ErrUnknownSheet)
		}
		ranges := make([]univer.Range, 0, len(merges[id]))
		for _, ref := range merges[id] {
			rng, err := xlsx.DecodeRange(ref)
			if err != nil {
				return fmt.Errorf("applying merges to %q: %w", id, err)
			}
			ranges = append(ranges, rng)
		}
		decoded[id] = ranges
	}
	for id, ranges := range decoded {
		doc.Sheets[id].MergeData = ranges
	}
	return nil
}
