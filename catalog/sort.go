package catalog

import "sort"

// ByRecency orders entries most recently modified first.
var ByRecency = func(e1, e2 *Entry) bool {
	return e1.ModTime.After(e2.ModTime)
}

// SortByRecency sorts entries by modification time, newest first. The
// sort is stable: entries with equal times keep their discovery order.
func SortByRecency(entries []Entry) {
	entryBy(ByRecency).Sort(entries)
}

// entryBy is a closure used in the Sort.Less method.
type entryBy func(e1, e2 *Entry) bool

// Sort stable sorts the entries given the receiver's sort order.
func (by entryBy) Sort(entries []Entry) {
	es := &entrySorter{
		entries: entries,
		by:      by,
	}
	sort.Stable(es)
}

// An entrySorter implements the sort interface for entries.
type entrySorter struct {
	entries []Entry
	by      entryBy
}

func (es *entrySorter) Len() int      { return len(es.entries) }
func (es *entrySorter) Swap(i, j int) { es.entries[i], es.entries[j] = es.entries[j], es.entries[i] }

// Less is part of sort.Interface. It is implemented by calling the "by" closure in the sorter.
func (es *entrySorter) Less(i, j int) bool { return es.by(&es.entries[i], &es.entries[j]) }
