package dict

import (
	"sort"

	"github.com/jpfielding/dcmpix/pkg/dcm/tag"
	"github.com/jpfielding/dcmpix/pkg/dcm/vr"
)

// Entry is one immutable dictionary row
type Entry struct {
	Tag    tag.Tag
	VR     vr.VR
	Action Action
	Name   string
}

// Known reports whether the entry came from the table
func (e Entry) Known() bool {
	return e.Name != ""
}

// Lookup finds the entry for t. The scan stops at the first row not less
// than t and never passes the sentinel. Unknown tags resolve to the
// context sensitive "xs" VR with no action and row -1.
func Lookup(t tag.Tag) (Entry, int) {
	n := len(table) - 1 // sentinel excluded
	i := sort.Search(n, func(i int) bool {
		return !table[i].Tag.Less(t)
	})
	if i < n && table[i].Tag == t {
		return table[i], i
	}
	return Entry{Tag: t, VR: vr.XS, Action: None}, -1
}

// Keyword returns the dictionary name for t, or "" if unknown
func Keyword(t tag.Tag) string {
	e, _ := Lookup(t)
	return e.Name
}

// Len returns the number of rows, sentinel excluded
func Len() int {
	return len(table) - 1
}

// At returns row i. It panics on an out of range index like a slice would.
func At(i int) Entry {
	return table[i]
}
