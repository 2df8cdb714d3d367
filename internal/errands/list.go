package errands

import (
	"fmt"
	"slices"
)

type bucket struct {
	present bool
	items   []string
}

// List is an errand list: one ordered bucket per priority, indexed by rank so
// iteration always follows priority order. The zero value is an empty list
// with no buckets; use New for a fresh list.
type List struct {
	buckets [NumPriorities]bucket
}

// New returns a list holding all six buckets, each empty.
func New() *List {
	l := &List{}
	for i := range l.buckets {
		l.buckets[i] = bucket{present: true, items: []string{}}
	}
	return l
}

// Has reports whether the bucket for p exists.
func (l *List) Has(p Priority) bool {
	if !p.Valid() {
		return false
	}
	return l.buckets[p.Rank()].present
}

// Bucket returns a copy of the errands stored under p and whether the bucket
// exists.
func (l *List) Bucket(p Priority) ([]string, bool) {
	if !l.Has(p) {
		return nil, false
	}
	return slices.Clone(l.buckets[p.Rank()].items), true
}

// Present returns the priorities whose buckets exist, in rank order.
func (l *List) Present() []Priority {
	var out []Priority
	for _, p := range Priorities() {
		if l.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the total number of errands across all buckets.
func (l *List) Len() int {
	n := 0
	for _, b := range l.buckets {
		n += len(b.items)
	}
	return n
}

// Add appends errand to the bucket for p, or to DefaultPriority when p is
// NoPriority. A missing bucket is recreated. It returns the priority the
// errand was stored under.
func (l *List) Add(errand string, p Priority) (Priority, error) {
	if p == NoPriority {
		p = DefaultPriority
	}
	if err := checkPriority(p); err != nil {
		return NoPriority, err
	}
	b := l.ensure(p)
	b.items = append(b.items, errand)
	return p, nil
}

// Clean removes the bucket for p entirely, or every bucket when p is
// NoPriority.
func (l *List) Clean(p Priority) error {
	if p == NoPriority {
		l.buckets = [NumPriorities]bucket{}
		return nil
	}
	if err := checkPriority(p); err != nil {
		return err
	}
	l.buckets[p.Rank()] = bucket{}
	return nil
}

// Remove drops every errand whose text exactly matches one of names. With a
// priority it only touches that bucket, recreating it if it was cleaned;
// with NoPriority it filters every present bucket. It returns the number of
// errands removed.
func (l *List) Remove(p Priority, names []string) (int, error) {
	if p != NoPriority {
		if err := checkPriority(p); err != nil {
			return 0, err
		}
	}
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}
	keep := func(b *bucket) int {
		before := len(b.items)
		b.items = slices.DeleteFunc(b.items, func(item string) bool {
			_, ok := drop[item]
			return ok
		})
		return before - len(b.items)
	}

	if p != NoPriority {
		return keep(l.ensure(p)), nil
	}
	removed := 0
	for i := range l.buckets {
		if l.buckets[i].present {
			removed += keep(&l.buckets[i])
		}
	}
	return removed, nil
}

func checkPriority(p Priority) error {
	if !p.Valid() {
		return fmt.Errorf("invalid priority %d", uint8(p))
	}
	return nil
}

// ensure returns the bucket for p, creating it when missing.
func (l *List) ensure(p Priority) *bucket {
	b := &l.buckets[p.Rank()]
	if !b.present {
		*b = bucket{present: true, items: []string{}}
	}
	return b
}

// set replaces the bucket for p. Used by decoding.
func (l *List) set(p Priority, items []string) {
	if items == nil {
		items = []string{}
	}
	l.buckets[p.Rank()] = bucket{present: true, items: items}
}
