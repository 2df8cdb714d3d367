package errands

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
)

// Order controls the ordering step of a listing.
type Order int

const (
	// Descending keeps priority rank order, most urgent first.
	Descending Order = iota
	// Ascending reverses priority rank order.
	Ascending
	// Random shuffles the selection.
	Random
)

var orderNames = map[Order]string{
	Descending: "descending",
	Ascending:  "ascending",
	Random:     "random",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder parses an order name, case-insensitive. Empty means Descending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "descending", "desc":
		return Descending, nil
	case "ascending", "asc":
		return Ascending, nil
	case "random", "shuffle":
		return Random, nil
	default:
		return Descending, fmt.Errorf("invalid order %q, must be one of: descending, ascending, random", s)
	}
}

// Item is one listed errand tagged with the priority it was stored under.
type Item struct {
	Text     string
	Priority Priority
}

// ListOptions selects, orders, filters, and truncates a listing. The zero
// value lists everything in rank order.
type ListOptions struct {
	// Ignore is a regular expression; matching errands are dropped.
	Ignore string
	Order  Order
	// Priority restricts the listing to one bucket.
	Priority Priority
	// Count caps the number of results when Limited is set. A limited
	// listing with Count 0 returns nothing.
	Count   int
	Limited bool
	// Rand drives Random ordering. Nil uses the global source.
	Rand *rand.Rand
}

// Query lists errands. The steps run in a fixed order: select, order, filter,
// truncate. It never modifies the list.
func (l *List) Query(opts ListOptions) ([]Item, error) {
	// A bad pattern fails before anything is selected.
	var ignore *regexp.Regexp
	if opts.Ignore != "" {
		re, err := regexp.Compile(opts.Ignore)
		if err != nil {
			return nil, &PatternError{Pattern: opts.Ignore, Err: err}
		}
		ignore = re
	}

	items, err := l.selectItems(opts.Priority)
	if err != nil {
		return nil, err
	}

	switch opts.Order {
	case Descending:
	case Ascending:
		slices.Reverse(items)
	case Random:
		shuffle := rand.Shuffle
		if opts.Rand != nil {
			shuffle = opts.Rand.Shuffle
		}
		shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	default:
		return nil, fmt.Errorf("invalid order %d", int(opts.Order))
	}

	if ignore != nil {
		items = slices.DeleteFunc(items, func(item Item) bool {
			return ignore.MatchString(item.Text)
		})
	}

	if opts.Limited {
		items = items[:min(max(opts.Count, 0), len(items))]
	}
	return items, nil
}

// Texts returns the errand texts of items, in order.
func Texts(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Text
	}
	return out
}

func (l *List) selectItems(p Priority) ([]Item, error) {
	if p != NoPriority {
		if err := checkPriority(p); err != nil {
			return nil, err
		}
		if !l.Has(p) {
			return nil, &LookupError{Priority: p}
		}
		return tag(p, l.buckets[p.Rank()].items, nil), nil
	}

	items := make([]Item, 0, l.Len())
	for _, p := range Priorities() {
		if l.Has(p) {
			items = tag(p, l.buckets[p.Rank()].items, items)
		}
	}
	return items, nil
}

func tag(p Priority, texts []string, dst []Item) []Item {
	for _, text := range texts {
		dst = append(dst, Item{Text: text, Priority: p})
	}
	return dst
}
