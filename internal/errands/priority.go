package errands

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is an errand priority level. Lower values are more urgent.
type Priority uint8

// Priority levels in rank order. NoPriority is the zero value and means
// "not specified" wherever a priority is optional.
const (
	NoPriority Priority = iota
	Emergency
	Urgent
	High
	Medium
	Routine
	Deferred
)

// NumPriorities is the number of real priority levels.
const NumPriorities = int(Deferred)

// DefaultPriority is used by Add when no priority is given.
const DefaultPriority = Routine

var priorityNames = [...]string{
	NoPriority: "",
	Emergency:  "Emergency",
	Urgent:     "Urgent",
	High:       "High",
	Medium:     "Medium",
	Routine:    "Routine",
	Deferred:   "Deferred",
}

// Priorities returns all priority levels, most urgent first.
func Priorities() []Priority {
	return []Priority{Emergency, Urgent, High, Medium, Routine, Deferred}
}

// Valid reports whether p is one of the six priority levels.
func (p Priority) Valid() bool {
	return p >= Emergency && p <= Deferred
}

// Rank returns the zero-based rank of p (Emergency is 0).
// It returns -1 for NoPriority and out of range values.
func (p Priority) Rank() int {
	if !p.Valid() {
		return -1
	}
	return int(p) - 1
}

// String returns the priority name.
func (p Priority) String() string {
	if int(p) < len(priorityNames) {
		return priorityNames[p]
	}
	return fmt.Sprintf("Priority(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid priority %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using exact names.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, ok := priorityByName(string(text))
	if !ok {
		return fmt.Errorf("unknown priority %q", text)
	}
	*p = parsed
	return nil
}

// ParsePriority parses a priority name (case-insensitive) or a rank index,
// where 0 is Emergency and 5 is Deferred.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoPriority, fmt.Errorf("empty priority")
	}
	if idx, err := strconv.Atoi(s); err == nil {
		if idx < 0 || idx >= NumPriorities {
			return NoPriority, fmt.Errorf("priority index %d out of range 0-%d", idx, NumPriorities-1)
		}
		return Priority(idx + 1), nil
	}
	for _, p := range Priorities() {
		if strings.EqualFold(p.String(), s) {
			return p, nil
		}
	}
	return NoPriority, fmt.Errorf("invalid priority %q, must be one of: %s", s, strings.Join(PriorityNames(), ", "))
}

// PriorityNames returns the priority names in rank order.
func PriorityNames() []string {
	names := make([]string, 0, NumPriorities)
	for _, p := range Priorities() {
		names = append(names, p.String())
	}
	return names
}

func priorityByName(name string) (Priority, bool) {
	for _, p := range Priorities() {
		if p.String() == name {
			return p, true
		}
	}
	return NoPriority, false
}
