package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
)

// priorityValue is a -p flag: a priority name or its index 0-5.
type priorityValue struct {
	p *errands.Priority
}

var _ pflag.Value = priorityValue{}

func (v priorityValue) String() string {
	if v.p == nil || *v.p == errands.NoPriority {
		return ""
	}
	return v.p.String()
}

func (v priorityValue) Set(s string) error {
	p, err := errands.ParsePriority(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

func (priorityValue) Type() string { return "priority" }

// locationValue is a -l flag.
type locationValue struct {
	loc *location.Location
}

var _ pflag.Value = locationValue{}

func (v locationValue) String() string {
	if v.loc == nil || *v.loc == location.Auto {
		return ""
	}
	return v.loc.String()
}

func (v locationValue) Set(s string) error {
	loc, err := location.Parse(s)
	if err != nil {
		return err
	}
	*v.loc = loc
	return nil
}

func (locationValue) Type() string { return "location" }

// orderValue is a -o flag.
type orderValue struct {
	o *errands.Order
}

var _ pflag.Value = orderValue{}

func (v orderValue) String() string {
	if v.o == nil {
		return errands.Descending.String()
	}
	return v.o.String()
}

func (v orderValue) Set(s string) error {
	o, err := errands.ParseOrder(s)
	if err != nil {
		return err
	}
	*v.o = o
	return nil
}

func (orderValue) Type() string { return "order" }

func addLocationFlag(fs *pflag.FlagSet, loc *location.Location) {
	fs.VarP(locationValue{loc}, "location", "l",
		"List location (local|user|global), probed in that order when omitted")
}

func addPriorityFlag(fs *pflag.FlagSet, p *errands.Priority, usage string) {
	fs.VarP(priorityValue{p}, "priority", "p",
		usage+" ("+strings.Join(errands.PriorityNames(), "|")+" or 0-5)")
}
