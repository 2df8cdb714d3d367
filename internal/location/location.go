// Package location names the places an errands list can live and resolves
// them to file paths.
package location

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Dir is the name of the errands directory under config roots.
	Dir = "errands"

	// DefaultFile is the list file name at every location.
	DefaultFile = "errands.yml"

	// GlobalRoot is the system-wide configuration root on Unix systems.
	GlobalRoot = "/etc"
)

// Location is a named storage target. Auto means "not specified": resolve
// by probing.
type Location int

const (
	Auto Location = iota
	Local
	User
	Global
)

var names = [...]string{
	Auto:   "auto",
	Local:  "local",
	User:   "user",
	Global: "global",
}

func (l Location) String() string {
	if l >= 0 && int(l) < len(names) {
		return names[l]
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Describe returns a human readable name for log output.
func (l Location) Describe() string {
	switch l {
	case Local:
		return "current working directory"
	case User:
		return "user config directory"
	case Global:
		return "global directory"
	default:
		return "unspecified location"
	}
}

// Parse parses a location name, case-insensitive. Empty means Auto.
func Parse(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "local":
		return Local, nil
	case "user":
		return User, nil
	case "global":
		return Global, nil
	default:
		return Auto, fmt.Errorf("invalid location %q, must be one of: local, user, global", s)
	}
}

// Candidates returns the probing order used when no location is given.
func Candidates() []Location {
	return []Location{Local, User, Global}
}

// Paths holds the resolved file path for each location.
type Paths struct {
	Local  string
	User   string
	Global string
}

// DefaultPaths returns the standard paths: errands.yml in workDir, under the
// user config directory, and under /etc.
func DefaultPaths(workDir, userConfigDir string) Paths {
	if workDir == "" {
		workDir = "."
	}
	p := Paths{
		Local:  filepath.Join(workDir, DefaultFile),
		Global: filepath.Join(GlobalRoot, Dir, DefaultFile),
	}
	if userConfigDir != "" {
		p.User = filepath.Join(userConfigDir, Dir, DefaultFile)
	}
	return p
}

// Path returns the file path for loc, or "" for Auto and unknown locations.
func (p Paths) Path(loc Location) string {
	switch loc {
	case Local:
		return p.Local
	case User:
		return p.User
	case Global:
		return p.Global
	default:
		return ""
	}
}

// TraceFunc observes each candidate Probe checks.
type TraceFunc func(loc Location, path string, found bool)

// Probe returns the first candidate whose file exists, in the order of
// Candidates. ok is false when none exist.
func (p Paths) Probe() (loc Location, path string, ok bool) {
	return p.ProbeTrace(nil)
}

// ProbeTrace is Probe calling trace, if not nil, for every candidate it
// checks.
func (p Paths) ProbeTrace(trace TraceFunc) (loc Location, path string, ok bool) {
	for _, c := range Candidates() {
		path := p.Path(c)
		found := Exists(path)
		if trace != nil {
			trace(c, path, found)
		}
		if found {
			return c, path, true
		}
	}
	return Auto, "", false
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
