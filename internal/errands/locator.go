package errands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"github.com/bdreece/errands/internal/location"
)

// lockRetryDelay is how often Edit retries a held lock.
const lockRetryDelay = 50 * time.Millisecond

// Locator opens and persists lists at named locations.
type Locator struct {
	paths  location.Paths
	logger *log.Logger
}

// NewLocator returns a Locator over paths. A nil logger discards tracing.
func NewLocator(paths location.Paths, logger *log.Logger) *Locator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Locator{paths: paths, logger: logger}
}

// Paths returns the candidate paths.
func (lc *Locator) Paths() location.Paths {
	return lc.paths
}

// Resolve maps loc to a file path. An explicit location maps to its
// configured path whether or not the file exists. Auto probes local, user,
// then global and fails with ErrNotFound when none exist.
func (lc *Locator) Resolve(loc location.Location) (location.Location, string, error) {
	if loc != location.Auto {
		path := lc.paths.Path(loc)
		if path == "" {
			return loc, "", fmt.Errorf("%w: no path configured for %s location", ErrNotFound, loc)
		}
		lc.logger.Debug("Using errands list in "+loc.Describe(), "path", path)
		return loc, path, nil
	}

	lc.logger.Debug("List location not specified, probing")
	found, path, ok := lc.paths.ProbeTrace(func(c location.Location, path string, found bool) {
		if found {
			lc.logger.Debug("Found errands list in "+c.Describe(), "path", path)
			return
		}
		lc.logger.Debug("No errands list in "+c.Describe(), "path", path)
	})
	if !ok {
		return location.Auto, "", ErrNotFound
	}
	return found, path, nil
}

// Create writes a fresh list at loc, which must be explicit.
func (lc *Locator) Create(loc location.Location) (*List, string, error) {
	if loc == location.Auto {
		return nil, "", fmt.Errorf("create errands list: location is required")
	}
	_, path, err := lc.Resolve(loc)
	if err != nil {
		return nil, "", err
	}
	lc.logger.Debug("Dumping template list to file", "path", path)
	l, err := Create(path)
	if err != nil {
		return nil, path, err
	}
	return l, path, nil
}

// Open loads the list at loc, probing when loc is Auto.
func (lc *Locator) Open(loc location.Location) (*List, string, error) {
	_, path, err := lc.Resolve(loc)
	if err != nil {
		return nil, "", err
	}
	l, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	lc.logger.Debug("Loaded errands list", "path", path, "errands", l.Len())
	return l, path, nil
}

// Persist writes l to loc, probing when loc is Auto.
func (lc *Locator) Persist(l *List, loc location.Location, truncate bool) error {
	_, path, err := lc.Resolve(loc)
	if err != nil {
		return err
	}
	if err := l.Save(path, truncate); err != nil {
		return err
	}
	lc.logger.Debug("Saved errands list", "path", path, "errands", l.Len())
	return nil
}

// Edit runs one load, mutate, persist cycle on the list at loc while
// holding an advisory lock on the list file itself. The file is rewritten in
// place so the lock stays on the same inode. If fn fails nothing is written.
func (lc *Locator) Edit(ctx context.Context, loc location.Location, fn func(*List) error) error {
	_, path, err := lc.Resolve(loc)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("stat errands file: %w", err)
	}

	lock := flock.New(path, flock.SetFlag(os.O_RDONLY))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock errands file: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock errands file: %s is busy", path)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			lc.logger.Warn("Failed to release lock", "path", path, "err", err)
		}
	}()

	l, err := Load(path)
	if err != nil {
		return err
	}
	if err := fn(l); err != nil {
		return err
	}
	if err := l.Save(path, true); err != nil {
		return err
	}
	lc.logger.Debug("Saved errands list", "path", path, "errands", l.Len())
	return nil
}
