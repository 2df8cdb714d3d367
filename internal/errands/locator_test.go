package errands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"github.com/bdreece/errands/internal/location"
)

func testPaths(t *testing.T) location.Paths {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"local", "user", "global"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return location.Paths{
		Local:  filepath.Join(root, "local", location.DefaultFile),
		User:   filepath.Join(root, "user", location.DefaultFile),
		Global: filepath.Join(root, "global", location.DefaultFile),
	}
}

func TestLocatorResolve(t *testing.T) {
	paths := testPaths(t)
	lc := NewLocator(paths, nil)

	if _, _, err := lc.Resolve(location.Auto); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve(auto) with no files: %v, want ErrNotFound", err)
	}

	// Explicit locations resolve even when the file does not exist yet.
	for _, loc := range location.Candidates() {
		got, path, err := lc.Resolve(loc)
		if err != nil || got != loc || path != paths.Path(loc) {
			t.Errorf("Resolve(%s) = %s, %q, %v", loc, got, path, err)
		}
	}

	steps := []struct {
		create location.Location
		want   location.Location
	}{
		{location.Global, location.Global},
		{location.User, location.User},
		{location.Local, location.Local},
	}
	for _, step := range steps {
		if _, _, err := lc.Create(step.create); err != nil {
			t.Fatalf("Create(%s): %v", step.create, err)
		}
		got, path, err := lc.Resolve(location.Auto)
		if err != nil {
			t.Fatalf("Resolve(auto): %v", err)
		}
		if got != step.want || path != paths.Path(step.want) {
			t.Errorf("after creating %s: Resolve(auto) = %s (%s), want %s", step.create, got, path, step.want)
		}
	}
}

func TestLocatorCreateRequiresLocation(t *testing.T) {
	lc := NewLocator(testPaths(t), nil)
	if _, _, err := lc.Create(location.Auto); err == nil {
		t.Error("Create(auto) should fail")
	}
}

func TestLocatorOpenPersist(t *testing.T) {
	paths := testPaths(t)
	lc := NewLocator(paths, nil)

	if _, _, err := lc.Open(location.User); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Open(user) before create: %v, want ErrNotFound", err)
	}
	if _, _, err := lc.Create(location.User); err != nil {
		t.Fatal(err)
	}

	l, path, err := lc.Open(location.Auto)
	if err != nil {
		t.Fatalf("Open(auto): %v", err)
	}
	if path != paths.User {
		t.Errorf("Open(auto) path = %q, want %q", path, paths.User)
	}
	mustAdd(t, l, "renew passport", High)
	if err := lc.Persist(l, location.Auto, false); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	reloaded, _, err := lc.Open(location.User)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := reloaded.Bucket(High); len(got) != 1 || got[0] != "renew passport" {
		t.Errorf("High after persist = %v", got)
	}
}

func TestLocatorEdit(t *testing.T) {
	paths := testPaths(t)
	lc := NewLocator(paths, nil)
	ctx := context.Background()

	if _, _, err := lc.Create(location.Local); err != nil {
		t.Fatal(err)
	}

	err := lc.Edit(ctx, location.Auto, func(l *List) error {
		_, err := l.Add("buy milk", NoPriority)
		return err
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	boom := errors.New("boom")
	err = lc.Edit(ctx, location.Local, func(l *List) error {
		if err := l.Clean(NoPriority); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Edit error = %v, want boom", err)
	}

	l, err := Load(paths.Local)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := l.Bucket(Routine); len(got) != 1 || got[0] != "buy milk" {
		t.Errorf("Routine = %v; a failed edit must not be persisted", got)
	}
}

func TestLocatorTracesProbing(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	paths := testPaths(t)
	lc := NewLocator(paths, logger)

	if _, _, err := lc.Create(location.Global); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if _, _, err := lc.Open(location.Auto); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"List location not specified",
		"No errands list in current working directory",
		"No errands list in user config directory",
		"Found errands list in global directory",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLocatorEditConcurrent(t *testing.T) {
	paths := testPaths(t)
	lc := NewLocator(paths, nil)
	if _, _, err := lc.Create(location.Local); err != nil {
		t.Fatal(err)
	}

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- lc.Edit(context.Background(), location.Local, func(l *List) error {
				_, err := l.Add(fmt.Sprintf("errand %d", i), Medium)
				return err
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("Edit: %v", err)
		}
	}

	l, err := Load(paths.Local)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := l.Bucket(Medium)
	if len(got) != n {
		t.Fatalf("Medium has %d errands, want %d: %v", len(got), n, got)
	}
	for i := range n {
		if !slices.Contains(got, fmt.Sprintf("errand %d", i)) {
			t.Errorf("errand %d was lost", i)
		}
	}
}

func TestLocatorEditWaitsForLock(t *testing.T) {
	paths := testPaths(t)
	lc := NewLocator(paths, nil)
	if _, _, err := lc.Create(location.Local); err != nil {
		t.Fatal(err)
	}

	held := flock.New(paths.Local)
	if err := held.Lock(); err != nil {
		t.Fatal(err)
	}
	defer held.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(150*time.Millisecond, cancel)
	called := false
	err := lc.Edit(ctx, location.Local, func(l *List) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Edit with held lock = %v, want context.Canceled", err)
	}
	if called {
		t.Error("Edit ran while the list was locked")
	}

	if err := held.Unlock(); err != nil {
		t.Fatal(err)
	}
	err = lc.Edit(context.Background(), location.Local, func(l *List) error {
		_, err := l.Add("after unlock", NoPriority)
		return err
	})
	if err != nil {
		t.Fatalf("Edit after unlock: %v", err)
	}
}

func TestLocatorEditLeavesNoLockFile(t *testing.T) {
	paths := testPaths(t)
	lc := NewLocator(paths, nil)
	if _, _, err := lc.Create(location.Global); err != nil {
		t.Fatal(err)
	}

	// The list is writable but its directory is not.
	dir := filepath.Dir(paths.Global)
	if err := os.Chmod(paths.Global, 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	err := lc.Edit(context.Background(), location.Global, func(l *List) error {
		_, err := l.Add("x", NoPriority)
		return err
	})
	if err != nil {
		t.Fatalf("Edit in read-only directory: %v", err)
	}

	l, err := Load(paths.Global)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := l.Bucket(DefaultPriority); !slices.Equal(got, []string{"x"}) {
		t.Errorf("%s = %v, want [x]", DefaultPriority, got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if !slices.Equal(names, []string{location.DefaultFile}) {
		t.Errorf("directory holds %v, want only %s", names, location.DefaultFile)
	}
}

func TestLocatorEditMissingFile(t *testing.T) {
	paths := testPaths(t)
	lc := NewLocator(paths, nil)
	err := lc.Edit(context.Background(), location.Local, func(l *List) error { return nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Edit on missing list = %v, want ErrNotFound", err)
	}
	if location.Exists(paths.Local) {
		t.Error("Edit created the list file")
	}
}
