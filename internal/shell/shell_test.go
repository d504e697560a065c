package shell

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/gradebook"
)

// memStore keeps the saved roster as encoded text so tests see exactly
// what a file would hold.
type memStore struct {
	data    []byte
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() (*gradebook.Roster, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return gradebook.Decode(bytes.NewReader(m.data), gradebook.Config{})
}

func (m *memStore) Save(r *gradebook.Roster) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	var buf bytes.Buffer
	if err := gradebook.Encode(&buf, r); err != nil {
		return err
	}
	m.data = buf.Bytes()
	m.saves++
	return nil
}

func run(t *testing.T, store gradebook.Store, input string) (*Shell, string, error) {
	t.Helper()
	var out bytes.Buffer
	opts := Options{HashAlgorithm: gradebook.AlgXXHash3}
	if store != nil {
		opts.Store = store
	}
	sh := New(strings.NewReader(input), &out, opts)
	sh.Load()
	err := sh.Run()
	return sh, out.String(), err
}

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func TestIntakeAndDisplay(t *testing.T) {
	input := lines(
		"1", "ann", "", "   ", "bob", "done",
		"2", "70", "80", "90", "-1", "abc", "101", "100", "-1",
		"3",
		"5",
	)

	sh, out, err := run(t, nil, input)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "ERROR: Name cannot be blank."))
	assert.Equal(t, 2, strings.Count(out, "ERROR: Grade must be between 0 and 100."))
	assert.Contains(t, out, "Entering grades for ann (type -1 to finish):")
	assert.Contains(t, out, "ann: 70 80 90\nAverage (lowest dropped): 85.00 -> Letter Grade: B\n")
	assert.Contains(t, out, "bob: 100\nAverage (lowest dropped): 100.00 -> Letter Grade: A\n")
	assert.Contains(t, out, "Exiting Grade Book. Goodbye!")

	r := sh.Roster()
	require.Equal(t, 2, r.Len())
	ann, _ := r.Lookup("ann")
	assert.Equal(t, []int{70, 80, 90}, ann.Grades)
	bob, _ := r.Lookup("bob")
	assert.Equal(t, []int{100}, bob.Grades)
}

func TestDisplayNoGrades(t *testing.T) {
	_, out, err := run(t, nil, lines("1", "ann", "done", "3", "5"))
	require.NoError(t, err)
	assert.Contains(t, out, "ann: No grades entered.")
}

func TestEmptyRosterMessages(t *testing.T) {
	_, out, err := run(t, nil, lines("2", "3", "5"))
	require.NoError(t, err)
	assert.Contains(t, out, "No students entered yet.")
	assert.Contains(t, out, "No students to display.")
}

func TestMenuValidation(t *testing.T) {
	_, out, err := run(t, nil, lines("0", "6", "12", "x", "", "5"))
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "ERROR: Please enter a number from 1 to 5."))
}

func TestMenuWithoutStore(t *testing.T) {
	_, out, _ := run(t, nil, lines("5"))
	assert.NotContains(t, out, "Save")
	assert.Contains(t, out, "5. Exit")
}

func TestMenuWithStore(t *testing.T) {
	_, out, _ := run(t, &memStore{}, lines("6"))
	assert.Contains(t, out, "5. Save")
	assert.Contains(t, out, "6. Exit")
}

func TestEOFExits(t *testing.T) {
	store := &memStore{}
	_, out, err := run(t, store, "1\nann\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting Grade Book. Goodbye!")
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, "ann\n", string(store.data))
}

func TestLoadAndExitSaves(t *testing.T) {
	store := &memStore{data: []byte("ann 70 80 90\nbob\n")}
	_, out, err := run(t, store, lines("2", "60", "-1", "95", "-1", "6"))
	require.NoError(t, err)

	assert.Contains(t, out, "Loaded 2 student(s).")
	assert.Contains(t, out, "Grades saved.")
	assert.Equal(t, "ann 70 80 90 60\nbob 95\n", string(store.data))
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	store := &memStore{loadErr: gradebook.ErrCorruptRecord}
	var out bytes.Buffer
	sh := New(strings.NewReader(""), &out, Options{Store: store})

	err := sh.Load()
	assert.ErrorIs(t, err, gradebook.ErrCorruptRecord)
	assert.Contains(t, out.String(), "WARNING: could not load saved grades")
	assert.Equal(t, 0, sh.Roster().Len())
}

func TestSaveFailureOnExit(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	_, out, err := run(t, store, lines("6"))
	assert.Error(t, err)
	assert.Contains(t, out, "ERROR: could not save grades: disk full")
	assert.Contains(t, out, "Exiting Grade Book. Goodbye!")
}

func TestSaveItemKeepsRunning(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	_, out, _ := run(t, store, lines("5", "3", "6"))
	assert.Contains(t, out, "No students to display.")
}

func TestUnsavedMarker(t *testing.T) {
	store := &memStore{}
	_, out, err := run(t, store, lines("1", "ann", "done", "5", "6"))
	require.NoError(t, err)

	menus := strings.Split(out, "--- Grade Book Menu ---")
	require.Len(t, menus, 4) // text before the first menu, then three menus
	assert.False(t, strings.HasPrefix(menus[1], " (unsaved changes)"))
	assert.True(t, strings.HasPrefix(menus[2], " (unsaved changes)"))
	assert.False(t, strings.HasPrefix(menus[3], " (unsaved changes)"))
}

func TestSearchNotFound(t *testing.T) {
	store := &memStore{data: []byte("ann 70\n")}
	sh, out, err := run(t, store, lines("4", "zed", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, `Student not found: "zed".`)

	ann, _ := sh.Roster().Lookup("ann")
	assert.Equal(t, []int{70}, ann.Grades)
}

func TestSearchIsExact(t *testing.T) {
	store := &memStore{data: []byte("ann 70\n")}
	_, out, _ := run(t, store, lines("4", "Ann", "6"))
	assert.Contains(t, out, `Student not found: "Ann".`)
}

func TestSearchEdit(t *testing.T) {
	store := &memStore{data: []byte("ann 70 80 90\n")}
	_, out, err := run(t, store, lines(
		"4", "ann",
		"e", "5", "0", "2", "150", "85",
		"b",
		"6",
	))
	require.NoError(t, err)

	assert.Contains(t, out, "  1) 70\n  2) 80\n  3) 90\n")
	assert.Equal(t, 2, strings.Count(out, "ERROR: No grade at that position."))
	assert.Equal(t, 1, strings.Count(out, "ERROR: Grade must be between 0 and 100."))
	assert.Contains(t, out, "Updated.")
	assert.Equal(t, "ann 70 85 90\n", string(store.data))
}

func TestSearchAddDelete(t *testing.T) {
	store := &memStore{data: []byte("bob\nann 70 80 90\nann 10\n")}
	_, out, err := run(t, store, lines(
		"4", "bob", "a", "101", "60", "b",
		"4", "ann", "d", "1", "z", "b",
		"6",
	))
	require.NoError(t, err)

	assert.Contains(t, out, "ERROR: Please enter a, e, d, or b.")
	// First matching ann only.
	assert.Equal(t, "bob 60\nann 80 90\nann 10\n", string(store.data))
}

func TestSearchEmptyGrades(t *testing.T) {
	store := &memStore{data: []byte("bob\n")}
	_, out, err := run(t, store, lines("4", "bob", "e", "d", "b", "6"))
	require.NoError(t, err)
	assert.Contains(t, out, "No grades to edit.")
	assert.Contains(t, out, "No grades to delete.")
}

func TestSearchCancel(t *testing.T) {
	store := &memStore{data: []byte("ann 70 80\n")}
	_, _, err := run(t, store, lines(
		"4", "ann",
		"e", "",
		"e", "1", "-1",
		"a", "-1",
		"d", "",
		"b",
		"6",
	))
	require.NoError(t, err)
	assert.Equal(t, "ann 70 80\n", string(store.data))
}

func TestRegistry(t *testing.T) {
	r := newRegistry()
	noop := func(*Shell) error { return nil }

	require.NoError(t, r.register(menuItem{Name: "one", Label: "One", Run: noop}))
	require.NoError(t, r.register(menuItem{Name: "two", Label: "Two", Run: noop}))

	assert.Error(t, r.register(menuItem{Name: " ", Run: noop}))
	assert.Error(t, r.register(menuItem{Name: "three"}))
	assert.Error(t, r.register(menuItem{Name: "one", Run: noop}))

	item, ok := r.resolve("2")
	assert.True(t, ok)
	assert.Equal(t, "two", item.Name)

	for _, bad := range []string{"", "0", "3", "12", "a", "-1"} {
		_, ok := r.resolve(bad)
		assert.False(t, ok, "resolve(%q)", bad)
	}
	assert.Len(t, r.items, 2)
}

func itemNames(sh *Shell) []string {
	var names []string
	for _, item := range sh.menu.items {
		names = append(names, item.Name)
	}
	return names
}

func TestMenuNumbering(t *testing.T) {
	withStore := New(strings.NewReader(""), &bytes.Buffer{}, Options{Store: &memStore{}})
	assert.Equal(t, []string{"students", "grades", "display", "edit", "save", "exit"}, itemNames(withStore))

	without := New(strings.NewReader(""), &bytes.Buffer{}, Options{})
	assert.Equal(t, []string{"students", "grades", "display", "edit", "exit"}, itemNames(without))
}

// TestLoadFailureKeepsData verifies a roster that cannot be loaded is never
// replaced by the empty one the shell falls back to.
func TestLoadFailureKeepsData(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"exit", lines("6")},
		{"end of input", ""},
		{"save item", lines("5", "6")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			original := []byte("bob 90\nann 900\n")
			store := &memStore{data: original}

			_, out, err := run(t, store, tc.input)
			require.NoError(t, err)

			assert.Contains(t, out, "saving is disabled")
			assert.Zero(t, store.saves)
			assert.Equal(t, original, store.data)
		})
	}
}

// TestLoadFailureWithChanges verifies work done after a failed load is
// reported as lost instead of overwriting the file.
func TestLoadFailureWithChanges(t *testing.T) {
	original := []byte("bob 90\nann 900\n")
	store := &memStore{data: original}

	_, out, err := run(t, store, lines("1", "zed", "done", "6"))
	assert.ErrorIs(t, err, ErrSaveDisabled)
	assert.Contains(t, out, "ERROR: saving is disabled because the saved grades could not be loaded.")
	assert.Contains(t, out, "Exiting Grade Book. Goodbye!")
	assert.Equal(t, original, store.data)
}

// TestLoadFailureKeepsFile runs a session against a real roster file that
// fails to load and checks the bytes on disk are untouched.
func TestLoadFailureKeepsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grades.txt")
	original := []byte("bob 90\ncarl 70 x\n")
	require.NoError(t, os.WriteFile(path, original, 0644))

	store, err := gradebook.Open(dir, "grades.txt", gradebook.Config{})
	require.NoError(t, err)
	defer store.Close()

	_, _, err = run(t, store, lines("1", "dee", "done", "6"))
	assert.ErrorIs(t, err, ErrSaveDisabled)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

// TestSpacedNameSurvivesSessions saves a roster holding a two-word name and
// reloads it in a fresh shell.
func TestSpacedNameSurvivesSessions(t *testing.T) {
	dir := t.TempDir()
	store, err := gradebook.Open(dir, "grades.txt", gradebook.Config{})
	require.NoError(t, err)
	defer store.Close()

	_, _, err = run(t, store, lines(
		"1", "bob", "Mary Ann", "carl", "done",
		"2", "90", "-1", "80", "-1", "70", "-1",
		"6",
	))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "grades.txt"))
	require.NoError(t, err)
	assert.Equal(t, "bob 90\nMary Ann 80\ncarl 70\n", string(data))

	sh, out, err := run(t, store, lines("6"))
	require.NoError(t, err)
	assert.NotContains(t, out, "WARNING")
	assert.Contains(t, out, "Loaded 3 student(s).")

	mary, err := sh.Roster().Lookup("Mary Ann")
	require.NoError(t, err)
	assert.Equal(t, []int{80}, mary.Grades)
	assert.Equal(t, 3, sh.Roster().Len())
}

func TestSaveItemLogsError(t *testing.T) {
	var logs, out bytes.Buffer
	store := &memStore{saveErr: errors.New("disk full")}
	sh := New(strings.NewReader(lines("5", "3", "6")), &out, Options{
		Store:  store,
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})

	err := sh.Run()
	assert.Error(t, err)
	assert.Contains(t, logs.String(), "menu action")
	assert.Contains(t, logs.String(), "item=save")
	assert.Contains(t, logs.String(), "disk full")
}
