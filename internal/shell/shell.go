// Package shell is the interactive front end of the grade book: it draws
// the menu, runs the input loops and renders results, and drives a
// gradebook.Roster and an optional gradebook.Store. All terminal I/O in the
// program happens here.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jpl-au/gradebook"
)

// ErrSaveDisabled is returned by Save for the rest of a session whose
// roster could not be loaded, so the unreadable file is never replaced by
// an empty roster.
var ErrSaveDisabled = errors.New("saving disabled: saved grades could not be loaded")

// Options configures a Shell.
type Options struct {
	// Store persists the roster. Nil runs without persistence: nothing is
	// loaded, and there is no save item in the menu.
	Store gradebook.Store

	// Logger receives load/save/edit events. Nil discards them.
	Logger *slog.Logger

	// HashAlgorithm selects the fingerprint used to track unsaved changes.
	HashAlgorithm int
}

// Shell runs the grade book menu over a line-oriented reader and writer.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	roster *gradebook.Roster
	store  gradebook.Store
	log    *slog.Logger
	alg    int
	saved  string // fingerprint at the last load or save
	menu   *registry
	done   bool
	noSave bool // load failed; the store must not be written
}

// New returns a shell with an empty roster.
func New(in io.Reader, out io.Writer, opts Options) *Shell {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		roster: &gradebook.Roster{},
		store:  opts.Store,
		log:    log,
		alg:    opts.HashAlgorithm,
	}
	s.saved = s.roster.Fingerprint(s.alg)
	s.menu = s.buildMenu()
	return s
}

// Roster returns the roster the shell is editing.
func (s *Shell) Roster() *gradebook.Roster {
	return s.roster
}

// Load reads the roster from the store, if there is one. A failed load is
// reported, leaves an empty roster and disables saving for the session;
// the error is returned for the caller to log or ignore.
func (s *Shell) Load() error {
	if s.store == nil {
		return nil
	}

	r, err := s.store.Load()
	if err != nil {
		s.noSave = true
		s.log.Error("load roster", "error", err)
		fmt.Fprintf(s.out, "WARNING: could not load saved grades (%v). Starting with an empty roster.\n", err)
		fmt.Fprintln(s.out, "WARNING: saving is disabled for this session so the saved file is left untouched.")
		return err
	}

	s.roster = r
	s.noSave = false
	s.saved = r.Fingerprint(s.alg)
	s.log.Info("roster loaded", "students", r.Len(), "fingerprint", s.saved)
	if r.Len() > 0 {
		fmt.Fprintf(s.out, "Loaded %d student(s).\n", r.Len())
	}
	return nil
}

// Save writes the roster to the store. It returns ErrSaveDisabled after a
// failed Load.
func (s *Shell) Save() error {
	if s.store == nil {
		return nil
	}
	if s.noSave {
		s.log.Warn("save skipped", "error", ErrSaveDisabled)
		fmt.Fprintln(s.out, "ERROR: saving is disabled because the saved grades could not be loaded.")
		return ErrSaveDisabled
	}
	if err := s.store.Save(s.roster); err != nil {
		s.log.Error("save roster", "error", err)
		fmt.Fprintf(s.out, "ERROR: could not save grades: %v\n", err)
		return err
	}
	s.saved = s.roster.Fingerprint(s.alg)
	s.log.Info("roster saved", "students", s.roster.Len(), "fingerprint", s.saved)
	fmt.Fprintln(s.out, "Grades saved.")
	return nil
}

// Dirty reports whether the roster differs from what was last loaded or
// saved.
func (s *Shell) Dirty() bool {
	return s.roster.Fingerprint(s.alg) != s.saved
}

// Run shows the menu until the user exits or input ends. End of input is
// treated as choosing exit. The returned error is the exit-time save
// failure, if any.
func (s *Shell) Run() error {
	for {
		s.showMenu()
		item, err := s.choose()
		if err != nil {
			return s.exit()
		}

		err = item.Run(s)
		if s.done {
			return err
		}
		if errors.Is(err, io.EOF) {
			return s.exit()
		}
		if err != nil {
			s.log.Error("menu action", "item", item.Name, "error", err)
		}
	}
}

// exit saves when a store is configured and says goodbye. It ends Run.
// After a failed load it reports an error only if the roster changed.
func (s *Shell) exit() error {
	s.done = true
	err := s.Save()
	if errors.Is(err, ErrSaveDisabled) && !s.Dirty() {
		err = nil
	}
	fmt.Fprintln(s.out, "Exiting Grade Book. Goodbye!")
	return err
}
