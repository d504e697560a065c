package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/gradebook"
)

// addStudents reads names until the "done" sentinel.
func (s *Shell) addStudents() error {
	fmt.Fprintf(s.out, "Enter student names (type '%s' to finish):\n", gradebook.NameSentinel)
	for {
		name, err := s.readLine("Name: ")
		if err != nil {
			return err
		}
		if name == gradebook.NameSentinel {
			return nil
		}
		if err := s.roster.AddStudent(name); err != nil {
			s.report(err)
			continue
		}
		s.log.Debug("student added", "name", name)
	}
}

// addGrades walks the roster in order, reading grades for each student
// until the -1 sentinel.
func (s *Shell) addGrades() error {
	if s.roster.Len() == 0 {
		fmt.Fprintln(s.out, "No students entered yet.")
		return nil
	}

	for i, st := range s.roster.All() {
		fmt.Fprintf(s.out, "\nEntering grades for %s (type %d to finish):\n", st.Name, gradebook.GradeSentinel)
		for {
			v, err := s.readGrade(fmt.Sprintf("Enter grade (%d-%d): ", gradebook.MinGrade, gradebook.MaxGrade))
			if errors.Is(err, gradebook.ErrSentinel) {
				break
			}
			if err != nil {
				return err
			}
			if err := s.roster.AddGradeAt(i, v); err != nil {
				s.report(err)
				continue
			}
			s.log.Debug("grade added", "name", st.Name, "grade", v)
		}
	}
	return nil
}

// display prints every student's grades, average and letter.
func (s *Shell) display() error {
	if s.roster.Len() == 0 {
		fmt.Fprintln(s.out, "No students to display.")
		return nil
	}

	fmt.Fprintln(s.out, "\n--- Student Grades ---")
	for _, st := range s.roster.All() {
		fmt.Fprintf(s.out, "\n%s: ", st.Name)
		if len(st.Grades) == 0 {
			fmt.Fprintln(s.out, "No grades entered.")
			continue
		}
		fmt.Fprintln(s.out, joinGrades(st.Grades))
		s.printSummary(st)
	}
	return nil
}

func (s *Shell) printSummary(st gradebook.Student) {
	sum := gradebook.Summarize(st)
	fmt.Fprintf(s.out, "Average (lowest dropped): %.2f -> Letter Grade: %c\n", sum.Average, sum.Letter)
}

func joinGrades(grades []int) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, " ")
}

// searchEdit looks up one student by exact name and offers add, edit and
// delete on their grades until the user backs out.
func (s *Shell) searchEdit() error {
	name, err := s.readLine("Enter student name to search: ")
	if err != nil {
		return err
	}

	for {
		st, err := s.roster.Lookup(name)
		if err != nil {
			fmt.Fprintf(s.out, "%s: %q.\n", message(err), name)
			return nil
		}
		s.showRecord(st)

		choice, err := s.readLine("a) Add grade  e) Edit grade  d) Delete grade  b) Back\nChoice: ")
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "a":
			err = s.editAdd(name)
		case "e":
			err = s.editReplace(name, len(st.Grades))
		case "d":
			err = s.editDelete(name, len(st.Grades))
		case "b", "":
			return nil
		default:
			fmt.Fprintln(s.out, "ERROR: Please enter a, e, d, or b.")
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) showRecord(st gradebook.Student) {
	fmt.Fprintf(s.out, "\n%s\n", st.Name)
	if len(st.Grades) == 0 {
		fmt.Fprintln(s.out, "No grades entered.")
		return
	}
	for i, g := range st.Grades {
		fmt.Fprintf(s.out, "  %d) %d\n", i+1, g)
	}
	s.printSummary(st)
}

func (s *Shell) editAdd(name string) error {
	v, err := s.readGrade(fmt.Sprintf("New grade (%d-%d, %d to cancel): ", gradebook.MinGrade, gradebook.MaxGrade, gradebook.GradeSentinel))
	if errors.Is(err, gradebook.ErrSentinel) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.apply(name, gradebook.Edit{Op: gradebook.OpAdd, Value: v})
}

func (s *Shell) editReplace(name string, n int) error {
	if n == 0 {
		fmt.Fprintln(s.out, "No grades to edit.")
		return nil
	}
	i, err := s.readIndex(fmt.Sprintf("Grade number to edit (1-%d, blank to cancel): ", n), n)
	if errors.Is(err, gradebook.ErrSentinel) {
		return nil
	}
	if err != nil {
		return err
	}
	v, err := s.readGrade(fmt.Sprintf("New value (%d-%d, %d to cancel): ", gradebook.MinGrade, gradebook.MaxGrade, gradebook.GradeSentinel))
	if errors.Is(err, gradebook.ErrSentinel) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.apply(name, gradebook.Edit{Op: gradebook.OpEdit, Index: i, Value: v})
}

func (s *Shell) editDelete(name string, n int) error {
	if n == 0 {
		fmt.Fprintln(s.out, "No grades to delete.")
		return nil
	}
	i, err := s.readIndex(fmt.Sprintf("Grade number to delete (1-%d, blank to cancel): ", n), n)
	if errors.Is(err, gradebook.ErrSentinel) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.apply(name, gradebook.Edit{Op: gradebook.OpDelete, Index: i})
}

// apply runs one edit and reports a rejected change without ending the
// sub-menu.
func (s *Shell) apply(name string, e gradebook.Edit) error {
	if err := s.roster.Apply(name, e); err != nil {
		s.report(err)
		return nil
	}
	s.log.Debug("grade edited", "name", name, "op", e.Op.String(), "index", e.Index, "value", e.Value)
	fmt.Fprintln(s.out, "Updated.")
	return nil
}
