// Student records and grade validation.
//
// A Student is a name plus grades in entry order. Grades are plain ints
// bounded to [MinGrade, MaxGrade]; the -1 typed at the grade prompt is a
// control signal for the input loop and never reaches a record.
package gradebook

import (
	"slices"
	"strconv"
	"strings"
)

// Grade bounds and the reserved intake tokens.
const (
	MinGrade      = 0
	MaxGrade      = 100
	GradeSentinel = -1     // ends grade intake for one student
	NameSentinel  = "done" // ends name intake
)

// Student is one student's name and ordered grade history.
type Student struct {
	Name   string
	Grades []int
}

// Clone returns a deep copy so callers never alias roster storage.
func (s Student) Clone() Student {
	return Student{Name: s.Name, Grades: slices.Clone(s.Grades)}
}

// validGrade reports whether v may be stored.
func validGrade(v int) bool {
	return v >= MinGrade && v <= MaxGrade
}

// blank reports whether a name is empty once surrounding whitespace is
// removed.
func blank(name string) bool {
	return strings.TrimSpace(name) == ""
}

// ParseGrade converts one typed token into a grade. Surrounding whitespace
// is ignored. It returns ErrSentinel for -1 and ErrInvalidGrade for
// anything that is not an integer in [MinGrade, MaxGrade].
func ParseGrade(token string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, ErrInvalidGrade
	}
	if v == GradeSentinel {
		return 0, ErrSentinel
	}
	if !validGrade(v) {
		return 0, ErrInvalidGrade
	}
	return v, nil
}
