// Package gradebook keeps a roster of students and their integer grades,
// derives a drop-lowest average and letter grade for each student, and
// persists the roster as a flat text file with one line per student.
//
// The Roster owns every record it holds. Accessors hand out copies, and
// all mutation goes through Roster methods that locate a student by exact
// name (first match wins) and apply a single change. Persistence is a
// pluggable Store; FileStore is the line-oriented text implementation.
// Nothing in this package reads from or writes to a terminal.
package gradebook

import "errors"

// Sentinel errors for programmatic handling. Callers use errors.Is to tell
// input that can be retried (ErrBlankName, ErrInvalidGrade, ErrInvalidIndex)
// from a lookup miss (ErrNotFound) or a damaged file (ErrCorruptRecord).
var (
	ErrBlankName     = errors.New("name cannot be blank")
	ErrInvalidGrade  = errors.New("grade must be between 0 and 100")
	ErrInvalidIndex  = errors.New("grade index out of range")
	ErrNotFound      = errors.New("student not found")
	ErrSentinel      = errors.New("end of grade entry")
	ErrCorruptRecord = errors.New("corrupt record")
)
