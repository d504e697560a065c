// The Roster: ordered student records and intake.
//
// Insertion order is display order and persistence order. Duplicate names
// are kept as separate records; every name-based operation acts on the
// first record whose name matches exactly.
package gradebook

import (
	"iter"
)

// Roster is the ordered collection of all student records. The zero value
// is an empty roster ready for use. A Roster is not safe for concurrent
// use.
type Roster struct {
	students []Student
}

// NewRoster returns a roster holding copies of the given students. Records
// with blank names or out-of-range grades are rejected.
func NewRoster(students ...Student) (*Roster, error) {
	r := &Roster{students: make([]Student, 0, len(students))}
	for _, s := range students {
		if blank(s.Name) {
			return nil, ErrBlankName
		}
		for _, g := range s.Grades {
			if !validGrade(g) {
				return nil, ErrInvalidGrade
			}
		}
		r.students = append(r.students, s.Clone())
	}
	return r, nil
}

// Len returns the number of records.
func (r *Roster) Len() int {
	return len(r.students)
}

// Student returns a copy of the record at position i.
func (r *Roster) Student(i int) (Student, error) {
	if i < 0 || i >= len(r.students) {
		return Student{}, ErrInvalidIndex
	}
	return r.students[i].Clone(), nil
}

// All yields every record in display order together with its position.
// Yielded values are copies.
func (r *Roster) All() iter.Seq2[int, Student] {
	return func(yield func(int, Student) bool) {
		for i, s := range r.students {
			if !yield(i, s.Clone()) {
				return
			}
		}
	}
}

// AddStudent appends a new record with no grades. The name is stored
// exactly as given.
func (r *Roster) AddStudent(name string) error {
	if blank(name) {
		return ErrBlankName
	}
	r.students = append(r.students, Student{Name: name})
	return nil
}

// AddGradeAt appends a grade to the record at position i. It is the
// positional form used by bulk grade intake, which walks the roster in
// order rather than by name.
func (r *Roster) AddGradeAt(i, value int) error {
	if i < 0 || i >= len(r.students) {
		return ErrInvalidIndex
	}
	if !validGrade(value) {
		return ErrInvalidGrade
	}
	r.students[i].Grades = append(r.students[i].Grades, value)
	return nil
}

// Lookup returns a copy of the first record named exactly name.
func (r *Roster) Lookup(name string) (Student, error) {
	i := r.find(name)
	if i < 0 {
		return Student{}, ErrNotFound
	}
	return r.students[i].Clone(), nil
}

// find returns the position of the first record named exactly name, or -1.
func (r *Roster) find(name string) int {
	for i := range r.students {
		if r.students[i].Name == name {
			return i
		}
	}
	return -1
}
