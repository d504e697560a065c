// Record editing by name.
//
// Each call finds the first record whose name equals the target exactly
// (case-sensitive, no trimming) and applies one change to its grades.
// Every argument is checked before anything is written, so a rejected
// edit leaves the roster exactly as it was.
package gradebook

import "fmt"

// EditOp selects the change Apply makes.
type EditOp int

const (
	OpAdd    EditOp = iota // append Value
	OpEdit                 // replace the grade at Index with Value
	OpDelete               // remove the grade at Index
)

// String returns the lowercase name of the operation.
func (op EditOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpEdit:
		return "edit"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("EditOp(%d)", int(op))
	}
}

// Edit describes one change to a student's grades. Index is zero-based and
// ignored by OpAdd; Value is ignored by OpDelete.
type Edit struct {
	Op    EditOp
	Index int
	Value int
}

// Apply performs e on the first student named name.
func (r *Roster) Apply(name string, e Edit) error {
	i := r.find(name)
	if i < 0 {
		return ErrNotFound
	}
	s := &r.students[i]

	switch e.Op {
	case OpAdd:
		if !validGrade(e.Value) {
			return ErrInvalidGrade
		}
		s.Grades = append(s.Grades, e.Value)
	case OpEdit:
		if e.Index < 0 || e.Index >= len(s.Grades) {
			return ErrInvalidIndex
		}
		if !validGrade(e.Value) {
			return ErrInvalidGrade
		}
		s.Grades[e.Index] = e.Value
	case OpDelete:
		if e.Index < 0 || e.Index >= len(s.Grades) {
			return ErrInvalidIndex
		}
		s.Grades = append(s.Grades[:e.Index], s.Grades[e.Index+1:]...)
	default:
		return fmt.Errorf("apply: unknown operation %v", e.Op)
	}
	return nil
}

// AddGrade appends value to the first student named name.
func (r *Roster) AddGrade(name string, value int) error {
	return r.Apply(name, Edit{Op: OpAdd, Value: value})
}

// EditGrade replaces the grade at index for the first student named name.
// The index is checked before the value.
func (r *Roster) EditGrade(name string, index, value int) error {
	return r.Apply(name, Edit{Op: OpEdit, Index: index, Value: value})
}

// DeleteGrade removes the grade at index for the first student named name,
// shifting later grades down by one.
func (r *Roster) DeleteGrade(name string, index int) error {
	return r.Apply(name, Edit{Op: OpDelete, Index: index})
}
