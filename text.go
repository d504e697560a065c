// Line-oriented text encoding of a Roster.
//
// Each student is one newline-terminated line: the name, then each grade
// separated by a single space. On the way back in the name runs up to the
// first field that starts like a number, so "Mary Ann 80" loads as Mary Ann
// with one grade. Runs of whitespace inside a name collapse to one space,
// and a name word that looks numeric is read as a grade.
package gradebook

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Encode writes r to w, one line per student, in roster order.
func Encode(w io.Writer, r *Roster) error {
	bw := bufio.NewWriter(w)
	for _, s := range r.students {
		bw.WriteString(s.Name)
		for _, g := range s.Grades {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(g))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Decode reads a roster written by Encode. Blank lines are skipped. The
// first field always belongs to the name. A grade that is not an integer
// in range fails the whole load with ErrCorruptRecord naming the line.
func Decode(rd io.Reader, config Config) (*Roster, error) {
	config = config.defaults()

	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, min(config.ReadBuffer, config.MaxLineSize)), config.MaxLineSize)

	r := &Roster{}
	n := 0
	for scanner.Scan() {
		n++
		fields := bytes.Fields(scanner.Bytes())
		if len(fields) == 0 {
			continue
		}

		end := 1
		for end < len(fields) && !numeric(fields[end]) {
			end++
		}
		s := Student{Name: string(bytes.Join(fields[:end], []byte{' '}))}
		if end < len(fields) {
			s.Grades = make([]int, 0, len(fields)-end)
		}
		for _, f := range fields[end:] {
			v, err := strconv.Atoi(string(f))
			if err != nil || !validGrade(v) {
				return nil, fmt.Errorf("%w: line %d: grade %q", ErrCorruptRecord, n, f)
			}
			s.Grades = append(s.Grades, v)
		}
		r.students = append(r.students, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("decode: line %d: %w", n+1, err)
	}
	return r, nil
}

// numeric reports whether f starts like an integer, with an optional sign.
func numeric(f []byte) bool {
	if len(f) > 0 && (f[0] == '-' || f[0] == '+') {
		f = f[1:]
	}
	return len(f) > 0 && f[0] >= '0' && f[0] <= '9'
}
