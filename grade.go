// Derived values: drop-lowest average and letter grade.
package gradebook

// Letter grade cutoffs. Each is an inclusive lower bound.
const (
	CutoffA = 90.0
	CutoffB = 80.0
	CutoffC = 70.0
	CutoffD = 60.0
)

// Summary is the derived view of one student.
type Summary struct {
	Average float64
	Letter  byte
}

// Average returns the mean of grades with one occurrence of the lowest
// value removed. An empty slice averages to 0 and a single grade is
// returned as is, since dropping it would leave nothing to average.
// The input is not modified.
func Average(grades []int) float64 {
	switch len(grades) {
	case 0:
		return 0
	case 1:
		return float64(grades[0])
	}

	sum, lowest := 0, grades[0]
	for _, g := range grades {
		sum += g
		if g < lowest {
			lowest = g
		}
	}
	return float64(sum-lowest) / float64(len(grades)-1)
}

// LetterGrade maps an average to A, B, C, D or F. The average is compared
// unrounded, so 89.99 is a B and 90 is an A.
func LetterGrade(avg float64) byte {
	switch {
	case avg >= CutoffA:
		return 'A'
	case avg >= CutoffB:
		return 'B'
	case avg >= CutoffC:
		return 'C'
	case avg >= CutoffD:
		return 'D'
	default:
		return 'F'
	}
}

// Summarize computes the average and letter for a student.
func Summarize(s Student) Summary {
	avg := Average(s.Grades)
	return Summary{Average: avg, Letter: LetterGrade(avg)}
}
