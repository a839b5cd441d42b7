package primitive

import "fmt"

// Statistics summarises a sequence of numbers.
// The zero value describes an empty sequence.
type Statistics[N Number] struct {
	Count int
	Sum   N
	Min   N
	Max   N
}

func (s *Statistics[N]) accept(n N) {
	if s.Count == 0 || n < s.Min {
		s.Min = n
	}
	if s.Count == 0 || n > s.Max {
		s.Max = n
	}
	s.Count++
	s.Sum += n
}

// Average returns Sum/Count, or 0 when Count is 0.
func (s Statistics[N]) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

// String implements [fmt.Stringer].
func (s Statistics[N]) String() string {
	return fmt.Sprintf("count=%d sum=%v min=%v max=%v avg=%g", s.Count, s.Sum, s.Min, s.Max, s.Average())
}
