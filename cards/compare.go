package cards

// Scored is a hand with its category cached for one mode, so that sorting
// does not reclassify on every comparison.
type Scored struct {
	Hand     Hand
	Category Category
	Mode     Mode

	// Resolution is set in Wildcard mode and zero otherwise.
	Resolution Resolution
}

// Score evaluates a hand under the mode.
func Score(h Hand, m Mode) Scored {
	if m == Wildcard {
		res := Resolve(h)
		return Scored{Hand: h, Category: res.Category, Mode: m, Resolution: res}
	}
	return Scored{Hand: h, Category: Classify(h), Mode: m}
}

// Compare returns -1 if s is weaker than other, 0 if equal, 1 if stronger.
// Categories decide first; equal categories fall through to a left-to-right
// comparison of the original symbols in the mode's order. Both values must
// have been scored under the same mode.
func (s Scored) Compare(other Scored) int {
	if c := s.Category.Compare(other.Category); c != 0 {
		return c
	}
	return comparePositions(s.Hand, other.Hand, s.Mode)
}

// Compare orders two hands under the mode, see Scored.Compare.
func Compare(a, b Hand, m Mode) int {
	return Score(a, m).Compare(Score(b, m))
}

func comparePositions(a, b Hand, m Mode) int {
	for i := range a {
		sa, sb := m.Strength(a[i]), m.Strength(b[i])
		if sa < sb {
			return -1
		} else if sa > sb {
			return 1
		}
	}
	return 0
}
