package typeconv

import "slices"

// selectSlow returns the most specific converter for t by scanning the
// whole list. It returns nil when nothing applies and an
// *AmbiguousMatchError when several converters are maximally specific.
func selectSlow(converters []Converter, t Type) (Converter, error) {
	// Scan backward: the last exact match wins and candidates are
	// collected in reverse list order.
	candidates := make([]Converter, 0, len(converters))
	for i := len(converters) - 1; i >= 0; i-- {
		c := converters[i]
		supported := c.SupportedType()

		if supported.Equal(t) {
			return c, nil
		}

		if supported.IsUnconditional() || (!t.IsUnconditional() && !t.AssignableTo(supported)) {
			continue
		}
		candidates = append(candidates, c)
	}

	if t.IsUnconditional() || len(candidates) == 0 {
		return nil, nil
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	slices.Reverse(candidates)
	candidates = eliminateSupertypes(candidates)

	switch len(candidates) {
	case 0:
		// Unreachable: elimination always keeps one of any related pair.
		return nil, nil
	case 1:
		return candidates[0], nil
	}

	// type C implements A, B; converters exist only for A and B.
	err := &AmbiguousMatchError{Type: t, Candidates: make([]Candidate, len(candidates))}
	for i, c := range candidates {
		err.Candidates[i] = candidateOf(c)
	}
	return nil, err
}

// eliminateSupertypes removes, one at a time, any candidate whose supported
// type is a supertype-or-equal of another candidate's, restarting the scan
// after every removal. The result keeps only maximally specific candidates
// in their original relative order.
func eliminateSupertypes(candidates []Converter) []Converter {
	for {
		j := findSupertype(candidates)
		if j < 0 {
			return candidates
		}
		candidates = slices.Delete(candidates, j, j+1)
	}
}

// findSupertype returns the index of a candidate that is a supertype of some
// other candidate, or -1.
func findSupertype(candidates []Converter) int {
	for i := len(candidates) - 1; i >= 0; i-- {
		sub := candidates[i].SupportedType()
		for j := len(candidates) - 1; j >= 0; j-- {
			if j != i && sub.AssignableTo(candidates[j].SupportedType()) {
				return j
			}
		}
	}
	return -1
}
