package cadnano

// Strand is a contiguous run of bases on one helix in one direction. Its
// indexes are inclusive base positions, Idx5p > Idx3p on reverse strands.
type Strand struct {
	HelixID int
	Idx5p   int
	Idx3p   int
	Forward bool
}

// Low is the smaller of the strand's end indexes.
func (s Strand) Low() int {
	if s.Forward {
		return s.Idx5p
	}
	return s.Idx3p
}

// High is the larger of the strand's end indexes.
func (s Strand) High() int {
	if s.Forward {
		return s.Idx3p
	}
	return s.Idx5p
}

// Len is the number of bases in the strand.
func (s Strand) Len() int {
	return s.High() - s.Low() + 1
}
