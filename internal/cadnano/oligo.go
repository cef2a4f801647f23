package cadnano

import "fmt"

// Oligo is a single continuous, or circular, strand of nucleotides.
type Oligo struct {
	// Name locates the oligo by its 5' base, ex: "3[41]"
	Name string

	// Color is a "#rrggbb" string
	Color string

	// Strands ordered from the oligo's 5' end to its 3' end. A circular
	// oligo starts at an arbitrary strand.
	Strands []Strand

	Circular bool

	// Scaffold is true for oligos of the scaffold strand sets
	Scaffold bool
}

// Len is the number of bases in the oligo.
func (o Oligo) Len() int {
	n := 0
	for _, s := range o.Strands {
		n += s.Len()
	}
	return n
}

// Endpoint is one end of a non-circular oligo.
type Endpoint struct {
	Color   string
	HelixID int
	Index   int
	Forward bool
}

// buildOligos walks every strand chain once. Oligos are ordered by the
// first strand of each found scanning helices in order, scaffold before
// staples, by ascending index. Linear oligos are found at their 5' strand.
func buildOligos(order []int, helices map[int]*Helix, opts Options) []Oligo {
	visited := make(map[*strand]bool)
	oligos := []Oligo{}

	for _, id := range order {
		h := helices[id]
		for _, k := range []kind{scaffold, staple} {
			for _, s := range h.strands[k] {
				if visited[s] {
					continue
				}

				first, circular := head(s)
				if first != s {
					continue // reached later from its 5' strand
				}
				oligos = append(oligos, walk(s, circular, helices, opts, visited))
			}
		}
	}

	return oligos
}

// head returns the 5' strand of s's oligo, or s itself if the oligo is circular.
func head(s *strand) (first *strand, circular bool) {
	cur := s
	for cur.prev != nil {
		cur = cur.prev
		if cur == s {
			return s, true
		}
	}
	return cur, false
}

// walk follows the 3' links from first to build its oligo.
func walk(first *strand, circular bool, helices map[int]*Helix, opts Options, visited map[*strand]bool) Oligo {
	o := Oligo{
		Name:     fmt.Sprintf("%d[%d]", first.HelixID, first.Idx5p),
		Circular: circular,
		Scaffold: first.kind == scaffold,
	}

	for s := first; s != nil; s = s.next {
		visited[s] = true
		o.Strands = append(o.Strands, s.Strand)
		if s.next == first {
			break
		}
	}

	o.Color = oligoColor(o, helices, opts)
	return o
}

// oligoColor is the stored color of a staple oligo's 5' base. Circular
// staples have no 5' base, the first colored strand end is used instead.
func oligoColor(o Oligo, helices map[int]*Helix, opts Options) string {
	if o.Scaffold {
		return opts.ScaffoldColor
	}

	candidates := o.Strands[:1]
	if o.Circular {
		candidates = o.Strands
	}
	for _, s := range candidates {
		if c, ok := helices[s.HelixID].stapColors[s.Idx5p]; ok {
			return colorHex(c)
		}
	}
	return opts.StapleColor
}

// colorHex formats a cadnano2 integer color as "#rrggbb".
func colorHex(c int) string {
	return fmt.Sprintf("#%06x", c&0xffffff)
}
