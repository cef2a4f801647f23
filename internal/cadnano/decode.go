package cadnano

import (
	"encoding/json"
	"fmt"
)

// document is a cadnano2 design file.
type document struct {
	Name     string    `json:"name"`
	VStrands []vstrand `json:"vstrands"`
}

// vstrand is one virtual helix of a cadnano2 design file.
type vstrand struct {
	Num        int      `json:"num"`
	Row        int      `json:"row"`
	Col        int      `json:"col"`
	Scaf       []base   `json:"scaf"`
	Stap       []base   `json:"stap"`
	Loop       []int    `json:"loop"`
	Skip       []int    `json:"skip"`
	StapColors [][2]int `json:"stap_colors"`
}

// base is a single position of a strand set: the helix and index of its
// 5' neighbor followed by those of its 3' neighbor. -1 means no neighbor.
type base [4]int

func (b base) empty() bool {
	return b[0] < 0 && b[2] < 0
}

func (b base) prev() (helix, idx int, ok bool) {
	return b[0], b[1], b[0] >= 0
}

func (b base) next() (helix, idx int, ok bool) {
	return b[2], b[3], b[2] >= 0
}

// kind separates the scaffold strand set of a helix from its staples.
type kind int

const (
	scaffold kind = iota
	staple
)

func (k kind) String() string {
	if k == scaffold {
		return "scaf"
	}
	return "stap"
}

// forward is whether the strands of kind k on helix num run toward
// increasing base indexes. Even helices carry the scaffold forward.
func (k kind) forward(num int) bool {
	return (num%2 == 0) == (k == scaffold)
}

// Helix is a virtual helix of a part.
type Helix struct {
	ID       int
	Row, Col int
	Length   int

	loops []int
	skips []int

	// stapColors are the staple colors keyed by the 5' index of their oligo
	stapColors map[int]int

	bases    [2][]base
	strands  [2][]*strand
	strandAt [2][]*strand
}

// strand is a Strand with links to its neighbors in its oligo.
type strand struct {
	Strand
	kind kind

	prev, next *strand
}

// decode parses a cadnano2 document and builds its helices and strands.
func decode(data []byte) (doc document, order []int, helices map[int]*Helix, lattice Lattice, err error) {
	if err = json.Unmarshal(data, &doc); err != nil {
		return doc, nil, nil, 0, fmt.Errorf("not a cadnano design: %w", err)
	}
	if len(doc.VStrands) == 0 {
		return doc, nil, nil, 0, fmt.Errorf("design has no active part: no vstrands")
	}

	length := len(doc.VStrands[0].Scaf)
	if lattice, err = detectLattice(length); err != nil {
		return doc, nil, nil, 0, err
	}

	helices = make(map[int]*Helix, len(doc.VStrands))
	for _, vs := range doc.VStrands {
		if _, dup := helices[vs.Num]; dup {
			return doc, nil, nil, 0, fmt.Errorf("duplicate virtual helix %d", vs.Num)
		}
		if vs.Num < 0 {
			return doc, nil, nil, 0, fmt.Errorf("negative virtual helix number %d", vs.Num)
		}
		if len(vs.Scaf) != length || len(vs.Stap) != length {
			return doc, nil, nil, 0, fmt.Errorf(
				"virtual helix %d has %d scaffold and %d staple bases, expected %d",
				vs.Num, len(vs.Scaf), len(vs.Stap), length,
			)
		}

		h := &Helix{
			ID:         vs.Num,
			Row:        vs.Row,
			Col:        vs.Col,
			Length:     length,
			loops:      padded(vs.Loop, length),
			skips:      padded(vs.Skip, length),
			stapColors: make(map[int]int, len(vs.StapColors)),
		}
		h.bases[scaffold] = vs.Scaf
		h.bases[staple] = vs.Stap
		for _, c := range vs.StapColors {
			h.stapColors[c[0]] = c[1]
		}

		helices[h.ID] = h
		order = append(order, h.ID)
	}

	for _, id := range order {
		for _, k := range []kind{scaffold, staple} {
			if err = checkLinks(helices, helices[id], k); err != nil {
				return doc, nil, nil, 0, err
			}
			helices[id].buildStrands(k)
		}
	}

	for _, id := range order {
		for _, k := range []kind{scaffold, staple} {
			if err = linkStrands(helices, helices[id], k); err != nil {
				return doc, nil, nil, 0, err
			}
		}
	}

	return doc, order, helices, lattice, nil
}

// padded returns vals if it covers every base, or zeros if the design omits it.
func padded(vals []int, length int) []int {
	if len(vals) == length {
		return vals
	}
	out := make([]int, length)
	copy(out, vals)
	return out
}

// checkLinks confirms every neighbor reference of h's k bases points at an
// existing base that points back.
func checkLinks(helices map[int]*Helix, h *Helix, k kind) error {
	for i, b := range h.bases[k] {
		if nh, ni, ok := b.next(); ok {
			other, err := lookup(helices, nh, ni)
			if err != nil {
				return fmt.Errorf("%s base %d[%d] 3' neighbor: %w", k, h.ID, i, err)
			}
			if ph, pi, ok := other.bases[k][ni].prev(); !ok || ph != h.ID || pi != i {
				return fmt.Errorf("%s base %d[%d] links 3' to %d[%d] which doesn't link back", k, h.ID, i, nh, ni)
			}
		}
		if ph, pi, ok := b.prev(); ok {
			other, err := lookup(helices, ph, pi)
			if err != nil {
				return fmt.Errorf("%s base %d[%d] 5' neighbor: %w", k, h.ID, i, err)
			}
			if nh, ni, ok := other.bases[k][pi].next(); !ok || nh != h.ID || ni != i {
				return fmt.Errorf("%s base %d[%d] links 5' to %d[%d] which doesn't link back", k, h.ID, i, ph, pi)
			}
		}
	}
	return nil
}

func lookup(helices map[int]*Helix, id, idx int) (*Helix, error) {
	h, ok := helices[id]
	if !ok {
		return nil, fmt.Errorf("no virtual helix %d", id)
	}
	if idx < 0 || idx >= h.Length {
		return nil, fmt.Errorf("index %d outside virtual helix %d of length %d", idx, id, h.Length)
	}
	return h, nil
}

// buildStrands groups the k bases of h into strands: runs of bases where
// each links to its neighbor on the same helix in the strand's direction.
func (h *Helix) buildStrands(k kind) {
	bases := h.bases[k]
	fwd := k.forward(h.ID)
	h.strandAt[k] = make([]*strand, h.Length)

	linked := func(i int) bool {
		var nh, ni int
		var ok bool
		if fwd {
			nh, ni, ok = bases[i].next()
		} else {
			nh, ni, ok = bases[i].prev()
		}
		return ok && nh == h.ID && ni == i+1
	}

	for i := 0; i < len(bases); i++ {
		if bases[i].empty() {
			continue
		}

		low := i
		for i+1 < len(bases) && linked(i) {
			i++
		}
		high := i

		s := &strand{Strand: Strand{HelixID: h.ID, Forward: fwd}, kind: k}
		if fwd {
			s.Idx5p, s.Idx3p = low, high
		} else {
			s.Idx5p, s.Idx3p = high, low
		}

		h.strands[k] = append(h.strands[k], s)
		for j := low; j <= high; j++ {
			h.strandAt[k][j] = s
		}
	}
}

// linkStrands connects each k strand of h to the strand across its 3' end.
func linkStrands(helices map[int]*Helix, h *Helix, k kind) error {
	for _, s := range h.strands[k] {
		nh, ni, ok := h.bases[k][s.Idx3p].next()
		if !ok {
			continue
		}

		next := helices[nh].strandAt[k][ni]
		if next == nil || next.Idx5p != ni {
			return fmt.Errorf("%s strand %d[%d] links 3' into the middle of a strand at %d[%d]", k, h.ID, s.Idx5p, nh, ni)
		}
		s.next = next
		next.prev = s
	}
	return nil
}
