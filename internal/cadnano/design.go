// Package cadnano reads cadnano2 DNA origami designs.
//
// A Design is read once and then only queried: the lattice position and 3D
// coordinates of each virtual helix, and the oligos routed through them.
package cadnano

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// Design is a loaded cadnano part.
type Design struct {
	// Name stored in the design file
	Name string

	lattice Lattice
	opts    Options
	order   []int
	helices map[int]*Helix
	oligos  []Oligo
}

// Modification is a loop (insertion) or skip at one base of a helix.
type Modification struct {
	HelixID int
	Index   int

	// Length is the count of inserted bases, negative for skips
	Length int
}

// Load reads the cadnano2 design at path.
func Load(path string, opts Options) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	d, err := parse(data, opts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return d, nil
}

// Parse decodes a cadnano2 design held in memory.
func Parse(data []byte, opts Options) (*Design, error) {
	d, err := parse(data, opts)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return d, nil
}

func parse(data []byte, opts Options) (*Design, error) {
	doc, order, helices, lattice, err := decode(data)
	if err != nil {
		return nil, err
	}

	return &Design{
		Name:    doc.Name,
		lattice: lattice,
		opts:    opts,
		order:   order,
		helices: helices,
		oligos:  buildOligos(order, helices, opts),
	}, nil
}

// Lattice is the packing of the design's helices.
func (d *Design) Lattice() Lattice {
	return d.lattice
}

// HelixOrder is the ids of the design's helices in file order.
func (d *Design) HelixOrder() []int {
	return append([]int(nil), d.order...)
}

// HelixRadius is the radius of every helix in nm.
func (d *Design) HelixRadius() float64 {
	return d.opts.Radius
}

// MaxHelixLength is the base count of the longest helix.
func (d *Design) MaxHelixLength() int {
	max := 0
	for _, h := range d.helices {
		if h.Length > max {
			max = h.Length
		}
	}
	return max
}

// Origin is the position of a helix's axis in the lattice plane.
func (d *Design) Origin(id int) (r3.Vec, error) {
	h, ok := d.helices[id]
	if !ok {
		return r3.Vec{}, fmt.Errorf("no virtual helix %d", id)
	}
	return latticeOrigin(d.lattice, d.opts.Radius, h.Row, h.Col), nil
}

// OriginLimits is the lower left and upper right corner of the box
// bounding every helix origin.
func (d *Design) OriginLimits() (xLL, yLL, xUR, yUR float64) {
	xLL, yLL = math.Inf(1), math.Inf(1)
	xUR, yUR = math.Inf(-1), math.Inf(-1)
	for _, id := range d.order {
		o, _ := d.Origin(id)
		xLL, yLL = math.Min(xLL, o.X), math.Min(yLL, o.Y)
		xUR, yUR = math.Max(xUR, o.X), math.Max(yUR, o.Y)
	}
	return xLL, yLL, xUR, yUR
}

// SliceDimensions is the size of the part's cross section, with a margin
// of a few helix radii, for laying out a 2D slice view.
func (d *Design) SliceDimensions() (width, height float64) {
	xLL, yLL, xUR, yUR := d.OriginLimits()
	r := d.opts.Radius
	return xUR - xLL + r*8, yUR - yLL + r*6
}

// Coordinates are the points of a helix's axis and of its forward and
// reverse backbones, one per base.
func (d *Design) Coordinates(id int) (axis, fwd, rev []r3.Vec, err error) {
	h, ok := d.helices[id]
	if !ok {
		return nil, nil, nil, fmt.Errorf("no virtual helix %d", id)
	}

	origin := latticeOrigin(d.lattice, d.opts.Radius, h.Row, h.Col)
	axis, fwd, rev = helixPoints(origin, h.Length, d.opts.twist(d.lattice), d.opts)
	return axis, fwd, rev, nil
}

// Oligos are the design's oligos with their strands ordered 5' to 3'.
func (d *Design) Oligos() []Oligo {
	return d.oligos
}

// OligoEndpoints are the 5' and 3' ends of every non-circular oligo.
func (d *Design) OligoEndpoints() (ends5p, ends3p []Endpoint) {
	for _, o := range d.oligos {
		if o.Circular {
			continue
		}

		first, last := o.Strands[0], o.Strands[len(o.Strands)-1]
		ends5p = append(ends5p, Endpoint{Color: o.Color, HelixID: first.HelixID, Index: first.Idx5p, Forward: first.Forward})
		ends3p = append(ends3p, Endpoint{Color: o.Color, HelixID: last.HelixID, Index: last.Idx3p, Forward: last.Forward})
	}
	return ends5p, ends3p
}

// Insertions are the helix positions with loops, in helix order.
func (d *Design) Insertions() []Modification {
	return d.modifications(func(h *Helix) []int { return h.loops })
}

// Skips are the helix positions with skips, in helix order.
func (d *Design) Skips() []Modification {
	return d.modifications(func(h *Helix) []int { return h.skips })
}

func (d *Design) modifications(vals func(*Helix) []int) (mods []Modification) {
	for _, id := range d.order {
		for i, v := range vals(d.helices[id]) {
			if v != 0 {
				mods = append(mods, Modification{HelixID: id, Index: i, Length: v})
			}
		}
	}
	return mods
}
