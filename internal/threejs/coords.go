package threejs

import (
	"fmt"

	"github.com/douglaslab/cn2threejs/internal/cadnano"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Design is the part of a loaded design that coordinates are exported from.
type Design interface {
	// HelixOrder is the order helices are read in
	HelixOrder() []int

	// Coordinates are a helix's axis, forward and reverse backbone points
	Coordinates(id int) (axis, fwd, rev []r3.Vec, err error)

	// Oligos with their strands ordered 5' to 3'
	Oligos() []cadnano.Oligo
}

// Point is a coordinate as written to the output: [x, y, z].
type Point [3]float64

// IndexError is returned for a strand that runs past the end of its helix.
type IndexError struct {
	Strand cadnano.Strand

	// Length of the strand's helix
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf(
		"strand on helix %d from %d to %d (forward=%t) is outside the helix's %d bases",
		e.Strand.HelixID, e.Strand.Idx5p, e.Strand.Idx3p, e.Strand.Forward, e.Length,
	)
}

// helixCoords are a helix's rounded points and the midpoints between each
// backbone and the axis.
type helixCoords struct {
	axis, fwd, rev []r3.Vec

	fwdMid, revMid []Point
}

// mapHelixCoords reads the coordinates of every helix once, rounded to prec
// decimal places.
func mapHelixCoords(d Design, prec int) (map[int]helixCoords, error) {
	coords := make(map[int]helixCoords)
	for _, id := range d.HelixOrder() {
		axis, fwd, rev, err := d.Coordinates(id)
		if err != nil {
			return nil, err
		}
		if len(fwd) != len(axis) || len(rev) != len(axis) {
			return nil, fmt.Errorf(
				"helix %d has %d axis, %d forward and %d reverse points",
				id, len(axis), len(fwd), len(rev),
			)
		}

		hc := helixCoords{
			axis: roundAll(axis, prec),
			fwd:  roundAll(fwd, prec),
			rev:  roundAll(rev, prec),
		}
		hc.fwdMid = midpoints(hc.fwd, hc.axis, prec)
		hc.revMid = midpoints(hc.rev, hc.axis, prec)
		coords[id] = hc
	}
	return coords, nil
}

// midpoints averages each backbone point with its axis point.
func midpoints(backbone, axis []r3.Vec, prec int) []Point {
	mids := make([]Point, len(backbone))
	for i := range backbone {
		m := round(r3.Scale(0.5, r3.Add(backbone[i], axis[i])), prec)
		mids[i] = Point{m.X, m.Y, m.Z}
	}
	return mids
}

// strandCoords slices the midpoints covered by a strand. A forward strand
// takes [Idx5p, Idx3p), a reverse strand Idx5p down to, but excluding,
// Idx3p. Neither includes the strand's 3' base.
func strandCoords(hc helixCoords, s cadnano.Strand) ([]Point, error) {
	if s.Forward {
		mids := hc.fwdMid
		if s.Idx5p < 0 || s.Idx3p > len(mids) || s.Idx5p > s.Idx3p {
			return nil, &IndexError{Strand: s, Length: len(mids)}
		}
		return mids[s.Idx5p:s.Idx3p], nil
	}

	mids := hc.revMid
	if s.Idx5p >= len(mids) || s.Idx3p < -1 || s.Idx3p > s.Idx5p {
		return nil, &IndexError{Strand: s, Length: len(mids)}
	}
	pts := make([]Point, 0, s.Idx5p-s.Idx3p)
	for i := s.Idx5p; i > s.Idx3p; i-- {
		pts = append(pts, mids[i])
	}
	return pts, nil
}

func roundAll(pts []r3.Vec, prec int) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	for i, p := range pts {
		out[i] = round(p, prec)
	}
	return out
}

// round rounds each component half to even at prec decimal places.
func round(p r3.Vec, prec int) r3.Vec {
	return r3.Vec{
		X: scalar.RoundEven(p.X, prec),
		Y: scalar.RoundEven(p.Y, prec),
		Z: scalar.RoundEven(p.Z, prec),
	}
}
