package cadnano

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Lattice is the packing of virtual helices in a part.
type Lattice int

const (
	// Honeycomb packs each helix against three neighbors (21 bases per repeat).
	Honeycomb Lattice = iota

	// Square packs each helix against four neighbors (32 bases per repeat).
	Square
)

func (l Lattice) String() string {
	switch l {
	case Honeycomb:
		return "honeycomb"
	case Square:
		return "square"
	}
	return fmt.Sprintf("lattice(%d)", int(l))
}

// detectLattice infers the lattice from the number of bases per helix.
// cadnano2 only writes multiples of the lattice's repeat length, square
// wins when a length is a multiple of both.
func detectLattice(bases int) (Lattice, error) {
	switch {
	case bases > 0 && bases%32 == 0:
		return Square, nil
	case bases > 0 && bases%21 == 0:
		return Honeycomb, nil
	}
	return 0, fmt.Errorf("helix length %d is not a multiple of 21 (honeycomb) or 32 (square)", bases)
}

// Twist is the rotation of a helix's backbone along its axis.
type Twist struct {
	BasesPerRepeat int
	TurnsPerRepeat int

	// EulerZ is the angle, in degrees, of the forward backbone at base 0
	EulerZ float64
}

// perBase is the twist from one base to the next, in radians.
func (t Twist) perBase() float64 {
	return 2 * math.Pi * float64(t.TurnsPerRepeat) / float64(t.BasesPerRepeat)
}

// Options is the geometry and coloring used when loading a design.
type Options struct {
	// Radius of each helix in nm. Neighboring helix axes are 2*Radius apart.
	Radius float64

	// Rise along the helix axis per base in nm.
	Rise float64

	// MinorGroove is the angle, in degrees, between the forward and
	// reverse backbones at the same base index.
	MinorGroove float64

	Honeycomb Twist
	Square    Twist

	// ScaffoldColor and StapleColor are used for oligos without a stored color.
	ScaffoldColor string
	StapleColor   string
}

// DefaultOptions mirrors cadnano's defaults for DNA.
func DefaultOptions() Options {
	return Options{
		Radius:        1.125,
		Rise:          0.34,
		MinorGroove:   180,
		Honeycomb:     Twist{BasesPerRepeat: 21, TurnsPerRepeat: 2, EulerZ: 17.143},
		Square:        Twist{BasesPerRepeat: 32, TurnsPerRepeat: 3, EulerZ: 0},
		ScaffoldColor: "#0066cc",
		StapleColor:   "#888888",
	}
}

func (o Options) twist(l Lattice) Twist {
	if l == Square {
		return o.Square
	}
	return o.Honeycomb
}

// oddParity is true for honeycomb positions whose helices run antiparallel
// to the helix at (0, 0).
func oddParity(row, col int) bool {
	return (row%2 != 0) != (col%2 != 0)
}

// latticeOrigin is the position of the helix axis at (row, col) in the
// lattice plane. Rows grow downward, so y is negated.
func latticeOrigin(l Lattice, radius float64, row, col int) r3.Vec {
	if l == Square {
		return r3.Vec{X: float64(col) * 2 * radius, Y: -float64(row) * 2 * radius}
	}

	x := float64(col) * radius * math.Sqrt(3)
	y := -float64(row) * radius * 3
	if oddParity(row, col) {
		y += radius
	}
	return r3.Vec{X: x, Y: y}
}

// helixPoints returns n points along a helix whose axis starts at origin and
// runs along +z: the axis itself and the forward and reverse backbones.
func helixPoints(origin r3.Vec, n int, twist Twist, o Options) (axis, fwd, rev []r3.Vec) {
	axis = make([]r3.Vec, n)
	fwd = make([]r3.Vec, n)
	rev = make([]r3.Vec, n)

	phase := twist.EulerZ * math.Pi / 180
	groove := o.MinorGroove * math.Pi / 180
	step := twist.perBase()

	for i := 0; i < n; i++ {
		a := r3.Add(origin, r3.Vec{Z: float64(i) * o.Rise})
		theta := phase + float64(i)*step

		axis[i] = a
		fwd[i] = r3.Add(a, r3.Scale(o.Radius, r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}))
		rev[i] = r3.Add(a, r3.Scale(o.Radius, r3.Vec{X: math.Cos(theta + groove), Y: math.Sin(theta + groove)}))
	}
	return axis, fwd, rev
}
