package cadnano

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func loadFixture(t *testing.T, name string) *Design {
	t.Helper()
	d, err := Load(filepath.Join("..", "..", "test", "input", name), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestLoad_oligos(t *testing.T) {
	d := loadFixture(t, "two_helix.json")

	want := []Oligo{
		{
			Name:  "0[0]",
			Color: "#0066cc",
			Strands: []Strand{
				{HelixID: 0, Idx5p: 0, Idx3p: 20, Forward: true},
				{HelixID: 1, Idx5p: 20, Idx3p: 0, Forward: false},
			},
			Scaffold: true,
		},
		{
			Name:  "0[10]",
			Color: "#cc0000",
			Strands: []Strand{
				{HelixID: 0, Idx5p: 10, Idx3p: 0, Forward: false},
				{HelixID: 1, Idx5p: 0, Idx3p: 10, Forward: true},
			},
		},
		{
			Name:  "0[20]",
			Color: "#f74308",
			Strands: []Strand{
				{HelixID: 0, Idx5p: 20, Idx3p: 11, Forward: false},
				{HelixID: 1, Idx5p: 11, Idx3p: 20, Forward: true},
			},
			Circular: true,
		},
	}

	if got := d.Oligos(); !reflect.DeepEqual(got, want) {
		t.Errorf("Oligos() = %+v, want %+v", got, want)
	}

	if d.Name != "two_helix.json" {
		t.Errorf("Name = %q", d.Name)
	}
	if got := d.Oligos()[0].Len(); got != 42 {
		t.Errorf("scaffold Len() = %d, want 42", got)
	}
}

func TestLoad_accessors(t *testing.T) {
	d := loadFixture(t, "two_helix.json")

	if got := d.HelixOrder(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("HelixOrder() = %v", got)
	}
	if d.Lattice() != Honeycomb {
		t.Errorf("Lattice() = %v, want honeycomb", d.Lattice())
	}
	if d.MaxHelixLength() != 21 {
		t.Errorf("MaxHelixLength() = %d, want 21", d.MaxHelixLength())
	}
	if d.HelixRadius() != 1.125 {
		t.Errorf("HelixRadius() = %v", d.HelixRadius())
	}

	// (0, 1) is odd parity so it sits a radius above (0, 0)
	xLL, yLL, xUR, yUR := d.OriginLimits()
	r := 1.125
	wantLimits := []float64{0, 0, r * 1.7320508075688772, r}
	for i, got := range []float64{xLL, yLL, xUR, yUR} {
		if !scalar.EqualWithinAbs(got, wantLimits[i], 1e-9) {
			t.Errorf("OriginLimits()[%d] = %v, want %v", i, got, wantLimits[i])
		}
	}

	w, h := d.SliceDimensions()
	if !scalar.EqualWithinAbs(w, xUR-xLL+8*r, 1e-9) || !scalar.EqualWithinAbs(h, yUR-yLL+6*r, 1e-9) {
		t.Errorf("SliceDimensions() = %v, %v", w, h)
	}

	wantIns := []Modification{{HelixID: 0, Index: 5, Length: 1}}
	if got := d.Insertions(); !reflect.DeepEqual(got, wantIns) {
		t.Errorf("Insertions() = %v, want %v", got, wantIns)
	}
	wantSkips := []Modification{{HelixID: 0, Index: 15, Length: -1}}
	if got := d.Skips(); !reflect.DeepEqual(got, wantSkips) {
		t.Errorf("Skips() = %v, want %v", got, wantSkips)
	}
}

func TestDesign_OligoEndpoints(t *testing.T) {
	d := loadFixture(t, "two_helix.json")

	ends5p, ends3p := d.OligoEndpoints()
	want5p := []Endpoint{
		{Color: "#0066cc", HelixID: 0, Index: 0, Forward: true},
		{Color: "#cc0000", HelixID: 0, Index: 10, Forward: false},
	}
	want3p := []Endpoint{
		{Color: "#0066cc", HelixID: 1, Index: 0, Forward: false},
		{Color: "#cc0000", HelixID: 1, Index: 10, Forward: true},
	}

	if !reflect.DeepEqual(ends5p, want5p) {
		t.Errorf("OligoEndpoints() 5' = %v, want %v", ends5p, want5p)
	}
	if !reflect.DeepEqual(ends3p, want3p) {
		t.Errorf("OligoEndpoints() 3' = %v, want %v", ends3p, want3p)
	}
}

func TestDesign_Coordinates(t *testing.T) {
	d := loadFixture(t, "two_helix.json")

	for _, id := range d.HelixOrder() {
		axis, fwd, rev, err := d.Coordinates(id)
		if err != nil {
			t.Fatal(err)
		}
		if len(axis) != 21 || len(fwd) != len(axis) || len(rev) != len(axis) {
			t.Fatalf("helix %d lengths = %d, %d, %d", id, len(axis), len(fwd), len(rev))
		}

		origin, _ := d.Origin(id)
		for i := range axis {
			if !scalar.EqualWithinAbs(axis[i].Z, float64(i)*0.34, 1e-9) ||
				axis[i].X != origin.X || axis[i].Y != origin.Y {
				t.Errorf("helix %d axis[%d] = %v", id, i, axis[i])
			}
		}
	}

	if _, _, _, err := d.Coordinates(7); err == nil {
		t.Error("Coordinates() of a missing helix returned no error")
	}
}

func TestLoad_empty(t *testing.T) {
	d := loadFixture(t, "empty.json")

	if got := d.Oligos(); len(got) != 0 {
		t.Errorf("Oligos() = %v, want none", got)
	}
	if ends5p, ends3p := d.OligoEndpoints(); len(ends5p) != 0 || len(ends3p) != 0 {
		t.Errorf("OligoEndpoints() = %v, %v", ends5p, ends3p)
	}
}

func TestLoad_errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, contents string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"not json", write("bad.json", "{")},
		{"no active part", write("none.json", `{"name": "none", "vstrands": []}`)},
		{"bad lattice", write("lattice.json", `{"vstrands": [{"num": 0, "scaf": [[-1,-1,-1,-1]], "stap": [[-1,-1,-1,-1]]}]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, DefaultOptions())

			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("Load() error = %v, want a *LoadError", err)
			}
			if le.Path != tt.path {
				t.Errorf("LoadError.Path = %q, want %q", le.Path, tt.path)
			}
		})
	}
}
