package threejs

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/douglaslab/cn2threejs/internal/cadnano"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "test", "input", name)
}

func readOutput(t *testing.T, path string) []OligoCoords {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var oligos []OligoCoords
	if err = json.Unmarshal(data, &oligos); err != nil {
		t.Fatal(err)
	}
	return oligos
}

func Test_Convert(t *testing.T) {
	conf := testConfig(t)
	flags, err := NewFlags(fixture("two_helix.json"), t.TempDir(), conf)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(flags.Out()) != "two_helix_coords.json" {
		t.Fatalf("output path = %s", flags.Out())
	}

	if err = Convert(flags, conf); err != nil {
		t.Fatal(err)
	}
	got := readOutput(t, flags.Out())

	want := []struct {
		name   string
		color  string
		points int
	}{
		{"oligo000", "#0066cc", 40}, // scaffold, 21 + 21 bases
		{"oligo001", "#cc0000", 20}, // staple, 11 + 11 bases
		{"oligo002", "#f74308", 18}, // circular staple, 10 + 10 bases
	}
	if len(got) != len(want) {
		t.Fatalf("wrote %d oligos, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Name != w.name || got[i].Color != w.color || len(got[i].Coords) != w.points {
			t.Errorf("oligo %d = %s %s with %d points, want %s %s with %d points",
				i, got[i].Name, got[i].Color, len(got[i].Coords), w.name, w.color, w.points)
		}
	}

	// the scaffold starts at base 0 of helix 0, whose axis is the origin
	theta := 17.143 * math.Pi / 180
	r := 1.125 / 2
	first := got[0].Coords[0]
	wantFirst := Point{r * math.Cos(theta), r * math.Sin(theta), 0}
	for k := range first {
		if !scalar.EqualWithinAbs(first[k], wantFirst[k], 1e-6) {
			t.Errorf("first scaffold point = %v, want %v", first, wantFirst)
		}
	}

	// continues from helix 0 to helix 1 on the reverse strand from base 20
	crossed := got[0].Coords[20]
	if !scalar.EqualWithinAbs(crossed[2], 20*0.34, 1e-6) || crossed[0] < 1 {
		t.Errorf("first point after the crossover = %v", crossed)
	}

	for _, o := range got {
		for _, p := range o.Coords {
			for _, c := range p {
				if scalar.RoundEven(c, 6) != c {
					t.Errorf("%s has an unrounded coordinate %v", o.Name, c)
				}
			}
		}
	}
}

func Test_Convert_deterministic(t *testing.T) {
	conf := testConfig(t)

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		flags, err := NewFlags(fixture("two_helix.json"), t.TempDir(), conf)
		if err != nil {
			t.Fatal(err)
		}
		if err = Convert(flags, conf); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(flags.Out())
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, data)
	}

	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("converting the same design twice wrote different files")
	}
}

func Test_Convert_empty(t *testing.T) {
	conf := testConfig(t)
	flags, err := NewFlags(fixture("empty.json"), t.TempDir(), conf)
	if err != nil {
		t.Fatal(err)
	}
	if err = Convert(flags, conf); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(flags.Out())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("output = %s, want []", data)
	}
}

func Test_Convert_missingInput(t *testing.T) {
	conf := testConfig(t)
	dir := t.TempDir()
	flags, err := NewFlags(filepath.Join(dir, "missing.json"), dir, conf)
	if err != nil {
		t.Fatal(err)
	}

	err = Convert(flags, conf)
	var le *cadnano.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Convert() error = %v, want a *cadnano.LoadError", err)
	}
	if _, statErr := os.Stat(flags.Out()); !os.IsNotExist(statErr) {
		t.Errorf("output written for a missing design: %v", statErr)
	}
}

func Test_Export_viewer(t *testing.T) {
	conf := testConfig(t)
	dir := t.TempDir()
	conf.Output.ViewerPath = filepath.Join(dir, "viewer", "input.js")

	d, err := cadnano.Load(fixture("two_helix.json"), DesignOptions(conf))
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "two_helix_coords.json")
	if err = Export(d, out, conf); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(out)
	script, err := os.ReadFile(conf.Output.ViewerPath)
	if err != nil {
		t.Fatal(err)
	}
	if want := "var DATA = " + string(data) + ";\n"; string(script) != want {
		t.Errorf("viewer data = %.60s..., want %.60s...", script, want)
	}
}

func Test_parseCmdFlags(t *testing.T) {
	dir := t.TempDir()
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "cn2threejs"}
		cmd.Flags().StringP("input", "i", "", "")
		cmd.Flags().StringP("output", "o", "", "")
		return cmd
	}

	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr bool
	}{
		{"input only", []string{"-i", "box.json"}, "box_coords.json", false},
		{"output directory", []string{"--input", "box.json", "--output", dir}, filepath.Join(dir, "box_coords.json"), false},
		{"not json", []string{"-i", "box.csv"}, "", true},
		{"no input", []string{"-o", dir}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}

			flags, err := parseCmdFlags(cmd, "_coords.json")
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCmdFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && flags.Out() != tt.wantOut {
				t.Errorf("parseCmdFlags() out = %s, want %s", flags.Out(), tt.wantOut)
			}
			if err != nil && !strings.Contains(err.Error(), "input") {
				t.Errorf("parseCmdFlags() error = %v, want it to name the input", err)
			}
		})
	}
}
