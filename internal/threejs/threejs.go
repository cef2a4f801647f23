// Package threejs exports the oligos of a cadnano design as 3D polylines
// for the three.js viewer.
package threejs

import (
	"fmt"

	"github.com/douglaslab/cn2threejs/config"
	"github.com/douglaslab/cn2threejs/internal/cadnano"
	"github.com/douglaslab/cn2threejs/internal/log"
	"github.com/spf13/cobra"
)

// ConvertCmd takes a cobra command (with its flags) and runs Convert.
func ConvertCmd(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	flags, err := parseCmdFlags(cmd, conf.Output.Suffix)
	if err != nil {
		cmd.Help()
		log.Fatal(err)
	}

	if err = Convert(flags, conf); err != nil {
		log.Fatal(err)
	}
}

// Convert loads the design at the flags' input path and writes its oligo
// coordinates to the output path.
func Convert(flags *Flags, conf *config.Config) error {
	d, err := cadnano.Load(flags.in, DesignOptions(conf))
	if err != nil {
		return err
	}
	logDesign(d)

	if err = Export(d, flags.out, conf); err != nil {
		return err
	}

	log.Infof("wrote %d oligos to %s", len(d.Oligos()), flags.out)
	return nil
}

// Export writes the coordinates of every oligo in d to out, and to the
// viewer data file if one is configured.
func Export(d Design, out string, conf *config.Config) error {
	oligos, err := OligoCoordinates(d, conf)
	if err != nil {
		return err
	}

	output, err := writeJSON(out, oligos)
	if err != nil {
		return err
	}

	if conf.Output.ViewerPath != "" {
		return writeViewer(conf.Output.ViewerPath, output)
	}
	return nil
}

// OligoCoordinates is the polyline of each oligo in d, in d's order. Oligos
// are renamed by their position.
func OligoCoordinates(d Design, conf *config.Config) ([]OligoCoords, error) {
	prec := conf.Output.Precision

	helices, err := mapHelixCoords(d, prec)
	if err != nil {
		return nil, err
	}

	result := []OligoCoords{}
	for i, o := range d.Oligos() {
		coords := []Point{}
		for _, s := range o.Strands {
			hc, ok := helices[s.HelixID]
			if !ok {
				return nil, fmt.Errorf("oligo %s has a strand on unknown helix %d", o.Name, s.HelixID)
			}

			pts, err := strandCoords(hc, s)
			if err != nil {
				return nil, fmt.Errorf("oligo %s: %w", o.Name, err)
			}
			coords = append(coords, pts...)
		}

		oc := OligoCoords{
			Name:   fmt.Sprintf(conf.Output.NameFormat, i),
			Color:  o.Color,
			Coords: coords,
		}
		if i == 0 {
			log.Debugw("first oligo", "name", oc.Name, "color", oc.Color, "coords", oc.Coords)
		}
		result = append(result, oc)
	}

	return result, nil
}

// DesignOptions are the design geometry and colors from the settings.
func DesignOptions(conf *config.Config) cadnano.Options {
	twist := func(h config.HelixConfig) cadnano.Twist {
		return cadnano.Twist{
			BasesPerRepeat: h.BasesPerRepeat,
			TurnsPerRepeat: h.TurnsPerRepeat,
			EulerZ:         h.EulerZ,
		}
	}

	return cadnano.Options{
		Radius:        conf.Lattice.Radius,
		Rise:          conf.Lattice.Rise,
		MinorGroove:   conf.Lattice.MinorGroove,
		Honeycomb:     twist(conf.Lattice.Honeycomb),
		Square:        twist(conf.Lattice.Square),
		ScaffoldColor: conf.Colors.Scaffold,
		StapleColor:   conf.Colors.Staple,
	}
}

// logDesign logs a summary of the loaded part.
func logDesign(d *cadnano.Design) {
	width, height := d.SliceDimensions()
	ends5p, _ := d.OligoEndpoints()
	log.Debugw(
		"loaded design",
		"name", d.Name,
		"lattice", d.Lattice().String(),
		"helices", len(d.HelixOrder()),
		"max_length", d.MaxHelixLength(),
		"radius", d.HelixRadius(),
		"slice_width", width,
		"slice_height", height,
		"oligos", len(d.Oligos()),
		"linear_oligos", len(ends5p),
	)

	if ins, skips := d.Insertions(), d.Skips(); len(ins) > 0 || len(skips) > 0 {
		log.Warnf("design has %d insertions and %d skips, they are not applied to the coordinates", len(ins), len(skips))
	}
}
