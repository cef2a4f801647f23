package threejs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/douglaslab/cn2threejs/config"
	"github.com/spf13/cobra"
)

// Flags contains the parsed cobra flags of the convert command.
type Flags struct {
	// the cadnano design to read
	in string

	// the file to write oligo coordinates to
	out string
}

// NewFlags makes a new flags object manually, as if in and dir were passed
// to --input and --output.
func NewFlags(in, dir string, conf *config.Config) (*Flags, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	return &Flags{in: in, out: guessOutput(in, dir, conf.Output.Suffix)}, nil
}

// Out is the path the coordinates are written to.
func (f *Flags) Out() string {
	return f.out
}

// parseCmdFlags gathers the input and output paths from a cobra cmd object.
func parseCmdFlags(cmd *cobra.Command, suffix string) (*Flags, error) {
	in, err := cmd.Flags().GetString("input")
	if err != nil {
		return nil, err
	}
	if err = checkInput(in); err != nil {
		return nil, err
	}

	dir, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return &Flags{in: in, out: guessOutput(in, dir, suffix)}, nil
}

// checkInput rejects input paths that aren't cadnano JSON files.
func checkInput(in string) error {
	if in == "" {
		return fmt.Errorf("input file not specified")
	}
	if !strings.HasSuffix(in, ".json") {
		return fmt.Errorf("input should be JSON file: %s", in)
	}
	return nil
}

// guessOutput gets the output path from the input path. The output is
// written to dir when it exists and beside the input otherwise.
func guessOutput(in, dir, suffix string) string {
	noExt := strings.TrimSuffix(in, filepath.Ext(in))

	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			return filepath.Join(dir, filepath.Base(noExt)+suffix)
		}
	}
	return noExt + suffix
}
