package threejs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// OligoCoords is a single oligo's polyline, ordered from its 5' end.
type OligoCoords struct {
	// Name is the oligo's position in the design, ex: "oligo003"
	Name string `json:"name"`

	// Color of the oligo in the design, passed through as is
	Color string `json:"color"`

	Coords []Point `json:"coords"`
}

// writeJSON serializes the oligos and writes them to filename, replacing
// anything that was there.
func writeJSON(filename string, oligos []OligoCoords) (output []byte, err error) {
	if oligos == nil {
		oligos = []OligoCoords{}
	}

	output, err = json.Marshal(oligos)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %w", err)
	}
	return output, nil
}

// writeViewer writes the serialized oligos as a script the three.js viewer
// loads before its own: var DATA = [...];
func writeViewer(filename string, output []byte) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create viewer directory: %w", err)
		}
	}

	script := make([]byte, 0, len(output)+len("var DATA = ;\n"))
	script = append(script, "var DATA = "...)
	script = append(script, output...)
	script = append(script, ";\n"...)

	if err := os.WriteFile(filename, script, 0666); err != nil {
		return fmt.Errorf("failed to write the viewer data: %w", err)
	}
	return nil
}
