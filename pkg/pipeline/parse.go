package pipeline

import (
	"bytes"
	"os"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/errors"
)

// Parse decodes a JSON diagram description.
func Parse(data []byte) (diagram.Graph, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return diagram.Graph{}, errors.New(errors.ErrCodeInvalidInput, "empty diagram input")
	}
	g, err := diagram.ReadGraph(bytes.NewReader(data))
	if err != nil {
		return diagram.Graph{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid diagram JSON")
	}
	return g, nil
}

// ParseFile reads and decodes a diagram file.
func ParseFile(path string) (diagram.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return diagram.Graph{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "diagram file not found: %s", path)
		}
		return diagram.Graph{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return Parse(data)
}

// applyDirection returns g with the direction override applied.
func applyDirection(g diagram.Graph, direction string) diagram.Graph {
	if direction == "" {
		return g
	}
	if d, ok := diagram.ParseDirection(direction); ok {
		g.Direction = d
	}
	return g
}
