package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	stn "github.com/sashite/stn-go"
)

// readPayload loads a structural payload from path, or from Stdin when path
// is "-". The extension picks the decoder: YAML for .yaml/.yml, JSON
// otherwise. Encoding lives here in the CLI; the core only ever sees the
// decoded structural map.
func readPayload(path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}
	return raw, nil
}

// writeStructural prints the canonical structural form of t as JSON.
func writeStructural(w io.Writer, t *stn.Transition) error {
	enc := json.NewEncoder(w)
	return enc.Encode(stn.ToStructural(t))
}
