package beautify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// DecodeStyle reads a style file. ext picks the syntax ("toml" or "json",
// with or without the dot). Keys missing from the file keep their defaults.
func DecodeStyle(data []byte, ext string) (StyleState, error) {
	s := DefaultStyle()
	switch styleExt(ext) {
	case "toml":
		if _, err := toml.Decode(string(data), &s); err != nil {
			return DefaultStyle(), fmt.Errorf("style toml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &s); err != nil {
			return DefaultStyle(), fmt.Errorf("style json: %w", err)
		}
	default:
		return DefaultStyle(), fmt.Errorf("unknown style file type %q", ext)
	}
	s.Format = ParseFormat(string(s.Format))
	return s, nil
}

// EncodeStyle writes s in the given syntax.
func EncodeStyle(s StyleState, ext string) ([]byte, error) {
	switch styleExt(ext) {
	case "toml":
		buf := &bytes.Buffer{}
		if err := toml.NewEncoder(buf).Encode(s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		return json.MarshalIndent(s, "", "  ")
	}
	return nil, fmt.Errorf("unknown style file type %q", ext)
}

func styleExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
