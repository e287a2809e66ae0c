// Package mermaid encodes diagram definitions into mermaid.live and
// mermaid.ink URLs using the pako fragment format those services accept.
//
// Encoding is pure: the actual drawing happens in the external diagram
// engine (or in the user's browser via the generated links).
package mermaid

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Config holds per-diagram rendering preferences.
type Config struct {
	Theme string `json:"theme"`
}

// DefaultConfig returns the default mermaid configuration.
func DefaultConfig() *Config {
	return &Config{Theme: "default"}
}

// deflate compresses data with zlib at best compression, which is what the
// mermaid.live pako decoder expects.
func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePako serializes a diagram definition into a "pako:..." fragment.
func EncodePako(definition string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}

	state := map[string]interface{}{
		"code":    definition,
		"mermaid": config,
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return "", err
	}

	compressed, err := deflate(raw)
	if err != nil {
		return "", err
	}
	return "pako:" + base64.URLEncoding.EncodeToString(compressed), nil
}

// LiveEditURL returns a mermaid.live editor URL for a diagram definition.
func LiveEditURL(definition string, config *Config) (string, error) {
	pako, err := EncodePako(definition, config)
	if err != nil {
		return "", err
	}
	return "https://mermaid.live/edit/#" + pako, nil
}

// InkImageURL returns a mermaid.ink image URL for a diagram definition.
func InkImageURL(definition string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}
	pako, err := EncodePako(definition, config)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://mermaid.ink/img/%s?theme=%s&width=500&scale=2&type=webp", pako, config.Theme), nil
}
