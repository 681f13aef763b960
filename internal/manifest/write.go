package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Write encodes the manifest as indented JSON at path, gzip-compressing
// when path ends in .gz.
func Write(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating manifest file: %w", err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	encErr := Encode(m, w)

	if gz != nil {
		if err := gz.Close(); err != nil && encErr == nil {
			encErr = fmt.Errorf("closing gzip stream: %w", err)
		}
	}
	if err := f.Close(); err != nil && encErr == nil {
		encErr = fmt.Errorf("closing manifest file: %w", err)
	}
	return encErr
}

// Encode writes the manifest as indented JSON to w.
func Encode(m *Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return nil
}
