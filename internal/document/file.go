package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"caddraw/internal/caderr"
)

// Format is an on-disk document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Extensions recognised by FormatFromPath; the viewer lists files by these.
var Extensions = map[string]Format{
	".json": JSON,
	".cad":  JSON,
	".yaml": YAML,
	".yml":  YAML,
}

func FormatFromPath(path string) (Format, error) {
	if f, ok := Extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unsupported document extension %q", filepath.Ext(path))
}

// Decode reads one document in format f.
func Decode(r io.Reader, f Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &caderr.SerializationError{Op: "deserialize", Format: string(f), Entity: "document", Err: err}
	}
	var m map[string]any
	switch f {
	case JSON:
		err = json.Unmarshal(data, &m)
	case YAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, &caderr.SerializationError{Op: "deserialize", Format: string(f), Entity: "document", Err: err}
	}
	if m == nil {
		return nil, &caderr.SerializationError{Op: "deserialize", Format: string(f), Entity: "document", Err: fmt.Errorf("empty input")}
	}
	return FromDict(m)
}

// Encode writes d in format f.
func Encode(w io.Writer, d *Document, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case JSON:
		data, err = json.MarshalIndent(d.ToDict(), "", "  ")
		data = append(data, '\n')
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(d.ToDict()); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	if err == nil {
		_, err = w.Write(data)
	}
	if err != nil {
		return &caderr.SerializationError{Op: "serialize", Format: string(f), Entity: "document", Err: err}
	}
	return nil
}

// Load reads a document, choosing the format by extension.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, &caderr.SerializationError{Op: "deserialize", Format: "file", Entity: path, Err: err}
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &caderr.SerializationError{Op: "deserialize", Format: string(f), Entity: path, Err: err}
	}
	defer fh.Close()
	return Decode(fh, f)
}

// Save writes a document, choosing the format by extension.
func Save(path string, d *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return &caderr.SerializationError{Op: "serialize", Format: "file", Entity: path, Err: err}
	}
	var buf bytes.Buffer
	if err := Encode(&buf, d, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &caderr.SerializationError{Op: "serialize", Format: string(f), Entity: path, Err: err}
	}
	return nil
}
