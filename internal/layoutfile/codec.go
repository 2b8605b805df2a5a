package layoutfile

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mj1618/dockyard/internal/model"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a layout file.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Anything that is not
// .yaml or .yml is XML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatXML
	}
}

// Encode writes n to w.
func Encode(w io.Writer, n *model.Node, f Format) error {
	d := fromNode(n)
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	case FormatXML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("xml encode: %w", err)
		}
		if err := enc.Flush(); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	default:
		return fmt.Errorf("unsupported layout format: %s", f)
	}
}

// Decode reads a layout document from r and checks its structure.
func Decode(r io.Reader, f Format) (*model.Node, error) {
	var d document
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
	case FormatXML:
		if err := xml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("xml decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported layout format: %s", f)
	}
	return d.toNode("root")
}

// Save writes the manager's tree to w.
func Save(w io.Writer, m *model.Manager, f Format) error {
	return Encode(w, m.Snapshot(), f)
}

// Load replaces the manager's tree with the one read from r and returns the
// titles that were skipped. On error the current tree is left untouched.
func Load(r io.Reader, m *model.Manager, f Format) ([]string, error) {
	n, err := Decode(r, f)
	if err != nil {
		return nil, err
	}
	return m.Restore(n), nil
}

// ReadFile loads the layout stored at path into m.
func ReadFile(path string, m *model.Manager) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer fh.Close()
	skipped, err := Load(fh, m, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return skipped, nil
}

// WriteFile saves m's tree to path, creating parent directories as needed.
func WriteFile(path string, m *model.Manager) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create layout dir: %w", err)
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create layout: %w", err)
	}
	if err := Save(fh, m, FormatFor(path)); err != nil {
		fh.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return fh.Close()
}

// ReadNode decodes the layout stored at path without restoring it.
func ReadNode(path string) (*model.Node, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer fh.Close()
	n, err := Decode(fh, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return n, nil
}
