package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mj1618/dockyard/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ShowResult is the top-level output of the `show` command.
type ShowResult struct {
	Layout   string      `yaml:"layout,omitempty"   json:"layout,omitempty"`
	TS       int64       `yaml:"ts"                 json:"ts"`
	Size     [2]int      `yaml:"size"               json:"size"`
	Tree     *model.Node `yaml:"tree"               json:"tree"`
	Floating []string    `yaml:"floating,omitempty" json:"floating,omitempty"`
}

// ShowFlatResult is the top-level output when --flat is used.
type ShowFlatResult struct {
	Layout   string           `yaml:"layout,omitempty"   json:"layout,omitempty"`
	TS       int64            `yaml:"ts"                 json:"ts"`
	Nodes    []model.FlatNode `yaml:"nodes"              json:"nodes"`
	Floating []string         `yaml:"floating,omitempty" json:"floating,omitempty"`
}

// WindowInfo describes one registered window.
type WindowInfo struct {
	Title  string `yaml:"title"            json:"title"`
	State  string `yaml:"state"            json:"state"` // docked or floating
	Path   string `yaml:"p,omitempty"      json:"p,omitempty"`
	Slot   int    `yaml:"slot,omitempty"   json:"slot,omitempty"`
	Active bool   `yaml:"active,omitempty" json:"active,omitempty"`
	Bounds [4]int `yaml:"bounds,flow"      json:"bounds"`
}

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	TS      int64        `yaml:"ts"      json:"ts"`
	Windows []WindowInfo `yaml:"windows" json:"windows"`
}

// ValidateResult is the output of the `validate` command.
type ValidateResult struct {
	OK         bool              `yaml:"ok"                   json:"ok"`
	Violations []model.Violation `yaml:"violations,omitempty" json:"violations,omitempty"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
