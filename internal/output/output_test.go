package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/mj1618/dockyard/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleShow() ShowResult {
	return ShowResult{
		Layout: "layout.xml",
		TS:     1707500000,
		Size:   [2]int{1280, 720},
		Tree: &model.Node{
			Mode:      "horizontal",
			SizeRatio: 0.5,
			Slots: [2]model.Slot{
				{Windows: []string{"Scene"}},
				{Windows: []string{"Console", "Log"}, Active: "Log"},
			},
		},
		Floating: []string{"Assets"},
	}
}

func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	output := capture(t, func() error { return PrintYAML(sampleShow()) })

	// YAML output should be multi-line
	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}

	// Verify it's valid YAML
	var decoded ShowResult
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Layout != "layout.xml" {
		t.Errorf("layout: got %q, want %q", decoded.Layout, "layout.xml")
	}
	if decoded.Tree == nil || decoded.Tree.Slots[1].Active != "Log" {
		t.Errorf("tree did not survive: %+v", decoded.Tree)
	}
}

func TestPrint_UsesOutputFormat(t *testing.T) {
	defer func(f Format, p bool) { OutputFormat, PrettyOutput = f, p }(OutputFormat, PrettyOutput)

	OutputFormat = FormatJSON
	PrettyOutput = false
	out := capture(t, func() error { return Print(ListResult{TS: 1}) })
	if out != "{\"ts\":1,\"windows\":null}\n" {
		t.Errorf("unexpected JSON output %q", out)
	}

	OutputFormat = "toml"
	if err := Print(ListResult{}); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestShowResult_OmitEmpty(t *testing.T) {
	result := ShowResult{TS: 123}
	data, err := yaml.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	// Layout and Floating should be omitted when empty
	if _, ok := m["layout"]; ok {
		t.Error("empty layout should be omitted")
	}
	if _, ok := m["floating"]; ok {
		t.Error("empty floating list should be omitted")
	}
	// TS should always be present
	if _, ok := m["ts"]; !ok {
		t.Error("ts should always be present")
	}
}

func TestWindowInfo_FlowBounds(t *testing.T) {
	data, err := yaml.Marshal(WindowInfo{Title: "Scene", State: "docked", Bounds: [4]int{0, 0, 640, 720}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("bounds: [0, 0, 640, 720]")) {
		t.Errorf("expected flow-style bounds, got:\n%s", data)
	}
}
