package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/dockyard/internal/config"
	"github.com/mj1618/dockyard/internal/layoutfile"
	"github.com/mj1618/dockyard/internal/model"
)

// execute runs the root command with args against a layout and config in a
// temp dir.
func execute(t *testing.T, dir, stdin string, args ...string) error {
	t.Helper()
	all := append([]string{
		"--layout", filepath.Join(dir, "layout.xml"),
		"--config", filepath.Join(dir, "config.yaml"),
		"--log-level", "error",
	}, args...)
	rootCmd.SetArgs(all)
	rootCmd.SetIn(strings.NewReader(stdin))
	defer rootCmd.SetIn(nil)

	// Keep command output out of the test log.
	stdout := os.Stdout
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer devnull.Close()
	os.Stdout = devnull
	defer func() { os.Stdout = stdout }()

	return rootCmd.Execute()
}

func TestDo_SavesLayout(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, dir, `
- open: { title: Scene, dock: true }
- open: { title: Console, target: Scene, dir: bottom }
- open: { title: Inspector, target: Scene, dir: right }
`, "do")
	if err != nil {
		t.Fatal(err)
	}

	n, err := layoutfile.ReadNode(filepath.Join(dir, "layout.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Titles(); len(got) != 3 {
		t.Errorf("expected 3 windows in the saved layout, got %v", got)
	}
	if n.Mode != model.LayoutVertical.String() {
		t.Errorf("expected a vertical root, got %s", n.Mode)
	}
}

func TestCommands_DockAndUndock(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Windows = []string{"Scene", "Console"}
	if err := config.Save(filepath.Join(dir, "config.yaml"), cfg); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, dir, "", "dock", "Scene"); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, dir, "", "dock", "Console", "--target", "Scene", "--dir", "left"); err != nil {
		t.Fatal(err)
	}
	n, err := layoutfile.ReadNode(filepath.Join(dir, "layout.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Mode != "horizontal" || n.Slots[0].Windows[0] != "Console" {
		t.Errorf("expected Console docked left of Scene, got %+v", n)
	}

	if err := execute(t, dir, "", "undock", "Console"); err != nil {
		t.Fatal(err)
	}
	n, err = layoutfile.ReadNode(filepath.Join(dir, "layout.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Mode != "center" {
		t.Errorf("expected the split to collapse, got %s", n.Mode)
	}

	if err := execute(t, dir, "", "dock", "Ghost"); err == nil {
		t.Error("expected an error for an unknown window")
	}
	if err := execute(t, dir, "", "validate"); err != nil {
		t.Errorf("expected a valid layout: %v", err)
	}
}
