package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mj1618/dockyard/internal/model"
	"github.com/mj1618/dockyard/internal/workspace"
	"github.com/spf13/cobra"
)

var observeCmd = &cobra.Command{
	Use:   "observe",
	Short: "Watch the layout file and stream diffs as JSONL",
	Long: `Watch the layout file and emit the changes between successive versions
(added, removed, changed nodes) as JSONL to stdout.

Each line is a JSON object representing one change event. Nothing is emitted
while the file is unchanged. Output is always JSONL regardless of --format.

Use Ctrl+C or --duration to stop observing.`,
	Args: cobra.NoArgs,
	RunE: runObserve,
}

func init() {
	rootCmd.AddCommand(observeCmd)
	observeCmd.Flags().Int("duration", 0, "Max seconds to observe (0 = until Ctrl+C)")
	observeCmd.Flags().Int("debounce", 100, "Wait this many milliseconds after a write before reloading")
}

func runObserve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, err := filepath.Abs(layoutPath(cfg))
	if err != nil {
		return err
	}
	durationSec, _ := cmd.Flags().GetInt("duration")
	debounceMs, _ := cmd.Flags().GetInt("debounce")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()
	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	read := func() ([]model.FlatNode, error) {
		ws, _, err := workspace.Open(path, cfg, logger)
		if err != nil {
			return nil, err
		}
		return model.FlattenLayout(ws.Manager.Root()), nil
	}

	prevFlat, err := read()
	if err != nil {
		return fmt.Errorf("initial read failed: %w", err)
	}
	enc.Encode(map[string]interface{}{
		"type":  "snapshot",
		"ts":    time.Now().Unix(),
		"count": len(prevFlat),
	})

	var deadline <-chan time.Time
	if durationSec > 0 {
		deadline = time.After(time.Duration(durationSec) * time.Second)
	}
	var settle <-chan time.Time
	start := time.Now()
	eventCount := 0

loop:
	for {
		select {
		case <-deadline:
			break loop
		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				settle = time.After(time.Duration(debounceMs) * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			logger.Error("layout watcher error", "err", err)
		case <-settle:
			settle = nil
			currFlat, err := read()
			if err != nil {
				enc.Encode(map[string]interface{}{
					"type":  "error",
					"ts":    time.Now().Unix(),
					"error": err.Error(),
				})
				continue
			}
			for _, change := range model.DiffLayouts(prevFlat, currFlat) {
				enc.Encode(change)
				eventCount++
			}
			prevFlat = currFlat
		}
	}

	elapsed := time.Since(start)
	enc.Encode(map[string]interface{}{
		"type":    "done",
		"ts":      time.Now().Unix(),
		"elapsed": fmt.Sprintf("%.1fs", elapsed.Seconds()),
		"events":  eventCount,
	})
	return nil
}
