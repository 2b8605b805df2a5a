// Package workspace binds a docking manager to a layout file and exposes the
// operations shared by the CLI and the MCP server.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/mj1618/dockyard/internal/config"
	"github.com/mj1618/dockyard/internal/layoutfile"
	"github.com/mj1618/dockyard/internal/model"
	"github.com/mj1618/dockyard/internal/output"
)

// ErrUnknownWindow is returned when a title does not name a registered window.
var ErrUnknownWindow = errors.New("unknown window")

// Workspace is a manager whose tree is loaded from and saved to Path.
// Windows are registered from the config and from the titles the layout
// file references; floating windows are not persisted.
type Workspace struct {
	Path    string
	Config  config.Config
	Manager *model.Manager

	log *slog.Logger
}

// New returns an empty workspace. path may be empty for an in-memory one.
func New(path string, cfg config.Config, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.Default()
	}
	ws := &Workspace{
		Path:    path,
		Config:  cfg,
		Manager: model.NewManager(cfg.Options(logger)),
		log:     logger,
	}
	for _, title := range cfg.Windows {
		ws.Manager.Open(title, nil)
	}
	return ws
}

// Open returns a workspace with the layout at path loaded. A missing file
// yields an empty tree. The skipped titles of the load are returned.
func Open(path string, cfg config.Config, logger *slog.Logger) (*Workspace, []string, error) {
	ws := New(path, cfg, logger)
	if path == "" {
		return ws, nil, nil
	}
	skipped, err := ws.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		ws.log.Debug("layout file not found, starting empty", "path", path)
		return ws, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return ws, skipped, nil
}

// Load replaces the tree with the layout stored at path, registering every
// title it references first.
func (ws *Workspace) Load(path string) ([]string, error) {
	n, err := layoutfile.ReadNode(path)
	if err != nil {
		return nil, err
	}
	for _, title := range n.Titles() {
		if title != "" {
			ws.Manager.Open(title, nil)
		}
	}
	skipped := ws.Manager.Restore(n)
	ws.log.Info("layout loaded", "path", path, "windows", len(n.Titles()), "skipped", len(skipped))
	return skipped, nil
}

// Save writes the tree to Path.
func (ws *Workspace) Save() error {
	if ws.Path == "" {
		return fmt.Errorf("no layout file set")
	}
	return ws.SaveAs(ws.Path)
}

// SaveAs writes the tree to path.
func (ws *Workspace) SaveAs(path string) error {
	if err := layoutfile.WriteFile(path, ws.Manager); err != nil {
		return err
	}
	ws.log.Info("layout saved", "path", path)
	return nil
}

// Window looks a registered window up by title.
func (ws *Workspace) Window(title string) (*model.Window, error) {
	if title == "" {
		return nil, fmt.Errorf("window title is required")
	}
	w := ws.Manager.Window(title)
	if w == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, title)
	}
	return w, nil
}

// OpenWindow registers title, or reopens it.
func (ws *Workspace) OpenWindow(title string) (*model.Window, error) {
	if title == "" {
		return nil, fmt.Errorf("window title is required")
	}
	return ws.Manager.Open(title, nil), nil
}

// Dock docks title against target in direction dir. An empty target docks
// against the whole tree.
func (ws *Workspace) Dock(title, target string, dir model.Direction) error {
	w, err := ws.Window(title)
	if err != nil {
		return err
	}
	var t *model.Window
	if target != "" {
		if t, err = ws.Window(target); err != nil {
			return err
		}
		if !t.Docked() {
			return fmt.Errorf("target %q is not docked", target)
		}
	}
	ws.Manager.DockAt(w, t, dir)
	if !w.Docked() {
		return fmt.Errorf("window %q cannot be docked", title)
	}
	return nil
}

// Undock makes title floating.
func (ws *Workspace) Undock(title string) error {
	w, err := ws.Window(title)
	if err != nil {
		return err
	}
	ws.Manager.Undock(w)
	return nil
}

// Close closes title and drops it from the registry.
func (ws *Workspace) Close(title string) error {
	w, err := ws.Window(title)
	if err != nil {
		return err
	}
	ws.Manager.Close(w)
	return nil
}

// Focus makes title the active tab of its group.
func (ws *Workspace) Focus(title string) error {
	w, err := ws.Window(title)
	if err != nil {
		return err
	}
	if !w.Docked() {
		return fmt.Errorf("window %q is floating", title)
	}
	ws.Manager.Focus(w)
	return nil
}

// Resize changes the canvas size.
func (ws *Workspace) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %gx%g", width, height)
	}
	ws.Manager.Resize(width, height)
	ws.Config.Width, ws.Config.Height = width, height
	return nil
}

// SetRatio sets the split ratio of the node at path.
func (ws *Workspace) SetRatio(path string, ratio float64) error {
	l, _, ok := model.Find(ws.Manager.Root(), path)
	if !ok {
		return fmt.Errorf("no layout node at %q", path)
	}
	if l.IsLeaf() {
		return fmt.Errorf("node %s is not a split", path)
	}
	if ratio <= 0 || ratio >= 1 {
		return fmt.Errorf("ratio %g outside (0,1)", ratio)
	}
	l.SizeRatio = ratio
	l.SetSize(l.Width, l.Height)
	return nil
}

// Show returns the nested view of the tree.
func (ws *Workspace) Show() output.ShowResult {
	o := ws.Manager.Options()
	return output.ShowResult{
		Layout:   ws.Path,
		TS:       time.Now().Unix(),
		Size:     [2]int{int(o.Width + 0.5), int(o.Height + 0.5)},
		Tree:     ws.Manager.Snapshot(),
		Floating: ws.floatingTitles(),
	}
}

// ShowFlat returns the flattened view of the tree.
func (ws *Workspace) ShowFlat() output.ShowFlatResult {
	return output.ShowFlatResult{
		Layout:   ws.Path,
		TS:       time.Now().Unix(),
		Nodes:    model.FlattenLayout(ws.Manager.Root()),
		Floating: ws.floatingTitles(),
	}
}

// List describes every registered window. With docked or floating set, only
// windows in that state are listed.
func (ws *Workspace) List(docked, floating bool) output.ListResult {
	placed := model.Place(ws.Manager.Root())
	res := output.ListResult{TS: time.Now().Unix(), Windows: []output.WindowInfo{}}
	for _, w := range ws.Manager.Windows() {
		if (docked && !w.Docked()) || (floating && w.Docked()) {
			continue
		}
		res.Windows = append(res.Windows, windowInfo(w, placed))
	}
	return res
}

// Info describes one window.
func (ws *Workspace) Info(title string) (output.WindowInfo, error) {
	w, err := ws.Window(title)
	if err != nil {
		return output.WindowInfo{}, err
	}
	return windowInfo(w, model.Place(ws.Manager.Root())), nil
}

// Validate checks the tree.
func (ws *Workspace) Validate() output.ValidateResult {
	vs := ws.Manager.Validate()
	return output.ValidateResult{OK: len(vs) == 0, Violations: vs}
}

func (ws *Workspace) floatingTitles() []string {
	var out []string
	for _, w := range ws.Manager.Floating() {
		out = append(out, w.Title)
	}
	return out
}

func windowInfo(w *model.Window, placed map[*model.Window]model.Placement) output.WindowInfo {
	info := output.WindowInfo{Title: w.Title, State: "floating"}
	if p, ok := placed[w]; ok {
		info.State = "docked"
		info.Path = p.Path
		info.Slot = p.Slot
		info.Active = p.Active
		info.Bounds = p.Bounds.Ints()
	}
	return info
}
