package workspace

import (
	"fmt"
	"os"

	"github.com/mj1618/dockyard/internal/model"
	"github.com/mj1618/dockyard/internal/platform"
	"gopkg.in/yaml.v3"
)

// DoResult is the output of a batch of steps.
type DoResult struct {
	OK        bool         `yaml:"ok"              json:"ok"`
	Action    string       `yaml:"action"          json:"action"`
	Steps     int          `yaml:"steps"           json:"steps"`
	Completed int          `yaml:"completed"       json:"completed"`
	Error     string       `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []StepResult `yaml:"results"         json:"results"`
	Tree      *model.Node  `yaml:"tree,omitempty"  json:"tree,omitempty"`
}

// StepResult is the output for a single step within a batch.
type StepResult struct {
	Step       int               `yaml:"step"                 json:"step"`
	OK         bool              `yaml:"ok"                   json:"ok"`
	Action     string            `yaml:"action"               json:"action"`
	Error      string            `yaml:"error,omitempty"      json:"error,omitempty"`
	Window     string            `yaml:"window,omitempty"     json:"window,omitempty"`
	Target     string            `yaml:"target,omitempty"     json:"target,omitempty"`
	Dir        string            `yaml:"dir,omitempty"        json:"dir,omitempty"`
	State      string            `yaml:"state,omitempty"      json:"state,omitempty"`
	Path       string            `yaml:"p,omitempty"          json:"p,omitempty"`
	Ratio      float64           `yaml:"ratio,omitempty"      json:"ratio,omitempty"`
	File       string            `yaml:"file,omitempty"       json:"file,omitempty"`
	Skipped    []string          `yaml:"skipped,omitempty"    json:"skipped,omitempty"`
	Violations []model.Violation `yaml:"violations,omitempty" json:"violations,omitempty"`
}

// Actions lists the supported step types.
var Actions = []string{"open", "close", "dock", "undock", "drag", "split", "focus", "resize", "render", "save", "load", "validate"}

// ParseSteps decodes a YAML (or JSON) list of single-key step maps:
//
//	- open: { title: Console }
//	- dock: { title: Console, target: Scene, dir: bottom }
func ParseSteps(data []byte) ([]map[string]map[string]interface{}, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no steps provided: expected a YAML list of actions")
	}
	var steps []map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("no steps provided: expected a YAML list of actions")
	}
	return steps, nil
}

// Run executes steps in order. With stopOnError set, the first failing step
// ends the batch.
func (ws *Workspace) Run(steps []map[string]map[string]interface{}, stopOnError bool) DoResult {
	results := make([]StepResult, 0, len(steps))
	completed := 0
	hasFailure := false
	var lastErr string

	for i, step := range steps {
		stepNum := i + 1
		if len(step) != 1 {
			errMsg := fmt.Sprintf("step %d: expected exactly one action key, got %d", stepNum, len(step))
			results = append(results, StepResult{Step: stepNum, Error: errMsg})
			hasFailure = true
			lastErr = errMsg
			if stopOnError {
				break
			}
			continue
		}

		var result StepResult
		var err error
		for action, params := range step {
			result, err = ws.Execute(action, params)
		}
		result.Step = stepNum
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			hasFailure = true
			lastErr = fmt.Sprintf("step %d: %s", stepNum, err)
			ws.log.Debug("step failed", "step", stepNum, "action", result.Action, "err", err)
			if stopOnError {
				break
			}
			continue
		}
		result.OK = true
		completed++
		results = append(results, result)
	}

	return DoResult{
		OK:        !hasFailure,
		Action:    "do",
		Steps:     len(steps),
		Completed: completed,
		Error:     lastErr,
		Results:   results,
		Tree:      ws.Manager.Snapshot(),
	}
}

// Execute runs a single step.
func (ws *Workspace) Execute(action string, params map[string]interface{}) (StepResult, error) {
	if params == nil {
		params = map[string]interface{}{}
	}
	switch action {
	case "open":
		return ws.executeOpen(params)
	case "close":
		return ws.executeClose(params)
	case "dock":
		return ws.executeDock(params)
	case "undock":
		return ws.executeUndock(params)
	case "drag":
		return ws.executeDrag(params)
	case "split":
		return ws.executeSplit(params)
	case "focus":
		return ws.executeFocus(params)
	case "resize":
		return ws.executeResize(params)
	case "render":
		return ws.executeRender(params)
	case "save":
		return ws.executeSave(params)
	case "load":
		return ws.executeLoad(params)
	case "validate":
		return ws.executeValidate()
	default:
		return StepResult{Action: action}, fmt.Errorf("unknown step type %q: supported: %v", action, Actions)
	}
}

func (ws *Workspace) stepFor(action, title string) StepResult {
	res := StepResult{Action: action, Window: title}
	if w := ws.Manager.Window(title); w != nil {
		info := windowInfo(w, model.Place(ws.Manager.Root()))
		res.State = info.State
		res.Path = info.Path
	}
	return res
}

func (ws *Workspace) executeOpen(params map[string]interface{}) (StepResult, error) {
	title := StringParam(params, "title", "")
	if _, err := ws.OpenWindow(title); err != nil {
		return StepResult{Action: "open"}, err
	}
	if BoolParam(params, "dock", false) || StringParam(params, "target", "") != "" {
		dir, err := model.ParseDirection(StringParam(params, "dir", "center"))
		if err != nil {
			return StepResult{Action: "open", Window: title}, err
		}
		if err := ws.Dock(title, StringParam(params, "target", ""), dir); err != nil {
			return StepResult{Action: "open", Window: title}, err
		}
	}
	return ws.stepFor("open", title), nil
}

func (ws *Workspace) executeClose(params map[string]interface{}) (StepResult, error) {
	title := StringParam(params, "title", "")
	if err := ws.Close(title); err != nil {
		return StepResult{Action: "close", Window: title}, err
	}
	return StepResult{Action: "close", Window: title, State: "closed"}, nil
}

func (ws *Workspace) executeDock(params map[string]interface{}) (StepResult, error) {
	title := StringParam(params, "title", "")
	target := StringParam(params, "target", "")
	dir, err := model.ParseDirection(StringParam(params, "dir", "center"))
	if err != nil {
		return StepResult{Action: "dock", Window: title}, err
	}
	if err := ws.Dock(title, target, dir); err != nil {
		return StepResult{Action: "dock", Window: title}, err
	}
	res := ws.stepFor("dock", title)
	res.Target = target
	res.Dir = dir.String()
	return res, nil
}

func (ws *Workspace) executeUndock(params map[string]interface{}) (StepResult, error) {
	title := StringParam(params, "title", "")
	if err := ws.Undock(title); err != nil {
		return StepResult{Action: "undock", Window: title}, err
	}
	return ws.stepFor("undock", title), nil
}

func (ws *Workspace) executeDrag(params map[string]interface{}) (StepResult, error) {
	title := StringParam(params, "title", "")
	var to platform.Point
	if at := StringParam(params, "to", ""); at != "" {
		p, err := platform.ParsePoint(at)
		if err != nil {
			return StepResult{Action: "drag", Window: title}, err
		}
		to = p
	} else {
		to = platform.Point{X: FloatParam(params, "x", 0), Y: FloatParam(params, "y", 0)}
	}
	if _, err := ws.Drag(title, to); err != nil {
		return StepResult{Action: "drag", Window: title}, err
	}
	return ws.stepFor("drag", title), nil
}

func (ws *Workspace) executeSplit(params map[string]interface{}) (StepResult, error) {
	path := StringParam(params, "p", StringParam(params, "path", "root"))
	res := StepResult{Action: "split", Path: path}
	if _, ok := params["ratio"]; ok {
		ratio := FloatParam(params, "ratio", 0)
		if err := ws.SetRatio(path, ratio); err != nil {
			return res, err
		}
		res.Ratio = ratio
		return res, nil
	}
	if _, ok := params["delta"]; !ok {
		return res, fmt.Errorf("specify ratio or delta")
	}
	ratio, err := ws.DragSplitter(path, FloatParam(params, "delta", 0))
	if err != nil {
		return res, err
	}
	res.Ratio = ratio
	return res, nil
}

func (ws *Workspace) executeFocus(params map[string]interface{}) (StepResult, error) {
	title := StringParam(params, "title", "")
	if err := ws.Focus(title); err != nil {
		return StepResult{Action: "focus", Window: title}, err
	}
	return ws.stepFor("focus", title), nil
}

func (ws *Workspace) executeResize(params map[string]interface{}) (StepResult, error) {
	o := ws.Manager.Options()
	width := FloatParam(params, "width", o.Width)
	height := FloatParam(params, "height", o.Height)
	if err := ws.Resize(width, height); err != nil {
		return StepResult{Action: "resize"}, err
	}
	return StepResult{Action: "resize"}, nil
}

func (ws *Workspace) executeRender(params map[string]interface{}) (StepResult, error) {
	out := StringParam(params, "out", "")
	if out == "" {
		return StepResult{Action: "render"}, fmt.Errorf("out is required")
	}
	f, err := os.Create(out)
	if err != nil {
		return StepResult{Action: "render"}, fmt.Errorf("create %s: %w", out, err)
	}
	if err := ws.RenderPNG(f, BoolParam(params, "sidebar", true)); err != nil {
		f.Close()
		return StepResult{Action: "render"}, err
	}
	if err := f.Close(); err != nil {
		return StepResult{Action: "render"}, err
	}
	return StepResult{Action: "render", File: out}, nil
}

func (ws *Workspace) executeSave(params map[string]interface{}) (StepResult, error) {
	path := StringParam(params, "path", ws.Path)
	if path == "" {
		return StepResult{Action: "save"}, fmt.Errorf("no layout file set")
	}
	if err := ws.SaveAs(path); err != nil {
		return StepResult{Action: "save"}, err
	}
	return StepResult{Action: "save", File: path}, nil
}

func (ws *Workspace) executeLoad(params map[string]interface{}) (StepResult, error) {
	path := StringParam(params, "path", ws.Path)
	if path == "" {
		return StepResult{Action: "load"}, fmt.Errorf("no layout file set")
	}
	skipped, err := ws.Load(path)
	if err != nil {
		return StepResult{Action: "load"}, err
	}
	return StepResult{Action: "load", File: path, Skipped: skipped}, nil
}

func (ws *Workspace) executeValidate() (StepResult, error) {
	res := StepResult{Action: "validate"}
	if vs := ws.Manager.Validate(); len(vs) > 0 {
		res.Violations = vs
		return res, fmt.Errorf("%d invariant violations", len(vs))
	}
	return res, nil
}
