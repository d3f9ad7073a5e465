package aiactions

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// reservedKeys pass through parameter translation untouched.
var reservedKeys = map[string]struct{}{
	"outputFormat":      {},
	"waitForCompletion": {},
	"spaceId":           {},
	"environmentId":     {},
}

// generation is one immutable snapshot of the catalog and its derived
// tables. A new generation is built fully off to the side and published
// with a single swap, so lookups never observe a half-built catalog.
type generation struct {
	actions   map[string]*cma.AIAction
	order     []string
	tools     map[string]mcp.Tool
	nameToVar map[string]map[string]string // actionID -> friendly -> variable ID
	pathToVar map[string]map[string]string // actionID -> friendly path -> "<variable ID>_path"
}

func emptyGeneration() *generation {
	return &generation{
		actions:   make(map[string]*cma.AIAction),
		tools:     make(map[string]mcp.Tool),
		nameToVar: make(map[string]map[string]string),
		pathToVar: make(map[string]map[string]string),
	}
}

// Registry owns the AI Action catalog together with the friendly-name
// and path-name mapping tables. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	gen    *generation
	opts   ToolOptions
	logger *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ToolOptions, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{gen: emptyGeneration(), opts: opts, logger: logger}
}

// Reload replaces the whole catalog with the given actions, rebuilding
// every tool descriptor and both mapping tables atomically.
func (r *Registry) Reload(actions []cma.AIAction) {
	next := emptyGeneration()
	for i := range actions {
		action := actions[i]
		id := action.ID()
		if id == "" {
			r.logger.Warn("skipping AI Action without an ID", slog.String("name", action.Name))
			continue
		}
		tool, nameToVar, pathToVar := buildTool(&action, r.opts)
		next.actions[id] = &action
		next.order = append(next.order, id)
		next.tools[id] = tool
		next.nameToVar[id] = nameToVar
		next.pathToVar[id] = pathToVar
	}

	r.mu.Lock()
	r.gen = next
	r.mu.Unlock()
}

// Clear empties the catalog and both mapping tables.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.gen = emptyGeneration()
	r.mu.Unlock()
}

// Get returns a cached action by ID.
func (r *Registry) Get(actionID string) (*cma.AIAction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.gen.actions[actionID]
	return a, ok
}

// All returns the cached actions in listing order.
func (r *Registry) All() []*cma.AIAction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*cma.AIAction, 0, len(r.gen.order))
	for _, id := range r.gen.order {
		out = append(out, r.gen.actions[id])
	}
	return out
}

// Len returns the number of cached actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.gen.actions)
}

// Tools returns the generated tool descriptors in listing order.
func (r *Registry) Tools() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]mcp.Tool, 0, len(r.gen.order))
	for _, id := range r.gen.order {
		out = append(out, r.gen.tools[id])
	}
	return out
}

// ToolNames returns the generated tool names in listing order.
func (r *Registry) ToolNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.gen.order))
	for _, id := range r.gen.order {
		out = append(out, ToolName(id))
	}
	return out
}

// ToolFor returns the generated tool descriptor for one action.
func (r *Registry) ToolFor(actionID string) (mcp.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.gen.tools[actionID]
	return t, ok
}

// Translate rewrites an input object keyed by friendly names into one
// keyed by the action's variable IDs. Reserved keys pass through
// untouched. Fails open: with no tables for the action, or for keys
// with no mapping, the input is passed through so unknown or legacy
// actions keep working; every fall-through is logged.
// The input map is never mutated.
func (r *Registry) Translate(actionID string, input map[string]any) map[string]any {
	r.mu.RLock()
	nameToVar, hasNames := r.gen.nameToVar[actionID]
	pathToVar, hasPaths := r.gen.pathToVar[actionID]
	r.mu.RUnlock()

	out := make(map[string]any, len(input))
	if !hasNames && !hasPaths {
		r.logger.Warn("no mapping tables for action, passing input through",
			slog.String("action_id", actionID))
		for k, v := range input {
			out[k] = v
		}
		return out
	}

	for k, v := range input {
		if _, reserved := reservedKeys[k]; reserved {
			out[k] = v
			continue
		}
		if strings.HasSuffix(k, PathSuffix) {
			if mapped, ok := pathToVar[k]; ok {
				out[mapped] = v
				continue
			}
		}
		if mapped, ok := nameToVar[k]; ok {
			out[mapped] = v
			continue
		}
		r.logger.Warn("unmapped parameter passed through",
			slog.String("action_id", actionID),
			slog.String("key", k))
		out[k] = v
	}
	return out
}
