package causalgraph

import (
	"sync"

	"github.com/google/uuid"

	"github.com/planopt/numheur/task"
)

// cache is the process-wide "one causal graph per task" cache: causal
// graphs are cached globally, keyed by a task identity token, and entries
// live until process exit unless explicitly forgotten. Guarded by a
// single sync.RWMutex, the same granularity lvlath/core.Graph uses to
// protect its vertex/edge maps.
//
// The original never frees its cache entries either; we keep the same
// process-wide lifetime here (acceptable for a batch tool) but expose
// Forget so a long-lived host process can opt into a fix the original
// never made.
var (
	cacheMu sync.RWMutex
	cache   = map[uuid.UUID]*Graph{}
)

// Identity is an opaque, stable identity token for a task, used as the
// causal-graph cache key instead of a raw pointer so cache keys remain
// stable and debuggable across task re-construction in tests.
type Identity = uuid.UUID

// NewIdentity mints a fresh identity token for a task the caller is about
// to normalize. Callers that need a stable identity across repeated
// lookups should mint it once and hold onto it alongside the *task.Task.
func NewIdentity() Identity { return uuid.New() }

// Get retrieves or builds the causal graph for the task identified by id,
// guaranteeing at most one construction per identity.
func Get(id Identity, t *task.Task) *Graph {
	cacheMu.RLock()
	g, ok := cache[id]
	cacheMu.RUnlock()
	if ok {
		return g
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if g, ok := cache[id]; ok {
		return g
	}
	g = Build(t)
	cache[id] = g
	return g
}

// Forget evicts a task's causal graph from the process-wide cache. Not
// part of the original design; provided so long-lived hosts can bound
// cache growth, as noted on the cache above.
func Forget(id Identity) {
	cacheMu.Lock()
	delete(cache, id)
	cacheMu.Unlock()
}
