package registry

import (
	"sort"
	"sync"

	"github.com/bft-labs/framecache/internal/domain"
)

// Entry is a named frame produced by one load.
type Entry struct {
	Name  string
	Frame *domain.Frame
}

// Batch is everything one descriptor source contributes.
type Batch struct {
	Entries []Entry
	// Aliases maps alias name to canonical name.
	Aliases map[string]string
}

// ApplyResult reports what a batch did to the registry.
type ApplyResult struct {
	Added int
	// Aliases counts aliases that were registered.
	Aliases int
	// RejectedAliases lists aliases that were not registered, either
	// because their target is missing or because they collide with a
	// canonical frame name.
	RejectedAliases []string
}

// Stats is a point-in-time summary of registry contents.
type Stats struct {
	Frames   int
	Aliases  int
	Sources  int
	InUse    int
	Textures int
}

// Registry maps frame names to frames. Every exported method holds the
// registry lock for its whole duration, so each call is atomic with respect
// to the others.
type Registry struct {
	mu sync.RWMutex

	frames map[string]*domain.Frame

	aliases   map[string]string              // alias -> canonical
	aliasesOf map[string]map[string]struct{} // canonical -> aliases

	owners  map[string]string              // name -> source
	sources map[string]map[string]struct{} // source -> names it owns
	loaded  map[string]struct{}
}

// New creates an empty registry.
func New() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.frames = make(map[string]*domain.Frame)
	r.aliases = make(map[string]string)
	r.aliasesOf = make(map[string]map[string]struct{})
	r.owners = make(map[string]string)
	r.sources = make(map[string]map[string]struct{})
	r.loaded = make(map[string]struct{})
}

// Add inserts frame under name, replacing any existing entry. A frame added
// directly has no owning source. Frames without a texture are refused.
func (r *Registry) Add(name string, frame *domain.Frame) bool {
	if !usable(frame) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.putLocked(name, frame, "")
	return true
}

// Lookup returns the frame registered under name or under an alias of it.
func (r *Registry) Lookup(name string) (*domain.Frame, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.frames[name]; ok {
		return f, true
	}
	if canonical, ok := r.aliases[name]; ok {
		f, ok := r.frames[canonical]
		return f, ok
	}
	return nil, false
}

// Resolve returns the canonical name for name, which may be an alias.
func (r *Registry) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	canonical, ok := r.resolveLocked(name)
	return canonical, ok
}

// Remove deletes the frame named name, or the frame an alias named name
// points to, together with every alias of that frame. It returns the
// canonical name removed.
func (r *Registry) Remove(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	canonical, ok := r.resolveLocked(name)
	if !ok {
		return "", false
	}
	r.deleteLocked(canonical)
	return canonical, true
}

// Apply ingests a batch for sourceID. If the source is already loaded it
// returns ok=false and leaves the registry untouched.
func (r *Registry) Apply(sourceID string, batch Batch) (ApplyResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.loaded[sourceID]; ok {
		return ApplyResult{}, false
	}
	return r.applyLocked(sourceID, batch), true
}

// Replace swaps the frames owned by sourceID for batch in one step and
// marks the source loaded. It returns the names dropped because the new
// batch no longer contains them.
func (r *Registry) Replace(sourceID string, batch Batch) (ApplyResult, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keep := make(map[string]struct{}, len(batch.Entries))
	for _, e := range batch.Entries {
		keep[e.Name] = struct{}{}
	}
	var dropped []string
	for name := range r.sources[sourceID] {
		if _, ok := keep[name]; !ok {
			dropped = append(dropped, name)
		}
		r.deleteLocked(name)
	}
	sort.Strings(dropped)
	return r.applyLocked(sourceID, batch), dropped
}

func (r *Registry) applyLocked(sourceID string, batch Batch) ApplyResult {
	var res ApplyResult
	seen := make(map[string]struct{}, len(batch.Entries))
	for _, e := range batch.Entries {
		if !usable(e.Frame) {
			continue
		}
		r.putLocked(e.Name, e.Frame, sourceID)
		if _, dup := seen[e.Name]; !dup {
			seen[e.Name] = struct{}{}
			res.Added++
		}
	}

	aliases := make([]string, 0, len(batch.Aliases))
	for alias := range batch.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		canonical := batch.Aliases[alias]
		if _, isFrame := r.frames[alias]; isFrame {
			res.RejectedAliases = append(res.RejectedAliases, alias)
			continue
		}
		if _, ok := r.frames[canonical]; !ok {
			res.RejectedAliases = append(res.RejectedAliases, alias)
			continue
		}
		r.linkAliasLocked(alias, canonical)
		res.Aliases++
	}

	r.loaded[sourceID] = struct{}{}
	return res
}

// RemoveSource deletes every frame owned by sourceID and forgets that the
// source was loaded. It returns the removed names.
func (r *Registry) RemoveSource(sourceID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := sortedKeys(r.sources[sourceID])
	for _, name := range names {
		r.deleteLocked(name)
	}
	delete(r.sources, sourceID)
	delete(r.loaded, sourceID)
	return names
}

// RemoveImage deletes every frame cut from tex, whatever source produced it.
func (r *Registry) RemoveImage(tex *domain.Texture) []string {
	return r.removeWhere(func(f *domain.Frame) bool { return f.Texture() == tex })
}

// RemoveUnused deletes every frame with no external holder.
func (r *Registry) RemoveUnused() []string {
	return r.removeWhere(func(f *domain.Frame) bool { return !f.InUse() })
}

func (r *Registry) removeWhere(match func(*domain.Frame) bool) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var names []string
	for name, f := range r.frames {
		if match(f) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		r.deleteLocked(name)
	}
	return names
}

// RemoveAll clears frames, aliases, ownership and the loaded set. Frames
// already handed out stay valid but can no longer be found by name.
func (r *Registry) RemoveAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.frames)
	r.reset()
	return n
}

// IsLoaded reports whether sourceID has been loaded.
func (r *Registry) IsLoaded(sourceID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaded[sourceID]
	return ok
}

// Owner returns the source that last produced name.
func (r *Registry) Owner(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.owners[name]
	return src, ok
}

// SourceNames returns the names sourceID currently owns.
func (r *Registry) SourceNames(sourceID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.sources[sourceID])
}

// AliasesOf returns the aliases that resolve to the canonical name.
func (r *Registry) AliasesOf(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.aliasesOf[name])
}

// Len returns the number of canonical frames.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.frames)
}

// Names returns all canonical frame names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.frames))
	for name := range r.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sources returns the loaded source IDs in order.
func (r *Registry) Sources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.loaded)
}

// Stats summarizes the registry.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	textures := make(map[*domain.Texture]struct{})
	s := Stats{
		Frames:  len(r.frames),
		Aliases: len(r.aliases),
		Sources: len(r.loaded),
	}
	for _, f := range r.frames {
		if f.InUse() {
			s.InUse++
		}
		textures[f.Texture()] = struct{}{}
	}
	s.Textures = len(textures)
	return s
}

func (r *Registry) resolveLocked(name string) (string, bool) {
	if _, ok := r.frames[name]; ok {
		return name, true
	}
	if canonical, ok := r.aliases[name]; ok {
		return canonical, true
	}
	return "", false
}

// usable reports whether frame can be stored: it must exist and be bound
// to a texture.
func usable(frame *domain.Frame) bool {
	return frame != nil && frame.Texture() != nil
}

func (r *Registry) putLocked(name string, frame *domain.Frame, sourceID string) {
	r.frames[name] = frame
	// a canonical name shadows any alias of the same name
	if canonical, ok := r.aliases[name]; ok {
		r.unlinkAliasLocked(name, canonical)
	}
	r.disownLocked(name)
	if sourceID != "" {
		r.owners[name] = sourceID
		names, ok := r.sources[sourceID]
		if !ok {
			names = make(map[string]struct{})
			r.sources[sourceID] = names
		}
		names[name] = struct{}{}
	}
}

func (r *Registry) deleteLocked(name string) {
	delete(r.frames, name)
	for alias := range r.aliasesOf[name] {
		delete(r.aliases, alias)
	}
	delete(r.aliasesOf, name)
	r.disownLocked(name)
}

func (r *Registry) disownLocked(name string) {
	src, ok := r.owners[name]
	if !ok {
		return
	}
	delete(r.owners, name)
	if names := r.sources[src]; names != nil {
		delete(names, name)
		if len(names) == 0 {
			delete(r.sources, src)
		}
	}
}

func (r *Registry) linkAliasLocked(alias, canonical string) {
	if prev, ok := r.aliases[alias]; ok {
		r.unlinkAliasLocked(alias, prev)
	}
	r.aliases[alias] = canonical
	set, ok := r.aliasesOf[canonical]
	if !ok {
		set = make(map[string]struct{})
		r.aliasesOf[canonical] = set
	}
	set[alias] = struct{}{}
}

func (r *Registry) unlinkAliasLocked(alias, canonical string) {
	delete(r.aliases, alias)
	if set := r.aliasesOf[canonical]; set != nil {
		delete(set, alias)
		if len(set) == 0 {
			delete(r.aliasesOf, canonical)
		}
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
