package topicmgr

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Registry manages the collection of registered topics.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register records topic as owned by module.
func (r *Registry) Register(module string, topic Topic) error {
	if topic == nil {
		return &TopicError{Type: ErrorValidationFailed, Module: module, Message: "cannot register nil topic"}
	}
	name := topic.Name()
	if err := validate(module, topic); err != nil {
		return &TopicError{
			Type:    ErrorValidationFailed,
			Topic:   name,
			Module:  module,
			Message: "invalid topic",
			Cause:   err,
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[name]; ok {
		return &TopicError{
			Type:    ErrorDuplicateRegistration,
			Topic:   name,
			Module:  module,
			Message: fmt.Sprintf("topic %s already registered by %s", name, existing.Module),
		}
	}

	r.entries[name] = Entry{
		Name:         name,
		Module:       module,
		Description:  topic.Description(),
		RegisteredAt: time.Now(),
	}
	return nil
}

// Get retrieves a topic entry by name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// List returns every entry sorted by name.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Names returns the registered topic names, sorted.
func (r *Registry) Names() []string {
	entries := r.List()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Count returns the number of registered topics.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
