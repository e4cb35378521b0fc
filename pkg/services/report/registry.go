package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/chapman178/om-Aviary/pkg/services/problem"
)

// Generator produces one report from a solved problem.
type Generator func(ctx context.Context, p problem.Problem) error

// Entry describes a registered report generator.
type Entry struct {
	Name string
	Desc string
}

// Registry holds the report generators hooked to run after the optimization
// driver completes. Generators run in registration order.
type Registry interface {
	// Register adds a named generator. Names must be unique and non-empty.
	Register(name, desc string, gen Generator) error
	// RunAll executes every registered generator against the solved problem.
	RunAll(ctx context.Context, p problem.Problem) error
	// List returns the registered entries in registration order.
	List() []Entry
}

type registry struct {
	mu         sync.RWMutex
	order      []string
	generators map[string]Generator
	entries    map[string]Entry
}

func NewRegistry() Registry {
	return &registry{
		generators: make(map[string]Generator),
		entries:    make(map[string]Entry),
	}
}

func (r *registry) Register(name, desc string, gen Generator) error {
	if name == "" {
		return fmt.Errorf("report name cannot be empty")
	}
	if gen == nil {
		return fmt.Errorf("generator cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("report %q is already registered", name)
	}

	r.order = append(r.order, name)
	r.generators[name] = gen
	r.entries[name] = Entry{Name: name, Desc: desc}
	return nil
}

func (r *registry) RunAll(ctx context.Context, p problem.Problem) error {
	r.mu.RLock()
	order := append([]string{}, r.order...)
	generators := make(map[string]Generator, len(r.generators))
	for name, gen := range r.generators {
		generators[name] = gen
	}
	r.mu.RUnlock()

	for _, name := range order {
		if err := generators[name](ctx, p); err != nil {
			return fmt.Errorf("report %q: %w", name, err)
		}
	}
	return nil
}

func (r *registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, r.entries[name])
	}
	return entries
}

// RegisterDefaults hooks the stock reports: the per-subsystem fan-out and the
// mission summary.
func RegisterDefaults(r Registry, settings MissionSettings) error {
	if err := r.Register("subsystems", "per-subsystem reports from the solved problem", SubsystemReports); err != nil {
		return err
	}
	return r.Register("mission", "mission summary for the solved trajectory", func(ctx context.Context, p problem.Problem) error {
		return MissionReport(ctx, p, settings)
	})
}
