package orchestration

import (
	"fmt"
	"slices"
	"sort"

	apperrors "github.com/agbru/ultranum/internal/errors"
)

// extraEvaluators holds backends registered by build-tagged files.
var extraEvaluators []Evaluator

// Registry maps backend names to evaluators.
type Registry struct {
	evaluators map[string]Evaluator
}

// NewRegistry builds a registry from evaluators. Later entries replace
// earlier ones with the same name.
func NewRegistry(evaluators ...Evaluator) *Registry {
	r := &Registry{evaluators: make(map[string]Evaluator, len(evaluators))}
	for _, e := range evaluators {
		r.evaluators[e.Name()] = e
	}
	return r
}

// DefaultRegistry holds every backend compiled into the binary.
func DefaultRegistry() *Registry {
	evaluators := []Evaluator{
		NewKernelEvaluator(),
		NewWordReferenceEvaluator(),
		ReferenceEvaluator{},
		Uint256Evaluator{},
	}
	return NewRegistry(append(evaluators, extraEvaluators...)...)
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.evaluators))
	for name := range r.evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the evaluator registered under name.
func (r *Registry) Get(name string) (Evaluator, bool) {
	e, ok := r.evaluators[name]
	return e, ok
}

// Select resolves a backend name for req. "all" returns every backend that
// supports req, in name order. A named backend that cannot handle req is an
// error.
func (r *Registry) Select(name string, req Request) ([]Evaluator, error) {
	if name == "all" {
		var selected []Evaluator
		for _, n := range r.List() {
			e := r.evaluators[n]
			if supports(e, req) {
				selected = append(selected, e)
			}
		}
		return selected, nil
	}
	e, ok := r.evaluators[name]
	if !ok {
		return nil, apperrors.ValidationError{
			Field:   "backend",
			Message: fmt.Sprintf("unknown backend %q (available: %v)", name, slices.Concat([]string{"all"}, r.List())),
		}
	}
	if !supports(e, req) {
		return nil, apperrors.ValidationError{
			Field:   "backend",
			Message: fmt.Sprintf("%s: %v", name, ErrUnsupportedWindow),
		}
	}
	return []Evaluator{e}, nil
}

func supports(e Evaluator, req Request) bool {
	l, ok := e.(WindowLimiter)
	return !ok || l.Supports(req)
}
