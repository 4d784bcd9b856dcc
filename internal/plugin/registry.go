package plugin

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicateExtension возвращается при повторной регистрации ключа с DuplicateError
var ErrDuplicateExtension = errors.New("extension already registered")

// DuplicatePolicy определяет поведение при повторной регистрации ключа
type DuplicatePolicy int

const (
	// DuplicateError - повторная регистрация возвращает ErrDuplicateExtension
	DuplicateError DuplicatePolicy = iota
	// DuplicateReplace - повторная регистрация заменяет компонент
	DuplicateReplace
)

// Registry - таблица расширений, через которую опциональные компоненты
// становятся доступны остальному приложению.
type Registry struct {
	mu      sync.RWMutex
	policy  DuplicatePolicy
	entries map[string]any
}

func NewRegistry(policy DuplicatePolicy) *Registry {
	return &Registry{
		policy:  policy,
		entries: make(map[string]any),
	}
}

// Register добавляет компонент под именем name
func (r *Registry) Register(name string, component any) error {
	if name == "" {
		return errors.New("extension name is required")
	}
	if component == nil {
		return fmt.Errorf("extension %q: component is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists && r.policy == DuplicateError {
		return fmt.Errorf("%w: %s", ErrDuplicateExtension, name)
	}
	r.entries[name] = component
	return nil
}

// Get возвращает компонент по имени
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	component, ok := r.entries[name]
	return component, ok
}

// Names возвращает отсортированные имена зарегистрированных компонентов
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) copyEntries() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]any, len(r.entries))
	for name, component := range r.entries {
		result[name] = component
	}
	return result
}
