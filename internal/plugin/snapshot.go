package plugin

import "sort"

// Snapshot - неизменяемый срез состояния расширений после инициализации
type Snapshot struct {
	Extensions map[string]any
	Guards     map[string]Guard
	// Overridden - разделы, чьи проверки были заменены при инициализации
	Overridden []string
}

// TakeSnapshot копирует текущее состояние реестра и таблицы проверок
func TakeSnapshot(registry *Registry, guards *NavGuards, overridden ...string) Snapshot {
	snapshot := Snapshot{
		Extensions: map[string]any{},
		Guards:     map[string]Guard{},
	}
	if registry != nil {
		snapshot.Extensions = registry.copyEntries()
	}
	if guards != nil {
		snapshot.Guards = guards.copyGuards()
	}
	if len(overridden) > 0 {
		snapshot.Overridden = append([]string(nil), overridden...)
		sort.Strings(snapshot.Overridden)
	}
	return snapshot
}

func (s Snapshot) HasExtension(name string) bool {
	_, ok := s.Extensions[name]
	return ok
}

// ExtensionNames возвращает отсортированные имена расширений
func (s Snapshot) ExtensionNames() []string {
	names := make([]string, 0, len(s.Extensions))
	for name := range s.Extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
