package features

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/bagdasarian/group-managers/internal/config"
	"gopkg.in/yaml.v3"
)

// Feature - известная премиум-функция
type Feature struct {
	Name        string
	Description string
}

var (
	// AdvancedPermissions открывает роль менеджера группы
	AdvancedPermissions = Feature{
		Name:        "advanced_permissions",
		Description: "Group managers and per-group people administration",
	}
)

var allFeatures = []Feature{
	AdvancedPermissions,
}

// IsKnownFeature возвращает true, если функция зарегистрирована
func IsKnownFeature(name string) bool {
	for _, f := range allFeatures {
		if f.Name == name {
			return true
		}
	}
	return false
}

// File - формат YAML-файла с премиум-функциями
type File struct {
	PremiumFeatures []string        `yaml:"premium_features"`
	Flags           map[string]bool `yaml:"flags"`
}

// Manager хранит состояние премиум-функций.
// Приоритет: переопределение > окружение > файл.
type Manager struct {
	mu        sync.RWMutex
	enabled   map[string]bool
	fromFile  map[string]bool
	overrides map[string]bool
}

func NewManager(cfg config.FeaturesConfig) *Manager {
	m := &Manager{
		enabled:   make(map[string]bool, len(cfg.PremiumFeatures)),
		fromFile:  make(map[string]bool),
		overrides: make(map[string]bool),
	}
	for _, name := range cfg.PremiumFeatures {
		m.enabled[name] = true
	}
	return m
}

// LoadFile читает YAML-файл с функциями. Пустой путь - не ошибка.
func (m *Manager) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read features file: %w", err)
	}

	return m.LoadYAML(data)
}

// LoadYAML разбирает содержимое файла функций
func (m *Manager) LoadYAML(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse features file: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.fromFile = make(map[string]bool, len(f.PremiumFeatures)+len(f.Flags))
	for _, name := range f.PremiumFeatures {
		m.fromFile[name] = true
	}
	for name, enabled := range f.Flags {
		m.fromFile[name] = enabled
	}
	return nil
}

// SetOverride явно включает или выключает функцию
func (m *Manager) SetOverride(name string, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[name] = enabled
}

// HasPremiumFeature сообщает, доступна ли премиум-функция
func (m *Manager) HasPremiumFeature(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hasLocked(name)
}

func (m *Manager) hasLocked(name string) bool {
	if enabled, ok := m.overrides[name]; ok {
		return enabled
	}
	if m.enabled[name] {
		return true
	}
	return m.fromFile[name]
}

// Enabled возвращает отсортированный список включенных функций
func (m *Manager) Enabled() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, source := range []map[string]bool{m.enabled, m.fromFile, m.overrides} {
		for name := range source {
			seen[name] = struct{}{}
		}
	}

	result := make([]string, 0, len(seen))
	for name := range seen {
		if m.hasLocked(name) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
