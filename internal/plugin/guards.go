package plugin

import (
	"sort"
	"sync"

	"github.com/bagdasarian/group-managers/internal/domain"
)

// RoutePeople - ключ раздела администрирования пользователей и групп
const RoutePeople = "people"

// Guard решает, доступен ли раздел навигации пользователю
type Guard func(user *domain.User) bool

// NavGuards - таблица проверок доступа к разделам навигации
type NavGuards struct {
	mu     sync.RWMutex
	guards map[string]Guard
}

func NewNavGuards(defaults map[string]Guard) *NavGuards {
	guards := make(map[string]Guard, len(defaults))
	for route, guard := range defaults {
		guards[route] = guard
	}
	return &NavGuards{guards: guards}
}

// DefaultNavGuards - проверки по умолчанию: раздел people закрыт для всех,
// кроме суперпользователей, которые проходят до проверки.
func DefaultNavGuards() map[string]Guard {
	return map[string]Guard{
		RoutePeople: func(*domain.User) bool { return false },
	}
}

// Set заменяет проверку для раздела route
func (g *NavGuards) Set(route string, guard Guard) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.guards[route] = guard
}

func (g *NavGuards) Get(route string) (Guard, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	guard, ok := g.guards[route]
	return guard, ok
}

// Allow вычисляет проверку раздела. Раздел без проверки закрыт.
func (g *NavGuards) Allow(route string, user *domain.User) bool {
	guard, ok := g.Get(route)
	if !ok || guard == nil {
		return false
	}
	return guard(user)
}

// Routes возвращает отсортированные ключи разделов
func (g *NavGuards) Routes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	routes := make([]string, 0, len(g.guards))
	for route := range g.guards {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	return routes
}

func (g *NavGuards) copyGuards() map[string]Guard {
	g.mu.RLock()
	defer g.mu.RUnlock()

	result := make(map[string]Guard, len(g.guards))
	for route, guard := range g.guards {
		result[route] = guard
	}
	return result
}
