package moderators

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/features"
	"github.com/bagdasarian/group-managers/internal/plugin"
)

// Ключи компонентов в реестре расширений
const (
	UserTypeCellKey   = "UserTypeCell"
	UserTypeToggleKey = "UserTypeToggle"
)

// UserTypeCellFunc - сигнатура компонента UserTypeCell в реестре
type UserTypeCellFunc func(membership domain.Member, onMembershipUpdate func(domain.Member)) UserTypeCell

// UserTypeToggleFunc - сигнатура компонента UserTypeToggle в реестре
type UserTypeToggleFunc func(isManager bool, onChange func(bool)) UserTypeToggle

// FeatureChecker отвечает на вопрос о доступности премиум-функции
type FeatureChecker interface {
	HasPremiumFeature(name string) bool
}

type Config struct {
	Features FeatureChecker
	Registry *plugin.Registry
	Guards   *plugin.NavGuards
	Logger   *slog.Logger
}

// InitializeExtensions устанавливает расширение, если включена функция
// advanced_permissions. Без неё реестр и проверки не меняются.
// Повторный вызов подчиняется DuplicatePolicy реестра.
func InitializeExtensions(cfg Config) (plugin.Snapshot, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Features == nil || !cfg.Features.HasPremiumFeature(features.AdvancedPermissions.Name) {
		logger.Info("group managers disabled", "feature", features.AdvancedPermissions.Name)
		return plugin.TakeSnapshot(cfg.Registry, cfg.Guards), nil
	}

	if cfg.Registry == nil || cfg.Guards == nil {
		return plugin.Snapshot{}, errors.New("group managers: registry and guards are required")
	}

	if err := cfg.Registry.Register(UserTypeCellKey, UserTypeCellFunc(NewUserTypeCell)); err != nil {
		return plugin.Snapshot{}, fmt.Errorf("group managers: %w", err)
	}
	if err := cfg.Registry.Register(UserTypeToggleKey, UserTypeToggleFunc(NewUserTypeToggle)); err != nil {
		return plugin.Snapshot{}, fmt.Errorf("group managers: %w", err)
	}

	cfg.Guards.Set(plugin.RoutePeople, CanAccessPeople)

	logger.Info("group managers enabled",
		"extensions", []string{UserTypeCellKey, UserTypeToggleKey},
		"route", plugin.RoutePeople,
	)

	return plugin.TakeSnapshot(cfg.Registry, cfg.Guards, plugin.RoutePeople), nil
}

// LookupUserTypeCell достает UserTypeCell из реестра
func LookupUserTypeCell(registry *plugin.Registry) (UserTypeCellFunc, bool) {
	if registry == nil {
		return nil, false
	}
	component, ok := registry.Get(UserTypeCellKey)
	if !ok {
		return nil, false
	}
	cell, ok := component.(UserTypeCellFunc)
	return cell, ok
}

// LookupUserTypeToggle достает UserTypeToggle из реестра
func LookupUserTypeToggle(registry *plugin.Registry) (UserTypeToggleFunc, bool) {
	if registry == nil {
		return nil, false
	}
	component, ok := registry.Get(UserTypeToggleKey)
	if !ok {
		return nil, false
	}
	toggle, ok := component.(UserTypeToggleFunc)
	return toggle, ok
}
