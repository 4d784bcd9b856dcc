package moderators

import "github.com/bagdasarian/group-managers/internal/domain"

// CanAccessPeople открывает раздел people менеджерам групп
func CanAccessPeople(user *domain.User) bool {
	if user == nil || user.Permissions == nil || user.Permissions.IsGroupManager == nil {
		return false
	}
	return *user.Permissions.IsGroupManager
}
