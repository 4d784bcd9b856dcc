package moderators

import "github.com/bagdasarian/group-managers/internal/domain"

const (
	LabelManager = "Manager"
	LabelMember  = "Member"
)

// UserTypeToggle - переключатель роли без собственного состояния
type UserTypeToggle struct {
	IsManager bool
	OnChange  func(isManager bool)
}

// NewUserTypeToggle создает переключатель для текущего значения
func NewUserTypeToggle(isManager bool, onChange func(isManager bool)) UserTypeToggle {
	return UserTypeToggle{IsManager: isManager, OnChange: onChange}
}

// Change сообщает о выборе нового значения
func (t UserTypeToggle) Change(isManager bool) {
	if t.OnChange != nil {
		t.OnChange(isManager)
	}
}

// Toggle выбирает противоположную роль
func (t UserTypeToggle) Toggle() {
	t.Change(!t.IsManager)
}

// UserTypeCell - ячейка роли в строке участника группы
type UserTypeCell struct {
	Label  string
	Toggle UserTypeToggle
}

// NewUserTypeCell строит ячейку для записи membership. При смене роли
// onMembershipUpdate получает новую запись, отличающуюся только флагом.
func NewUserTypeCell(membership domain.Member, onMembershipUpdate func(domain.Member)) UserTypeCell {
	handleTypeChange := func(isGroupManager bool) {
		if onMembershipUpdate != nil {
			onMembershipUpdate(membership.WithGroupManager(isGroupManager))
		}
	}

	return UserTypeCell{
		Label:  UserTypeLabel(membership),
		Toggle: NewUserTypeToggle(membership.IsManager(), handleTypeChange),
	}
}

func UserTypeLabel(membership domain.Member) string {
	if membership.IsManager() {
		return LabelManager
	}
	return LabelMember
}
