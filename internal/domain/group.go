package domain

import "time"

type Group struct {
	ID          int
	Name        string
	MemberCount int
	Members     []Member
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Member - запись о членстве пользователя в группе.
// IsGroupManager == nil трактуется как false.
type Member struct {
	MembershipID   int
	GroupID        int
	UserID         int
	Email          string
	FirstName      string
	LastName       string
	IsGroupManager *bool
}

// IsManager возвращает значение флага менеджера с учетом значения по умолчанию
func (m Member) IsManager() bool {
	return m.IsGroupManager != nil && *m.IsGroupManager
}

// WithGroupManager возвращает копию записи с новым значением флага.
// Исходная запись и её указатели не изменяются.
func (m Member) WithGroupManager(isGroupManager bool) Member {
	updated := m
	updated.IsGroupManager = &isGroupManager
	return updated
}
