package domain

import "time"

type User struct {
	ID          int
	Email       string
	FirstName   string
	LastName    string
	IsSuperuser bool
	Permissions *UserPermissions
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type UserPermissions struct {
	IsGroupManager *bool
}
