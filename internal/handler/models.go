package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PermissionsResponse struct {
	IsGroupManager *bool `json:"is_group_manager,omitempty"`
}

type UserResponse struct {
	ID          int                  `json:"id"`
	Email       string               `json:"email"`
	FirstName   string               `json:"first_name"`
	LastName    string               `json:"last_name"`
	IsSuperuser bool                 `json:"is_superuser"`
	Permissions *PermissionsResponse `json:"permissions,omitempty"`
}

type MemberResponse struct {
	UserID         int    `json:"user_id"`
	MembershipID   int    `json:"membership_id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	IsGroupManager *bool  `json:"is_group_manager,omitempty"`
	UserType       string `json:"user_type,omitempty"`
}

type GroupSummaryResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}

type GroupResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	MemberCount int              `json:"member_count"`
	Members     []MemberResponse `json:"members"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type AddMemberRequest struct {
	GroupID        int   `json:"group_id"`
	UserID         int   `json:"user_id"`
	IsGroupManager *bool `json:"is_group_manager"`
}

type UpdateMembershipRequest struct {
	IsGroupManager *bool `json:"is_group_manager"`
}

type GroupStatResponse struct {
	GroupID      int    `json:"group_id"`
	GroupName    string `json:"group_name"`
	MemberCount  int    `json:"member_count"`
	ManagerCount int    `json:"manager_count"`
}

type StatsResponse struct {
	Groups []GroupStatResponse `json:"groups"`
}
