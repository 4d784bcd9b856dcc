package handler

import (
	"github.com/bagdasarian/group-managers/internal/domain"
	"github.com/bagdasarian/group-managers/internal/moderators"
)

// domainMemberToHTTP отдает роль участника только при установленной ячейке UserTypeCell
func domainMemberToHTTP(member domain.Member, cell moderators.UserTypeCellFunc) MemberResponse {
	response := MemberResponse{
		UserID:       member.UserID,
		MembershipID: member.MembershipID,
		Email:        member.Email,
		FirstName:    member.FirstName,
		LastName:     member.LastName,
	}

	if cell != nil {
		isManager := member.IsManager()
		response.IsGroupManager = &isManager
		response.UserType = cell(member, nil).Label
	}

	return response
}

func domainGroupToHTTP(group *domain.Group, cell moderators.UserTypeCellFunc) GroupResponse {
	members := make([]MemberResponse, 0, len(group.Members))
	for _, member := range group.Members {
		members = append(members, domainMemberToHTTP(member, cell))
	}

	return GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		MemberCount: group.MemberCount,
		Members:     members,
	}
}

func domainGroupsToHTTP(groups []*domain.Group) []GroupSummaryResponse {
	result := make([]GroupSummaryResponse, 0, len(groups))
	for _, group := range groups {
		result = append(result, GroupSummaryResponse{
			ID:          group.ID,
			Name:        group.Name,
			MemberCount: group.MemberCount,
		})
	}
	return result
}

func domainUserToHTTP(user *domain.User) UserResponse {
	response := UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsSuperuser: user.IsSuperuser,
	}

	if user.Permissions != nil {
		response.Permissions = &PermissionsResponse{IsGroupManager: user.Permissions.IsGroupManager}
	}

	return response
}

func domainStatsToHTTP(stats []*domain.GroupStat) StatsResponse {
	response := StatsResponse{Groups: make([]GroupStatResponse, len(stats))}
	for i, stat := range stats {
		response.Groups[i] = GroupStatResponse{
			GroupID:      stat.GroupID,
			GroupName:    stat.GroupName,
			MemberCount:  stat.MemberCount,
			ManagerCount: stat.ManagerCount,
		}
	}
	return response
}
