package domain

type GroupStat struct {
	GroupID      int
	GroupName    string
	MemberCount  int
	ManagerCount int
}
