// Package model provides data transfer objects for statistics module.
package model

// MemberStatistics counts the members of a team by role.
type MemberStatistics struct {
	Total  int64 `gorm:"column:total"`
	Admins int64 `gorm:"column:admins"`
	Users  int64 `gorm:"column:users"`
}

// RequestStatistics counts the access requests of a team by status.
type RequestStatistics struct {
	Pending  int64 `gorm:"column:pending"`
	Approved int64 `gorm:"column:approved"`
	Rejected int64 `gorm:"column:rejected"`
}

// TeamStatistics represents the dashboard counters of a team.
type TeamStatistics struct {
	MembersTotal     int64 `json:"members_total"`
	Admins           int64 `json:"admins"`
	Users            int64 `json:"users"`
	RequestsPending  int64 `json:"requests_pending"`
	RequestsApproved int64 `json:"requests_approved"`
	RequestsRejected int64 `json:"requests_rejected"`
}

// TeamStatisticsResponse represents response for team statistics.
type TeamStatisticsResponse struct {
	TeamID     string         `json:"team_id"`
	Statistics TeamStatistics `json:"statistics"`
}
