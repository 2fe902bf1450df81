package models

// DashboardData is the role-dependent summary from GET /dashboard.
// Fields not applicable to the caller's role are zero-valued.
type DashboardData struct {
	Balance          float64        `json:"balance"`
	ActivePlan       *Plan          `json:"activePlan,omitempty"`
	PendingBills     int            `json:"pendingBills"`
	UpcomingLeaves   int            `json:"upcomingLeaves"`
	Announcements    []Announcement `json:"announcements,omitempty"`
	TotalSubscribers int            `json:"totalSubscribers,omitempty"` // mess owners
	TotalUsers       int            `json:"totalUsers,omitempty"`       // admins
	TotalMesses      int            `json:"totalMesses,omitempty"`      // admins
}
