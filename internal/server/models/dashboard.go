package models

// DashboardStats is the headline numbers block on the dashboard.
type DashboardStats struct {
	ActiveCases    int64   `json:"active_cases"`
	PendingMotions int64   `json:"pending_motions"`
	BillableHours  float64 `json:"billable_hours"`
	HighRisks      int64   `json:"high_risks"`
	TotalRevenue   float64 `json:"total_revenue"`
	OpenTasks      int64   `json:"open_tasks"`
}

// ChartPoint is one bar of the cases-by-status chart.
type ChartPoint struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Alert is a high-priority task surfaced on the dashboard.
type Alert struct {
	ID      string  `json:"id"`
	Message string  `json:"message"`
	Detail  string  `json:"detail"`
	Time    string  `json:"time"`
	CaseID  *string `json:"case_id"`
}
