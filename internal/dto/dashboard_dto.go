package dto

// DashboardResponse carries the count totals shown on the dashboard.
type DashboardResponse struct {
	TotalPersonal     int64 `json:"total_personal"`
	TotalObras        int64 `json:"total_obras"`
	TotalAsignaciones int64 `json:"total_asignaciones"`
}
