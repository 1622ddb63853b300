package models

// DashboardStats is a synchronous snapshot of the fleet and ledger. Every
// figure is recomputed from current contents on each call; nothing here is
// stored state.
type DashboardStats struct {
	TotalCabs         int     `json:"totalCabs"`
	ActiveBookings    int     `json:"activeBookings"`
	CompletedBookings int     `json:"completedBookings"`
	AvailableCabs     int     `json:"availableCabs"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
