package dto

// LandingResponse represents the public landing page aggregates: overall counts
// and a small random sample of items.
type LandingResponse struct {
	TotalReports  int64          `json:"totalReports"`
	FoundCount    int64          `json:"foundCount"`
	ReturnedCount int64          `json:"returnedCount"`
	Sample        []ItemResponse `json:"sample"`
}

// StudentDashboardResponse represents the per-user dashboard
type StudentDashboardResponse struct {
	ActiveReports   int64          `json:"activeReports"`
	ItemsFound      int64          `json:"itemsFound"`
	PendingClaims   int64          `json:"pendingClaims"`
	ResolvedCases   int64          `json:"resolvedCases"`
	RecentlyFound   []ItemResponse `json:"recentlyFound"`
	UserRecentItems []ItemResponse `json:"userRecentItems"`
}

// MyReportsResponse represents the per-user report summary: totals, a breakdown
// by status, and the user's full item list. The list is bounded per user, so it
// is not paginated.
type MyReportsResponse struct {
	TotalReports  int64            `json:"totalReports"`
	CountByStatus map[string]int64 `json:"countByStatus"`
	Items         []ItemResponse   `json:"items"`
	Categories    []string         `json:"categories"`
}

// AdminDashboardResponse represents the administrator dashboard
type AdminDashboardResponse struct {
	TotalReports    int64          `json:"totalReports"`
	LostCount       int64          `json:"lostCount"`
	FoundCount      int64          `json:"foundCount"`
	ReturnedCount   int64          `json:"returnedCount"`
	UnverifiedItems []ItemResponse `json:"unverifiedItems"`
}
