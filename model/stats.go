package model

// Slice is one named bucket of a distribution.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type GrowthPoint struct {
	Month string `json:"month"`
	Users int    `json:"users"`
	Jobs  int    `json:"jobs"`
}

// Trend is a count plus its change against the previous 30 days.
type Trend struct {
	Total  int    `json:"total"`
	Change string `json:"change"`
}

type DashboardStats struct {
	Users              Trend              `json:"users"`
	Jobs               Trend              `json:"jobs"`
	Applications       Trend              `json:"applications"`
	Companies          Trend              `json:"companies"`
	UnreadMessages     int                `json:"unread_messages"`
	RecentApplications []*ApplicationView `json:"recent_applications"`
	Growth             []GrowthPoint      `json:"growth"`
	Industries         []Slice            `json:"industries"`
}

type AnalyticsStats struct {
	TotalUsers           int     `json:"total_users"`
	TotalJobs            int     `json:"total_jobs"`
	ActiveJobs           int     `json:"active_jobs"`
	TotalApplications    int     `json:"total_applications"`
	TotalCompanies       int     `json:"total_companies"`
	JobTypes             []Slice `json:"job_types"`
	ApplicationsPerMonth []Slice `json:"applications_per_month"`
	TopIndustries        []Slice `json:"top_industries"`
}
