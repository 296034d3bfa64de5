package api

import "net/url"

// UserStats summarizes the platform's user base.
type UserStats struct {
	Total              int     `json:"total"`
	Active             int     `json:"active"`
	Inactive           int     `json:"inactive"`
	Banned             int     `json:"banned"`
	RetentionRate      float64 `json:"retentionRate"`
	AvgLoginFrequency  float64 `json:"avgLoginFrequency"`
	AvgOrdersPerUser   float64 `json:"avgOrdersPerUser"`
	AvgSpendingPerUser float64 `json:"avgSpendingPerUser"`
	GrowthRate         float64 `json:"growthRate"`
}

// BusinessStats summarizes the registered businesses.
type BusinessStats struct {
	Total                 int            `json:"total"`
	Active                int            `json:"active"`
	Inactive              int            `json:"inactive"`
	Verified              int            `json:"verified"`
	Unverified            int            `json:"unverified"`
	ByCity                map[string]int `json:"byCity"`
	GrowthRate            float64        `json:"growthRate"`
	AvgResponseTime       float64        `json:"avgResponseTime"`
	AvgOrdersPerBusiness  float64        `json:"avgOrdersPerBusiness"`
	AvgRevenuePerBusiness float64        `json:"avgRevenuePerBusiness"`
}

// ContactStats summarizes the contact message queue.
type ContactStats struct {
	Total    int     `json:"total"`
	Pending  int     `json:"pending"`
	Resolved int     `json:"resolved"`
	Trend    float64 `json:"trend"`
	Status   string  `json:"status"`
}

// OrderStats summarizes marketplace orders.
type OrderStats struct {
	Total               int            `json:"total"`
	TotalCO2Saved       float64        `json:"totalCo2Saved"`
	TotalMoneySaved     float64        `json:"totalMoneySaved"`
	AvgOrderValue       float64        `json:"avgOrderValue"`
	AvgCO2SavedPerOrder float64        `json:"avgCo2SavedPerOrder"`
	GrowthRate          float64        `json:"growthRate"`
	PeakHours           map[string]int `json:"peakHours"`
	PeakDays            map[string]int `json:"peakDays"`
}

// RegistrationStats counts sign-ups per rolling window.
type RegistrationStats struct {
	Daily     int `json:"daily"`
	Weekly    int `json:"weekly"`
	Monthly   int `json:"monthly"`
	BiMonthly int `json:"biMonthly"`
}

// CategoryOrderShare ranks a category by order volume.
type CategoryOrderShare struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	OrderCount int     `json:"orderCount"`
	Percentage float64 `json:"percentage"`
}

// CategoryBusinessShare ranks a category by registered businesses.
type CategoryBusinessShare struct {
	CategoryID    string  `json:"categoryId"`
	Name          string  `json:"name"`
	BusinessCount int     `json:"businessCount"`
	Percentage    float64 `json:"percentage"`
}

// CategoryStats summarizes category popularity.
type CategoryStats struct {
	PopularByOrders     []CategoryOrderShare    `json:"popularByOrders"`
	PopularByBusinesses []CategoryBusinessShare `json:"popularByBusinesses"`
	GrowthRates         map[string]float64      `json:"growthRates"`
}

// CityStats summarizes geographic activity.
type CityStats struct {
	MostActiveByOrders []string           `json:"mostActiveByOrders"`
	MostActiveByUsers  []string           `json:"mostActiveByUsers"`
	GrowthRates        map[string]float64 `json:"growthRates"`
}

// SatisfactionStats summarizes ratings and responsiveness.
type SatisfactionStats struct {
	AvgRating          float64        `json:"avgRating"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
	AvgResponseTime    float64        `json:"avgResponseTime"`
	SatisfactionTrend  float64        `json:"satisfactionTrend"`
}

// DashboardStats is the full statistics payload for the dashboard.
type DashboardStats struct {
	Users              UserStats          `json:"users"`
	Businesses         BusinessStats      `json:"businesses"`
	Contact            ContactStats       `json:"contact"`
	Orders             OrderStats         `json:"orders"`
	Registrations      RegistrationStats  `json:"registrations"`
	Categories         CategoryStats      `json:"categories"`
	Cities             CityStats          `json:"cities"`
	Satisfaction       SatisfactionStats  `json:"satisfaction"`
	BusinessCO2Saved   map[string]float64 `json:"businessCo2Saved"`
	BusinessMoneySaved map[string]float64 `json:"businessMoneySaved"`
	UserCO2Saved       map[string]float64 `json:"userCo2Saved"`
	UserMoneySaved     map[string]float64 `json:"userMoneySaved"`
}

// ExportFormat is the statistics export encoding.
type ExportFormat string

const (
	ExportCSV   ExportFormat = "csv"
	ExportJSON  ExportFormat = "json"
	ExportExcel ExportFormat = "excel"
)

// StatsFilters bounds the statistics window.
type StatsFilters struct {
	StartDate string
	EndDate   string
}

func (f StatsFilters) query() url.Values {
	q := url.Values{}
	addString(q, "startDate", f.StartDate)
	addString(q, "endDate", f.EndDate)
	return q
}
