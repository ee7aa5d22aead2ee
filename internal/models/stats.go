package models

import "time"

// UserCounters — счётчики пользователей на дашбордах.
type UserCounters struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	VerifiedUsers int `json:"verifiedUsers"`
	AdminUsers    int `json:"adminUsers"`
}

// PaymentCounters — счётчики платежей на дашборде.
type PaymentCounters struct {
	TotalPayments  int     `json:"totalPayments"`
	TotalRevenue   float64 `json:"totalRevenue"`
	RecentPayments int     `json:"recentPayments"`
	RecentRevenue  float64 `json:"recentRevenue"`
}

// RecentUser — недавно зарегистрированный пользователь.
type RecentUser struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// RecentActivity — последние события на дашборде.
type RecentActivity struct {
	Users    []RecentUser `json:"users,omitempty"`
	Payments []Payment    `json:"payments,omitempty"`
}

// DashboardStats — данные ответа GET dashboard/stats (admin).
type DashboardStats struct {
	Users          UserCounters    `json:"users"`
	Payments       PaymentCounters `json:"payments"`
	RecentActivity RecentActivity  `json:"recentActivity"`
}

// WorkflowCounters — счётчики сценариев автоматизации.
type WorkflowCounters struct {
	TotalWorkflows  int `json:"totalWorkflows"`
	ActiveWorkflows int `json:"activeWorkflows"`
	FailedWorkflows int `json:"failedWorkflows"`
}

// JobCounters — счётчики заданий на дашборде автоматизации.
type JobCounters struct {
	TotalJobs     int `json:"totalJobs"`
	RecentJobs    int `json:"recentJobs"`
	RecentSuccess int `json:"recentSuccess"`
}

// AutomationDashboardStats — данные ответа GET dashboard/stats (automation).
type AutomationDashboardStats struct {
	Users     UserCounters     `json:"users"`
	Workflows WorkflowCounters `json:"workflows"`
	Jobs      JobCounters      `json:"jobs"`
}

// JobTotals — агрегаты заданий за период.
type JobTotals struct {
	TotalJobs   int `json:"totalJobs"`
	SuccessJobs int `json:"successJobs"`
	FailedJobs  int `json:"failedJobs"`
	QueuedJobs  int `json:"queuedJobs"`
}

// DailyJobs — точка графика заданий по дням.
type DailyJobs struct {
	Day     string `json:"_id"`
	Count   int    `json:"count"`
	Success int    `json:"success"`
	Failed  int    `json:"failed"`
	Queued  int    `json:"queued"`
}

// JobStats — данные ответа GET analytics/jobs/stats.
type JobStats struct {
	Overall   JobTotals   `json:"overall"`
	Period    JobTotals   `json:"period"`
	DailyJobs []DailyJobs `json:"dailyJobs,omitempty"`
}

// CostTotals — агрегаты затрат на выполнение заданий.
type CostTotals struct {
	TotalCost     float64 `json:"totalCost"`
	TotalJobs     int     `json:"totalJobs"`
	AvgCostPerJob float64 `json:"avgCostPerJob"`
}

// DailyCost — точка графика затрат по дням.
type DailyCost struct {
	Day   string  `json:"_id"`
	Cost  float64 `json:"cost"`
	Count int     `json:"count"`
}

// CostStats — данные ответа GET analytics/costs/stats.
type CostStats struct {
	Overall    CostTotals  `json:"overall"`
	Period     CostTotals  `json:"period"`
	DailyCosts []DailyCost `json:"dailyCosts,omitempty"`
}
