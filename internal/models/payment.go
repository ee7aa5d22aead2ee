package models

import "time"

// Статусы платежей.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment — платёж пользователя.
type Payment struct {
	ID            string     `json:"_id"`
	UserID        UserRef    `json:"userId"`
	PackageID     string     `json:"packageId,omitempty"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// PaymentsPage — данные ответа GET payments.
type PaymentsPage struct {
	Payments   []Payment       `json:"payments"`
	Summary    []StatusSummary `json:"summary,omitempty"`
	Pagination Pagination      `json:"pagination"`
}

// Page реализует Paged.
func (p PaymentsPage) Page() Pagination { return p.Pagination }

// StatusUpdate — тело PATCH .../{id}/status для платежей и транзакций.
type StatusUpdate struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// PaymentTotals — агрегаты платежей за период.
type PaymentTotals struct {
	TotalPayments     int     `json:"totalPayments"`
	TotalRevenue      float64 `json:"totalRevenue"`
	CompletedPayments int     `json:"completedPayments"`
	PendingPayments   int     `json:"pendingPayments"`
	FailedPayments    int     `json:"failedPayments"`
}

// DailyRevenue — точка графика выручки по дням.
type DailyRevenue struct {
	Day     string  `json:"_id"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// PaymentStats — данные ответа GET payments/stats.
type PaymentStats struct {
	Overall      PaymentTotals  `json:"overall"`
	Period       PaymentTotals  `json:"period"`
	DailyRevenue []DailyRevenue `json:"dailyRevenue,omitempty"`
}
