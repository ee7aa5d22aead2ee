package models

import "time"

// Статусы транзакций.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionCancelled = "cancelled"
)

// Transaction — банковская транзакция оплаты пакета.
type Transaction struct {
	ID              string     `json:"_id"`
	TransactionCode string     `json:"transactionCode,omitempty"`
	UserID          UserRef    `json:"userId"`
	Email           string     `json:"email,omitempty"`
	PackageID       string     `json:"packageId,omitempty"`
	Amount          float64    `json:"amount"`
	Duration        string     `json:"duration,omitempty"`
	DurationMonths  int        `json:"durationMonths,omitempty"`
	BankName        string     `json:"bankName,omitempty"`
	BankAccount     string     `json:"bankAccount,omitempty"`
	Status          string     `json:"status,omitempty"`
	QRCodeURL       string     `json:"qrCodeUrl,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	ExpirationDate  *time.Time `json:"expirationDate,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// ContactEmail возвращает email транзакции или email связанного пользователя.
func (t Transaction) ContactEmail() string {
	if t.Email != "" {
		return t.Email
	}
	return t.UserID.Email
}

// TransactionsPage — данные ответа GET transactions.
type TransactionsPage struct {
	Transactions []Transaction   `json:"transactions"`
	Summary      []StatusSummary `json:"summary,omitempty"`
	Pagination   Pagination      `json:"pagination"`
}

// Page реализует Paged.
func (p TransactionsPage) Page() Pagination { return p.Pagination }

// TransactionDetail — данные ответа GET transactions/{id}.
type TransactionDetail struct {
	Transaction    *Transaction `json:"transaction,omitempty"`
	RelatedPayment *Payment     `json:"relatedPayment,omitempty"`
}

// TransactionTotals — агрегаты транзакций за период.
type TransactionTotals struct {
	TotalTransactions     int     `json:"totalTransactions"`
	TotalAmount           float64 `json:"totalAmount"`
	CompletedTransactions int     `json:"completedTransactions"`
	PendingTransactions   int     `json:"pendingTransactions"`
	FailedTransactions    int     `json:"failedTransactions"`
	CancelledTransactions int     `json:"cancelledTransactions"`
}

// TransactionStats — данные ответа GET transactions/stats.
type TransactionStats struct {
	Overall      TransactionTotals `json:"overall"`
	Period       TransactionTotals `json:"period"`
	DailyRevenue []DailyRevenue    `json:"dailyRevenue,omitempty"`
}
