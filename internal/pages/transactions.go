package pages

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/query"
)

// TransactionsSchema — таблица фильтров списка транзакций.
func TransactionsSchema() query.Schema {
	return query.Base(10, "createdAt", []string{"createdAt", "amount"},
		query.Field{Key: query.Status, Default: query.All, Rule: "oneof=all pending completed failed cancelled"},
		query.Field{Key: query.UserID},
		query.Field{Key: query.PackageID},
		query.Field{Key: query.Search},
		query.Field{Key: query.DateFrom, Rule: dateRule},
		query.Field{Key: query.DateTo, Rule: dateRule},
	)
}

// Transactions — страница списка транзакций.
type Transactions struct {
	*ListPage[models.TransactionsPage]
}

// NewTransactions создаёт страницу транзакций.
func NewTransactions(log *slog.Logger, client *apiclient.Client, notify Notifier) *Transactions {
	return &Transactions{ListPage: newListPage[models.TransactionsPage](log, client, "transactions", TransactionsSchema(), notify)}
}

// UpdateStatus меняет статус транзакции.
func (t *Transactions) UpdateStatus(ctx context.Context, transactionID, status, notes string) error {
	if err := t.filters.Schema().Check(query.Status, status); err != nil || status == "" || status == query.All {
		return invalidStatus(status)
	}
	return mutateJSON(ctx, t.ListPage, http.MethodPatch, "transactions/"+transactionID+"/status",
		models.StatusUpdate{Status: status, Notes: notes}, "Transaction status updated", "Status update failed")
}

// Delete удаляет незавершённую транзакцию.
func (t *Transactions) Delete(ctx context.Context, transactionID string) error {
	return t.mutate(ctx, "transactions/"+transactionID, apiclient.Options{Method: http.MethodDelete},
		"Transaction deleted", "Transaction delete failed")
}

// TransactionDetail — карточка транзакции со связанным платежом.
type TransactionDetail = Single[models.TransactionDetail]

// NewTransactionDetail создаёт карточку транзакции transactionID.
func NewTransactionDetail(log *slog.Logger, client *apiclient.Client, transactionID string) *TransactionDetail {
	return newSingle[models.TransactionDetail](log, client, "transaction-detail", func() string { return "transactions/" + transactionID })
}

func invalidStatus(status string) error {
	return fmt.Errorf("%w: status=%q", query.ErrInvalidValue, status)
}
