package pages

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/query"
)

const dateRule = "datetime=2006-01-02"

// PaymentsSchema — таблица фильтров списка платежей.
func PaymentsSchema() query.Schema {
	return query.Base(10, "createdAt", []string{"createdAt", "amount"},
		query.Field{Key: query.Status, Default: query.All, Rule: "oneof=all pending completed failed refunded"},
		query.Field{Key: query.UserID},
		query.Field{Key: query.DateFrom, Rule: dateRule},
		query.Field{Key: query.DateTo, Rule: dateRule},
	)
}

// Payments — страница списка платежей.
type Payments struct {
	*ListPage[models.PaymentsPage]
}

// NewPayments создаёт страницу платежей.
func NewPayments(log *slog.Logger, client *apiclient.Client, notify Notifier) *Payments {
	return &Payments{ListPage: newListPage[models.PaymentsPage](log, client, "payments", PaymentsSchema(), notify)}
}

// UpdateStatus меняет статус платежа.
func (p *Payments) UpdateStatus(ctx context.Context, paymentID, status, notes string) error {
	if err := p.filters.Schema().Check(query.Status, status); err != nil || status == "" || status == query.All {
		return invalidStatus(status)
	}
	return mutateJSON(ctx, p.ListPage, http.MethodPatch, "payments/"+paymentID+"/status",
		models.StatusUpdate{Status: status, Notes: notes}, "Payment status updated", "Status update failed")
}
