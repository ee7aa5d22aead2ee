package pages

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/query"
)

// FilterPeriod — параметр периода статистики в днях.
const FilterPeriod = "period"

func periodSchema() query.Schema {
	return query.Schema{{Key: FilterPeriod, Default: "30", Keep: true, Rule: "oneof=7 30 90 365"}}
}

// Stats — страница статистики ресурса за период (7, 30, 90 или 365 дней).
type Stats[D any] struct {
	*Single[D]
	filters *query.State
}

func newStats[D any](log *slog.Logger, client *apiclient.Client, resource string) *Stats[D] {
	s := &Stats[D]{filters: query.NewState(periodSchema())}
	s.Single = newSingle[D](log, client, resource, func() string { return s.filters.Path(resource) })
	return s
}

// NewPaymentStats создаёт страницу аналитики платежей (payments/stats).
func NewPaymentStats(log *slog.Logger, client *apiclient.Client) *Stats[models.PaymentStats] {
	return newStats[models.PaymentStats](log, client, "payments/stats")
}

// NewTransactionStats создаёт страницу статистики транзакций (transactions/stats).
func NewTransactionStats(log *slog.Logger, client *apiclient.Client) *Stats[models.TransactionStats] {
	return newStats[models.TransactionStats](log, client, "transactions/stats")
}

// Period возвращает выбранный период.
func (s *Stats[D]) Period() string { return s.filters.Get(FilterPeriod) }

// SetPeriod меняет период и перезагружает статистику.
func (s *Stats[D]) SetPeriod(ctx context.Context, period string) error {
	if err := s.filters.Set(FilterPeriod, period); err != nil {
		return err
	}
	return s.Load(ctx)
}
