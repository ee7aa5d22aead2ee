package pages

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/query"
)

// Пресеты периода аналитики автоматизации.
const (
	PeriodCurrentMonth = "current-month"
	PeriodCustom       = "custom"
)

const dateLayout = "2006-01-02"

// PeriodQuery строит строку запроса периода. Для custom с обеими датами
// передаются startDate/endDate, для current-month — границы текущего
// календарного месяца, иначе period=<period>.
func PeriodQuery(period, start, end string, now time.Time) string {
	switch {
	case period == PeriodCustom && start != "" && end != "":
		return "startDate=" + url.QueryEscape(start) + "&endDate=" + url.QueryEscape(end)
	case period == PeriodCurrentMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
		return "startDate=" + first.Format(dateLayout) + "&endDate=" + last.Format(dateLayout)
	default:
		return "period=" + url.QueryEscape(period)
	}
}

// AutomationStats — страница аналитики автоматизации (задания или затраты).
type AutomationStats[D any] struct {
	*Single[D]
	validate *validator.Validate
	now      func() time.Time
	period   string
	start    string
	end      string
}

func newAutomationStats[D any](log *slog.Logger, client *apiclient.Client, resource string) *AutomationStats[D] {
	a := &AutomationStats[D]{
		validate: validator.New(),
		now:      time.Now,
		period:   PeriodCurrentMonth,
	}
	a.Single = newSingle[D](log, client, resource, func() string {
		return resource + "?" + PeriodQuery(a.period, a.start, a.end, a.now())
	}).requireSuccess()
	return a
}

// NewJobStats создаёт страницу статистики заданий (analytics/jobs/stats).
func NewJobStats(log *slog.Logger, client *apiclient.Client) *AutomationStats[models.JobStats] {
	return newAutomationStats[models.JobStats](log, client, "analytics/jobs/stats")
}

// NewCostStats создаёт страницу статистики затрат (analytics/costs/stats).
func NewCostStats(log *slog.Logger, client *apiclient.Client) *AutomationStats[models.CostStats] {
	return newAutomationStats[models.CostStats](log, client, "analytics/costs/stats")
}

// Period возвращает выбранный пресет периода.
func (a *AutomationStats[D]) Period() string { return a.period }

// SetPeriod выбирает пресет и перезагружает статистику.
func (a *AutomationStats[D]) SetPeriod(ctx context.Context, period string) error {
	if err := a.validate.Var(period, "oneof=current-month 7 30 90 365 custom"); err != nil {
		return fmt.Errorf("%w: period=%q", query.ErrInvalidValue, period)
	}
	a.period = period
	return a.Load(ctx)
}

// SetRange выбирает произвольный диапазон дат (YYYY-MM-DD) и перезагружает статистику.
func (a *AutomationStats[D]) SetRange(ctx context.Context, start, end string) error {
	for _, d := range []string{start, end} {
		if err := a.validate.Var(d, "required,"+dateRule); err != nil {
			return fmt.Errorf("%w: date=%q", query.ErrInvalidValue, d)
		}
	}
	a.period, a.start, a.end = PeriodCustom, start, end
	return a.Load(ctx)
}

// AutomationDashboard — дашборд области automation.
type AutomationDashboard = Single[models.AutomationDashboardStats]

// NewAutomationDashboard создаёт дашборд автоматизации.
func NewAutomationDashboard(log *slog.Logger, client *apiclient.Client) *AutomationDashboard {
	return newSingle[models.AutomationDashboardStats](log, client, "automation-dashboard", func() string { return "dashboard/stats" }).requireSuccess()
}
