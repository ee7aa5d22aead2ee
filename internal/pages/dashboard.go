package pages

import (
	"log/slog"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/models"
)

// Dashboard — главная страница: счётчики и последние события.
type Dashboard = Single[models.DashboardStats]

// NewDashboard создаёт страницу dashboard/stats области admin.
func NewDashboard(log *slog.Logger, client *apiclient.Client) *Dashboard {
	return newSingle[models.DashboardStats](log, client, "dashboard", func() string { return "dashboard/stats" })
}

// Profile — профиль текущего администратора.
type Profile = Single[models.Profile]

// NewProfile создаёт страницу профиля.
func NewProfile(log *slog.Logger, client *apiclient.Client) *Profile {
	return newSingle[models.Profile](log, client, "profile", func() string { return "profile" })
}
