package pages

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/query"
)

// Фильтры списка пользователей.
const (
	FilterRole       = "role"
	FilterIsActive   = "isActive"
	FilterIsVerified = "isVerified"
)

// UsersSchema — таблица фильтров списка пользователей.
func UsersSchema() query.Schema {
	return query.Base(10, "createdAt", []string{"createdAt", "lastLogin"},
		query.Field{Key: query.Search},
		query.Field{Key: FilterRole, Default: query.All, Rule: "oneof=all user admin"},
		query.Field{Key: FilterIsActive, Default: query.All, Rule: "oneof=all true false"},
		query.Field{Key: FilterIsVerified, Default: query.All, Rule: "oneof=all true false"},
	)
}

// Users — страница списка пользователей.
type Users struct {
	*ListPage[models.UsersPage]
	validate *validator.Validate
}

// NewUsers создаёт страницу пользователей.
func NewUsers(log *slog.Logger, client *apiclient.Client, notify Notifier) *Users {
	return &Users{
		ListPage: newListPage[models.UsersPage](log, client, "users", UsersSchema(), notify),
		validate: validator.New(),
	}
}

// SetActive включает или отключает учётную запись.
func (u *Users) SetActive(ctx context.Context, userID string, active bool) error {
	done := "User deactivated"
	if active {
		done = "User activated"
	}
	return mutateJSON(ctx, u.ListPage, http.MethodPatch, "users/"+userID+"/status",
		map[string]bool{"isActive": active}, done, "Status update failed")
}

// SetRole меняет роль пользователя.
func (u *Users) SetRole(ctx context.Context, userID, role string) error {
	if err := u.validate.Var(role, "oneof=user admin"); err != nil {
		return fmt.Errorf("%w: role=%q", query.ErrInvalidValue, role)
	}
	return mutateJSON(ctx, u.ListPage, http.MethodPatch, "users/"+userID+"/role",
		map[string]string{"role": role}, "Role updated: "+role, "Role update failed")
}

// Delete удаляет пользователя и связанные с ним данные.
func (u *Users) Delete(ctx context.Context, userID string) error {
	return u.mutate(ctx, "users/"+userID, apiclient.Options{Method: http.MethodDelete},
		"User deleted", "User delete failed")
}

// FilterBool переводит значение булева фильтра в строку фильтра.
func FilterBool(v *bool) string {
	if v == nil {
		return query.All
	}
	return strconv.FormatBool(*v)
}

// UserDetail — карточка пользователя с его платежами.
type UserDetail = Single[models.UserDetail]

// NewUserDetail создаёт карточку пользователя userID.
func NewUserDetail(log *slog.Logger, client *apiclient.Client, userID string) *UserDetail {
	return newSingle[models.UserDetail](log, client, "user-detail", func() string { return "users/" + userID })
}
