package pages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/http/response"
	"github.com/magabrotheeeer/payments-admin/internal/lib/sl"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/navigation"
)

var (
	// ErrNoToken возвращается, если ответ на вход не содержит токена
	// или если защищённая страница открыта без сессии.
	ErrNoToken = errors.New("no token received")
	// ErrInvalidCredentials возвращается при невалидных email или пароле.
	ErrInvalidCredentials = errors.New("invalid login credentials")
)

// Login — страница входа администратора.
type Login struct {
	log      *slog.Logger
	client   *apiclient.Client
	notify   Notifier
	validate *validator.Validate
}

// NewLogin создаёт страницу входа поверх клиента области admin.
func NewLogin(log *slog.Logger, client *apiclient.Client, notify Notifier) *Login {
	if log == nil {
		log = sl.Discard()
	}
	if notify == nil {
		notify = nopNotifier{}
	}
	return &Login{
		log:      log,
		client:   client,
		notify:   notify,
		validate: validator.New(),
	}
}

// Submit выполняет вход: POST login, сохраняет data.token и переходит на дашборд.
func (l *Login) Submit(ctx context.Context, email, password string) error {
	const op = "pages.Login.Submit"

	log := l.log.With(slog.String("op", op), slog.String("email", email))

	err := l.submit(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		log.Warn("login failed", sl.Err(err))
		l.notify.Notify(Notice{Title: "Login failed", Description: describe(err), Destructive: true})
		return err
	}

	log.Info("logged in")
	l.notify.Notify(success("Logged in"))
	navigate(l.client, navigation.RouteDashboard)
	return nil
}

func (l *Login) submit(ctx context.Context, creds models.Credentials) error {
	if err := l.validate.Struct(creds); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, response.ValidationMessage(verrs))
		}
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
	}

	opts, err := apiclient.JSONBody(http.MethodPost, creds)
	if err != nil {
		return err
	}
	env, err := apiclient.Fetch[models.LoginResult](ctx, l.client, "login", opts)
	if err != nil {
		return err
	}
	if env.Data.Token == "" {
		return ErrNoToken
	}
	return l.client.Session().Set(ctx, env.Data.Token)
}

func describe(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return ErrInvalidCredentials.Error()
}

// Logout завершает сессию и возвращает на страницу входа.
func Logout(ctx context.Context, client *apiclient.Client) error {
	if err := client.Session().Clear(ctx); err != nil {
		return fmt.Errorf("pages.Logout: %w", err)
	}
	navigate(client, navigation.RouteLogin)
	return nil
}

// Guard пропускает на защищённые страницы только при наличии токена.
// Без токена клиент переходит на страницу входа.
func Guard(ctx context.Context, client *apiclient.Client) error {
	if _, ok := client.Session().Get(ctx); ok {
		return nil
	}
	navigate(client, navigation.RouteLogin)
	return ErrNoToken
}

func navigate(client *apiclient.Client, route string) {
	if nav := client.Navigator(); nav != nil {
		nav.Replace(route)
	}
}
