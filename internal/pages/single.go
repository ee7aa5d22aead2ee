package pages

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/lib/sl"
	"github.com/magabrotheeeer/payments-admin/internal/models"
)

// ErrLoadFailed используется, когда API вернул success:false без сообщения.
var ErrLoadFailed = errors.New("failed to load data")

// Single — контроллер страницы с одним объектом данных: дашборд, профиль,
// карточка пользователя или транзакции, статистика.
type Single[D any] struct {
	view[D]
	log    *slog.Logger
	client *apiclient.Client
	path   func() string
	strict bool
}

func newSingle[D any](log *slog.Logger, client *apiclient.Client, name string, path func() string) *Single[D] {
	if log == nil {
		log = sl.Discard()
	}
	return &Single[D]{
		log:    log.With(slog.String("page", name)),
		client: client,
		path:   path,
	}
}

// requireSuccess включает проверку флага success в ответе 2xx.
func (s *Single[D]) requireSuccess() *Single[D] {
	s.strict = true
	return s
}

// Path возвращает путь текущего запроса.
func (s *Single[D]) Path() string { return s.path() }

// Load загружает данные страницы.
func (s *Single[D]) Load(ctx context.Context) error {
	const op = "pages.Single.Load"

	path := s.path()
	log := s.log.With(slog.String("op", op), slog.String("path", path))

	prev := s.begin()
	env, err := apiclient.Fetch[D](ctx, s.client, path, apiclient.Options{})
	if err == nil && s.strict && !env.Success {
		err = unsuccessful(env)
	}
	var data D
	if err == nil {
		data = env.Data
	}
	s.finish(prev, data, err)

	if err != nil {
		log.Error("failed to load page", sl.Err(err))
		return err
	}
	log.Debug("page loaded")
	return nil
}

func unsuccessful[D any](env *models.Envelope[D]) error {
	if env.Message != "" {
		return errors.New(env.Message)
	}
	return ErrLoadFailed
}
