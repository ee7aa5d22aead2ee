package pages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/lib/sl"
	"github.com/magabrotheeeer/payments-admin/internal/models"
	"github.com/magabrotheeeer/payments-admin/internal/query"
)

var (
	// ErrNoNextPage возвращается Next, когда hasNext ложно.
	ErrNoNextPage = errors.New("no next page")
	// ErrNoPrevPage возвращается Prev, когда hasPrev ложно.
	ErrNoPrevPage = errors.New("no previous page")
)

// ListPage — контроллер списковой страницы ресурса с фильтрами и
// постраничной навигацией по номеру страницы.
type ListPage[D models.Paged] struct {
	view[D]
	log      *slog.Logger
	client   *apiclient.Client
	resource string
	filters  *query.State
	notify   Notifier
}

func newListPage[D models.Paged](log *slog.Logger, client *apiclient.Client, resource string, schema query.Schema, notify Notifier) *ListPage[D] {
	if log == nil {
		log = sl.Discard()
	}
	if notify == nil {
		notify = nopNotifier{}
	}
	return &ListPage[D]{
		log:      log.With(slog.String("page", resource)),
		client:   client,
		resource: resource,
		filters:  query.NewState(schema),
		notify:   notify,
	}
}

// Filters возвращает состояние фильтров страницы.
func (p *ListPage[D]) Filters() *query.State { return p.filters }

// Path возвращает путь ресурса с текущей строкой запроса.
func (p *ListPage[D]) Path() string { return p.filters.Path(p.resource) }

// Load загружает текущую страницу с текущими фильтрами.
func (p *ListPage[D]) Load(ctx context.Context) error {
	const op = "pages.ListPage.Load"

	path := p.Path()
	log := p.log.With(slog.String("op", op), slog.String("path", path))

	prev := p.begin()
	env, err := apiclient.Fetch[D](ctx, p.client, path, apiclient.Options{})
	var data D
	if err == nil {
		data = env.Data
	}
	p.finish(prev, data, err)

	if err != nil {
		log.Error("failed to load page", sl.Err(err))
		return err
	}
	page := data.Page()
	log.Debug("page loaded", slog.Int("current_page", page.CurrentPage), slog.Int("total_pages", page.TotalPages))
	return nil
}

// SetFilter меняет фильтр key (страница сбрасывается на 1) и перезагружает список.
func (p *ListPage[D]) SetFilter(ctx context.Context, key, value string) error {
	if err := p.filters.Set(key, value); err != nil {
		return err
	}
	return p.Load(ctx)
}

// SetFilters меняет несколько фильтров сразу и перезагружает список один раз.
func (p *ListPage[D]) SetFilters(ctx context.Context, changes map[string]string) error {
	if err := p.filters.SetMany(changes); err != nil {
		return err
	}
	return p.Load(ctx)
}

// SetSort меняет поле и направление сортировки.
func (p *ListPage[D]) SetSort(ctx context.Context, by, order string) error {
	return p.SetFilters(ctx, map[string]string{query.SortBy: by, query.SortOrder: order})
}

// GoTo переходит на страницу n.
func (p *ListPage[D]) GoTo(ctx context.Context, n int) error {
	if err := p.filters.SetPage(n); err != nil {
		return err
	}
	return p.Load(ctx)
}

// Pagination возвращает пагинацию последних загруженных данных.
func (p *ListPage[D]) Pagination() (models.Pagination, bool) {
	data := p.Data()
	if data == nil {
		return models.Pagination{}, false
	}
	return (*data).Page(), true
}

// CanNext сообщает, доступна ли кнопка «далее».
func (p *ListPage[D]) CanNext() bool {
	pg, ok := p.Pagination()
	return ok && pg.HasNext
}

// CanPrev сообщает, доступна ли кнопка «назад».
func (p *ListPage[D]) CanPrev() bool {
	pg, ok := p.Pagination()
	return ok && pg.HasPrev
}

// Next загружает страницу currentPage+1.
func (p *ListPage[D]) Next(ctx context.Context) error {
	pg, ok := p.Pagination()
	if !ok || !pg.HasNext {
		return ErrNoNextPage
	}
	current := pg.CurrentPage
	if current < 1 {
		current = 1
	}
	return p.GoTo(ctx, current+1)
}

// Prev загружает предыдущую страницу, но не ниже первой.
func (p *ListPage[D]) Prev(ctx context.Context) error {
	pg, ok := p.Pagination()
	if !ok || !pg.HasPrev {
		return ErrNoPrevPage
	}
	return p.GoTo(ctx, max(1, p.filters.Page()-1))
}

// mutate выполняет одно изменяющее действие. При успехе показывает
// уведомление и один раз перезагружает текущую страницу с теми же
// фильтрами; при ошибке показывает ошибку и не трогает данные.
func (p *ListPage[D]) mutate(ctx context.Context, path string, opts apiclient.Options, done, failed string) error {
	const op = "pages.ListPage.mutate"

	log := p.log.With(slog.String("op", op), slog.String("path", path), slog.String("method", opts.Method))

	if _, err := p.client.Request(ctx, path, opts); err != nil {
		log.Error("mutation failed", sl.Err(err))
		p.notify.Notify(failure(failed, err))
		return err
	}
	log.Info("mutation applied")
	p.notify.Notify(success(done))

	if err := p.Load(ctx); err != nil {
		log.Warn("reload after mutation failed", sl.Err(err))
	}
	return nil
}

func mutateJSON[D models.Paged](ctx context.Context, p *ListPage[D], method, path string, body any, done, failed string) error {
	opts, err := apiclient.JSONBody(method, body)
	if err != nil {
		return fmt.Errorf("pages.mutateJSON: %w", err)
	}
	return p.mutate(ctx, path, opts, done, failed)
}
