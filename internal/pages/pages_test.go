package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
	"github.com/magabrotheeeer/payments-admin/internal/lib/sl"
	"github.com/magabrotheeeer/payments-admin/internal/navigation"
	"github.com/magabrotheeeer/payments-admin/internal/query"
	"github.com/magabrotheeeer/payments-admin/internal/session"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type reply struct {
	status int
	body   string
}

// fakeUpstream отвечает от имени прокси и запоминает все запросы.
type fakeUpstream struct {
	server  *httptest.Server
	mu      sync.Mutex
	reqs    []recorded
	respond func(r recorded) reply
}

func newFakeUpstream(t *testing.T, respond func(r recorded) reply) *fakeUpstream {
	t.Helper()
	fu := &fakeUpstream{respond: respond}
	fu.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec := recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(b)}
		fu.mu.Lock()
		fu.reqs = append(fu.reqs, rec)
		respond := fu.respond
		fu.mu.Unlock()

		rep := respond(rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rep.status)
		_, _ = io.WriteString(w, rep.body)
	}))
	t.Cleanup(fu.server.Close)
	return fu
}

func (fu *fakeUpstream) requests() []recorded {
	fu.mu.Lock()
	defer fu.mu.Unlock()
	return append([]recorded(nil), fu.reqs...)
}

func (fu *fakeUpstream) setRespond(respond func(r recorded) reply) {
	fu.mu.Lock()
	defer fu.mu.Unlock()
	fu.respond = respond
}

type fixture struct {
	upstream *fakeUpstream
	store    *session.MemoryStore
	nav      *navigation.Recorder
	notices  []Notice
}

func (f *fixture) notifier() Notifier {
	return NotifierFunc(func(n Notice) { f.notices = append(f.notices, n) })
}

func (f *fixture) client(scope string) *apiclient.Client {
	return apiclient.New(sl.Discard(), f.upstream.server.URL, scope, f.store, f.nav, f.upstream.server.Client())
}

func newFixture(t *testing.T, respond func(r recorded) reply) *fixture {
	t.Helper()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "abc"))
	return &fixture{
		upstream: newFakeUpstream(t, respond),
		store:    store,
		nav:      navigation.NewRecorder(nil),
	}
}

func ok(body string) reply { return reply{status: http.StatusOK, body: body} }

func usersPage(current, total int) string {
	return fmt.Sprintf(`{"success":true,"data":{"users":[{"_id":"u%d","email":"u%d@example.com","role":"user","isActive":true}],`+
		`"pagination":{"currentPage":%d,"totalPages":%d,"totalUsers":%d,"hasNext":%t,"hasPrev":%t}}}`,
		current, current, current, total, total*10, current < total, current > 1)
}

func TestUsers_Pagination(t *testing.T) {
	f := newFixture(t, func(r recorded) reply {
		page := 1
		if strings.Contains(r.Query, "page=2") {
			page = 2
		}
		return ok(usersPage(page, 3))
	})
	users := NewUsers(sl.Discard(), f.client(apiclient.ScopeAdmin), nil)
	ctx := context.Background()

	require.NoError(t, users.Load(ctx))
	assert.True(t, users.CanNext())
	assert.False(t, users.CanPrev())
	assert.ErrorIs(t, users.Prev(ctx), ErrNoPrevPage)

	require.NoError(t, users.Next(ctx))

	reqs := f.upstream.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/api/proxy/admin/users", reqs[1].Path)
	assert.Equal(t, "page=2&limit=10&sortBy=createdAt&sortOrder=desc", reqs[1].Query)

	snap := users.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	require.NotNil(t, snap.Data)
	assert.Equal(t, 2, snap.Data.Pagination.CurrentPage)
	assert.Equal(t, 30, snap.Data.Pagination.TotalCount)
	assert.True(t, users.CanNext())
	assert.True(t, users.CanPrev())

	require.NoError(t, users.Prev(ctx))
	assert.Equal(t, "page=1&limit=10&sortBy=createdAt&sortOrder=desc", f.upstream.requests()[2].Query)
}

func TestUsers_FilterChangeResetsPage(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(usersPage(1, 1)) })
	users := NewUsers(sl.Discard(), f.client(apiclient.ScopeAdmin), nil)
	ctx := context.Background()

	require.NoError(t, users.GoTo(ctx, 3))
	require.NoError(t, users.SetFilter(ctx, FilterRole, "admin"))
	require.NoError(t, users.SetSort(ctx, "lastLogin", "asc"))

	reqs := f.upstream.requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "page=3&limit=10&sortBy=createdAt&sortOrder=desc", reqs[0].Query)
	assert.Equal(t, "page=1&limit=10&role=admin&sortBy=createdAt&sortOrder=desc", reqs[1].Query)
	assert.Equal(t, "page=1&limit=10&role=admin&sortBy=lastLogin&sortOrder=asc", reqs[2].Query)

	err := users.SetFilter(ctx, FilterRole, "root")
	assert.ErrorIs(t, err, query.ErrInvalidValue)
	assert.Len(t, f.upstream.requests(), 3)
}

func TestUsers_Mutations(t *testing.T) {
	f := newFixture(t, func(r recorded) reply {
		if r.Method == http.MethodGet {
			return ok(usersPage(1, 1))
		}
		return ok(`{"success":true}`)
	})
	users := NewUsers(sl.Discard(), f.client(apiclient.ScopeAdmin), f.notifier())
	ctx := context.Background()

	require.NoError(t, users.SetActive(ctx, "u1", false))
	require.NoError(t, users.SetRole(ctx, "u1", "admin"))
	require.NoError(t, users.Delete(ctx, "u1"))
	assert.ErrorIs(t, users.SetRole(ctx, "u1", "root"), query.ErrInvalidValue)

	reqs := f.upstream.requests()
	require.Len(t, reqs, 6)
	assert.Equal(t, recorded{Method: http.MethodPatch, Path: "/api/proxy/admin/users/u1/status", Body: `{"isActive":false}`}, reqs[0])
	assert.Equal(t, http.MethodGet, reqs[1].Method)
	assert.Equal(t, recorded{Method: http.MethodPatch, Path: "/api/proxy/admin/users/u1/role", Body: `{"role":"admin"}`}, reqs[2])
	assert.Equal(t, http.MethodDelete, reqs[4].Method)
	assert.Equal(t, "/api/proxy/admin/users/u1", reqs[4].Path)

	require.Len(t, f.notices, 3)
	assert.Equal(t, "User deactivated", f.notices[0].Title)
	assert.False(t, f.notices[0].Destructive)
}

func TestTransactions_UpdateStatusReloadsOnce(t *testing.T) {
	f := newFixture(t, func(r recorded) reply {
		if r.Method == http.MethodPatch {
			return ok(`{"success":true,"message":"updated"}`)
		}
		return ok(`{"success":true,"data":{"transactions":[{"_id":"t1","status":"pending"}],` +
			`"pagination":{"currentPage":1,"totalPages":1,"totalTransactions":1,"hasNext":false,"hasPrev":false}}}`)
	})
	txs := NewTransactions(sl.Discard(), f.client(apiclient.ScopeAdmin), f.notifier())
	ctx := context.Background()

	require.NoError(t, txs.SetFilter(ctx, query.Status, "pending"))
	before := f.upstream.requests()
	require.Len(t, before, 1)

	require.NoError(t, txs.UpdateStatus(ctx, "t1", "completed", "checked manually"))

	reqs := f.upstream.requests()[1:]
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPatch, reqs[0].Method)
	assert.Equal(t, "/api/proxy/admin/transactions/t1/status", reqs[0].Path)
	assert.JSONEq(t, `{"status":"completed","notes":"checked manually"}`, reqs[0].Body)

	assert.Equal(t, http.MethodGet, reqs[1].Method)
	assert.Equal(t, before[0].Query, reqs[1].Query)
	assert.Equal(t, "page=1&limit=10&status=pending&sortBy=createdAt&sortOrder=desc", reqs[1].Query)

	require.Len(t, f.notices, 1)
	assert.Equal(t, "Transaction status updated", f.notices[0].Title)
}

func TestTransactions_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(`{}`) })
	txs := NewTransactions(sl.Discard(), f.client(apiclient.ScopeAdmin), nil)

	for _, status := range []string{"all", "refunded", ""} {
		assert.ErrorIs(t, txs.UpdateStatus(context.Background(), "t1", status, ""), query.ErrInvalidValue, status)
	}
	assert.Empty(t, f.upstream.requests())
}

func TestPayments_MutationFailureKeepsData(t *testing.T) {
	f := newFixture(t, func(r recorded) reply {
		if r.Method == http.MethodPatch {
			return reply{status: http.StatusBadRequest, body: `{"success":false,"message":"Invalid status transition"}`}
		}
		return ok(`{"success":true,"data":{"payments":[{"_id":"p1","status":"pending"}],"pagination":{"currentPage":1}}}`)
	})
	payments := NewPayments(sl.Discard(), f.client(apiclient.ScopeAdmin), f.notifier())
	ctx := context.Background()

	require.NoError(t, payments.Load(ctx))
	err := payments.UpdateStatus(ctx, "p1", "refunded", "")

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid status transition", apiErr.Message)
	assert.Len(t, f.upstream.requests(), 2)
	assert.Equal(t, StatusReady, payments.Status())
	require.Len(t, f.notices, 1)
	assert.True(t, f.notices[0].Destructive)
	assert.Equal(t, "Invalid status transition", f.notices[0].Description)
}

func TestListPage_UnauthorizedLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(usersPage(1, 2)) })
	users := NewUsers(sl.Discard(), f.client(apiclient.ScopeAdmin), nil)
	ctx := context.Background()

	require.NoError(t, users.Load(ctx))
	before := users.Snapshot()

	f.upstream.setRespond(func(recorded) reply {
		return reply{status: http.StatusUnauthorized, body: `{"success":false,"message":"Token expired"}`}
	})
	err := users.Next(ctx)
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)

	after := users.Snapshot()
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.Data, after.Data)
	assert.Empty(t, after.Err)

	_, has := f.store.Get(ctx)
	assert.False(t, has)
	assert.Equal(t, navigation.RouteLogin, f.nav.Current())
}

func TestListPage_ErrorKeepsStaleData(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(usersPage(1, 1)) })
	users := NewUsers(sl.Discard(), f.client(apiclient.ScopeAdmin), nil)
	ctx := context.Background()

	require.NoError(t, users.Load(ctx))
	f.upstream.setRespond(func(recorded) reply {
		return reply{status: http.StatusInternalServerError, body: `{"success":false,"message":"Proxy request failed","error":"dial tcp: i/o timeout"}`}
	})

	err := users.Load(ctx)
	require.Error(t, err)

	snap := users.Snapshot()
	assert.Equal(t, StatusError, snap.Status)
	assert.Equal(t, "Proxy request failed", snap.Err)
	require.NotNil(t, snap.Data)
	assert.Equal(t, "u1", snap.Data.Users[0].ID)
}

func TestSingle_StatusTransitions(t *testing.T) {
	release := make(chan struct{})
	f := newFixture(t, func(recorded) reply {
		<-release
		return ok(`{"success":true,"data":{"users":{"totalUsers":5},"payments":{"totalRevenue":99.5}}}`)
	})
	dash := NewDashboard(sl.Discard(), f.client(apiclient.ScopeAdmin))
	assert.Equal(t, StatusIdle, dash.Status())

	done := make(chan error, 1)
	go func() { done <- dash.Load(context.Background()) }()

	require.Eventually(t, func() bool { return dash.Status() == StatusLoading }, time.Second, 5*time.Millisecond)
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, StatusReady, dash.Status())
	assert.Equal(t, 5, dash.Data().Users.TotalUsers)
	assert.InDelta(t, 99.5, dash.Data().Payments.TotalRevenue, 0.001)
}

func TestAutomationDashboard_SuccessFalseIsError(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(`{"success":false,"message":"Automation disabled"}`) })
	dash := NewAutomationDashboard(sl.Discard(), f.client(apiclient.ScopeAutomation))

	err := dash.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Automation disabled", dash.Err())
	assert.Equal(t, "/api/proxy/automation/dashboard/stats", f.upstream.requests()[0].Path)
}

func TestStats_SetPeriod(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(`{"success":true,"data":{"overall":{"totalRevenue":10}}}`) })
	stats := NewPaymentStats(sl.Discard(), f.client(apiclient.ScopeAdmin))
	ctx := context.Background()

	require.NoError(t, stats.Load(ctx))
	require.NoError(t, stats.SetPeriod(ctx, "90"))
	assert.ErrorIs(t, stats.SetPeriod(ctx, "14"), query.ErrInvalidValue)

	reqs := f.upstream.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "period=30", reqs[0].Query)
	assert.Equal(t, "period=90", reqs[1].Query)
	assert.Equal(t, "/api/proxy/admin/payments/stats", reqs[1].Path)
	assert.Equal(t, "90", stats.Period())
}

func TestPeriodQuery(t *testing.T) {
	now := time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period string
		start  string
		end    string
		want   string
	}{
		{name: "current month", period: PeriodCurrentMonth, want: "startDate=2024-02-01&endDate=2024-02-29"},
		{name: "preset days", period: "7", want: "period=7"},
		{name: "custom range", period: PeriodCustom, start: "2024-01-01", end: "2024-01-31", want: "startDate=2024-01-01&endDate=2024-01-31"},
		{name: "custom without end", period: PeriodCustom, start: "2024-01-01", want: "period=custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodQuery(tt.period, tt.start, tt.end, now))
		})
	}
}

func TestAutomationStats_Range(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(`{"success":true,"data":{"overall":{"totalJobs":4}}}`) })
	jobs := NewJobStats(sl.Discard(), f.client(apiclient.ScopeAutomation))
	jobs.now = func() time.Time { return time.Date(2024, time.December, 3, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	require.NoError(t, jobs.Load(ctx))
	require.NoError(t, jobs.SetPeriod(ctx, "365"))
	require.NoError(t, jobs.SetRange(ctx, "2024-03-01", "2024-03-15"))
	assert.ErrorIs(t, jobs.SetRange(ctx, "03/01/2024", "2024-03-15"), query.ErrInvalidValue)
	assert.ErrorIs(t, jobs.SetPeriod(ctx, "yesterday"), query.ErrInvalidValue)

	reqs := f.upstream.requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "/api/proxy/automation/analytics/jobs/stats", reqs[0].Path)
	assert.Equal(t, "startDate=2024-12-01&endDate=2024-12-31", reqs[0].Query)
	assert.Equal(t, "period=365", reqs[1].Query)
	assert.Equal(t, "startDate=2024-03-01&endDate=2024-03-15", reqs[2].Query)
	assert.Equal(t, 4, jobs.Data().Overall.TotalJobs)
}

func TestLogin_Submit(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(`{"success":true,"data":{"token":"abc"}}`) })
	require.NoError(t, f.store.Clear(context.Background()))
	login := NewLogin(sl.Discard(), f.client(apiclient.ScopeAdmin), f.notifier())

	require.NoError(t, login.Submit(context.Background(), "admin@example.com", "secret"))

	token, has := f.store.Get(context.Background())
	assert.True(t, has)
	assert.Equal(t, "abc", token)
	assert.Equal(t, navigation.RouteDashboard, f.nav.Current())

	reqs := f.upstream.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/proxy/admin/login", reqs[0].Path)
	assert.JSONEq(t, `{"email":"admin@example.com","password":"secret"}`, reqs[0].Body)
	require.Len(t, f.notices, 1)
	assert.Equal(t, "Logged in", f.notices[0].Title)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		reply    reply
		wantErr  error
		wantMsg  string
		requests int
	}{
		{
			name:     "missing token",
			email:    "admin@example.com",
			password: "secret",
			reply:    ok(`{"success":true,"data":{}}`),
			wantErr:  ErrNoToken,
			wantMsg:  "no token received",
			requests: 1,
		},
		{
			name:     "invalid email",
			email:    "admin",
			password: "secret",
			wantErr:  ErrInvalidCredentials,
			wantMsg:  "field Email must be a valid email",
		},
		{
			name:     "rejected by api",
			email:    "admin@example.com",
			password: "wrong",
			reply:    reply{status: http.StatusBadRequest, body: `{"success":false,"message":"Invalid credentials"}`},
			wantMsg:  "Invalid credentials",
			requests: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, func(recorded) reply { return tt.reply })
			require.NoError(t, f.store.Clear(context.Background()))
			login := NewLogin(sl.Discard(), f.client(apiclient.ScopeAdmin), f.notifier())

			err := login.Submit(context.Background(), tt.email, tt.password)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Len(t, f.upstream.requests(), tt.requests)

			_, has := f.store.Get(context.Background())
			assert.False(t, has)
			assert.NotEqual(t, navigation.RouteDashboard, f.nav.Current())
			require.Len(t, f.notices, 1)
			assert.True(t, f.notices[0].Destructive)
			assert.Contains(t, f.notices[0].Description, tt.wantMsg)
		})
	}
}

func TestGuardAndLogout(t *testing.T) {
	f := newFixture(t, func(recorded) reply { return ok(`{}`) })
	client := f.client(apiclient.ScopeAdmin)
	ctx := context.Background()

	require.NoError(t, Guard(ctx, client))
	require.NoError(t, Logout(ctx, client))
	assert.Equal(t, navigation.RouteLogin, f.nav.Current())

	err := Guard(ctx, client)
	assert.True(t, errors.Is(err, ErrNoToken))
	assert.Empty(t, f.upstream.requests())
}

func TestDetailPages(t *testing.T) {
	f := newFixture(t, func(r recorded) reply {
		switch r.Path {
		case "/api/proxy/admin/users/u1":
			return ok(`{"success":true,"data":{"user":{"_id":"u1","email":"jane@example.com"},` +
				`"stats":{"totalPayments":2,"totalSpent":300},"payments":[{"_id":"p1","userId":"u1","amount":100}]}}`)
		default:
			return ok(`{"success":true,"data":{"transaction":{"_id":"t1","userId":{"_id":"u1","email":"jane@example.com"}},` +
				`"relatedPayment":{"_id":"p9","amount":50}}}`)
		}
	})
	ctx := context.Background()

	user := NewUserDetail(sl.Discard(), f.client(apiclient.ScopeAdmin), "u1")
	require.NoError(t, user.Load(ctx))
	assert.Equal(t, "jane@example.com", user.Data().User.Email)
	require.NotNil(t, user.Data().Stats)
	assert.Equal(t, 2, user.Data().Stats.TotalPayments)
	assert.Equal(t, "u1", user.Data().Payments[0].UserID.ID)

	tx := NewTransactionDetail(sl.Discard(), f.client(apiclient.ScopeAdmin), "t1")
	require.NoError(t, tx.Load(ctx))
	assert.Equal(t, "/api/proxy/admin/transactions/t1", f.upstream.requests()[1].Path)
	assert.Equal(t, "jane@example.com", tx.Data().Transaction.ContactEmail())
	assert.Equal(t, "p9", tx.Data().RelatedPayment.ID)
}
