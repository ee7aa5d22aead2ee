package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Base(10, "createdAt", nil,
		Field{Key: Status, Default: All, Rule: "oneof=all pending completed failed cancelled"},
		Field{Key: UserID},
		Field{Key: Search},
		Field{Key: DateFrom, Rule: "datetime=2006-01-02"},
	)
}

func TestEncode_Defaults(t *testing.T) {
	s := NewState(testSchema())
	assert.Equal(t, "page=1&limit=10&sortBy=createdAt&sortOrder=desc", s.Encode())
}

func TestEncode_OmitsDefaultsIncludesOthers(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{
			name:   "status all omitted",
			values: map[string]string{Status: All},
			want:   "page=1&limit=10&sortBy=createdAt&sortOrder=desc",
		},
		{
			name:   "status included",
			values: map[string]string{Status: "pending"},
			want:   "page=1&limit=10&status=pending&sortBy=createdAt&sortOrder=desc",
		},
		{
			name:   "order follows schema",
			values: map[string]string{DateFrom: "2024-01-01", Search: "an nguyen", UserID: "u1"},
			want:   "page=1&limit=10&userId=u1&search=an+nguyen&dateFrom=2024-01-01&sortBy=createdAt&sortOrder=desc",
		},
		{
			name:   "escaping",
			values: map[string]string{Search: "a&b=c"},
			want:   "page=1&limit=10&search=a%26b%3Dc&sortBy=createdAt&sortOrder=desc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(testSchema())
			for k, v := range tt.values {
				require.NoError(t, s.Set(k, v))
			}
			assert.Equal(t, tt.want, s.Encode())
		})
	}
}

func TestSet_ResetsPage(t *testing.T) {
	for _, key := range []string{Status, UserID, Search, DateFrom, SortBy, SortOrder, Limit} {
		t.Run(key, func(t *testing.T) {
			s := NewState(testSchema())
			require.NoError(t, s.SetPage(4))
			require.Equal(t, 4, s.Page())

			value := map[string]string{
				Status: "completed", UserID: "u1", Search: "x", DateFrom: "2024-05-01",
				SortBy: "amount", SortOrder: "asc", Limit: "20",
			}[key]
			require.NoError(t, s.Set(key, value))
			assert.Equal(t, 1, s.Page())
		})
	}
}

func TestSetPage_KeepsOtherFields(t *testing.T) {
	s := NewState(testSchema())
	require.NoError(t, s.Set(Status, "failed"))
	require.NoError(t, s.Set(Page, "3"))

	assert.Equal(t, 3, s.Page())
	assert.Equal(t, "failed", s.Get(Status))
	assert.Error(t, s.SetPage(0))
	assert.Error(t, s.Set(Page, "abc"))
	assert.Equal(t, 3, s.Page())
}

func TestSet_Validation(t *testing.T) {
	s := NewState(testSchema())

	assert.ErrorIs(t, s.Set("color", "red"), ErrUnknownField)
	assert.ErrorIs(t, s.Set(SortOrder, "sideways"), ErrInvalidValue)
	assert.ErrorIs(t, s.Set(Status, "archived"), ErrInvalidValue)
	assert.ErrorIs(t, s.Set(DateFrom, "01/02/2024"), ErrInvalidValue)
	assert.ErrorIs(t, s.Set(Limit, "ten"), ErrInvalidValue)

	assert.NoError(t, s.Set(DateFrom, ""), "clearing a date is allowed")
	assert.NoError(t, s.Set(Status, All))
}

func TestSetMany_Atomic(t *testing.T) {
	s := NewState(testSchema())
	require.NoError(t, s.SetPage(2))

	err := s.SetMany(map[string]string{SortBy: "amount", SortOrder: "up"})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, "createdAt", s.Get(SortBy))
	assert.Equal(t, 2, s.Page())

	require.NoError(t, s.SetMany(map[string]string{SortBy: "amount", SortOrder: "asc"}))
	assert.Equal(t, "amount", s.Get(SortBy))
	assert.Equal(t, "asc", s.Get(SortOrder))
	assert.Equal(t, 1, s.Page())
}

func TestResetAndPath(t *testing.T) {
	s := NewState(testSchema())
	require.NoError(t, s.Set(Search, "x"))
	s.Reset()

	assert.Equal(t, "users?page=1&limit=10&sortBy=createdAt&sortOrder=desc", s.Path("users"))
	assert.Equal(t, "stats", NewState(Schema{{Key: "period", Default: "30"}}).Path("stats"))
}

func TestBase_Sortable(t *testing.T) {
	s := NewState(Base(20, "createdAt", []string{"createdAt", "amount"}))

	assert.NoError(t, s.Set(SortBy, "amount"))
	assert.ErrorIs(t, s.Set(SortBy, "name"), ErrInvalidValue)
	assert.Equal(t, "page=1&limit=20&sortBy=amount&sortOrder=desc", s.Encode())
}
