// Package models содержит типизированные записи внешнего admin API:
// пользователей, платежи, транзакции, статистику, а также общий конверт
// ответа и структуру пагинации. Все необязательные поля терпимы к отсутствию.
package models

import "encoding/json"

// Envelope — конверт ответа внешнего API: {success, message, data}.
// Error заполняется только локально сформированным ответом прокси.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Pagination описывает страницу результата. Внешний API называет общее
// количество по-разному для каждого ресурса (totalUsers, totalPayments,
// totalTransactions), поэтому все варианты сводятся в TotalCount.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// UnmarshalJSON принимает любое из имён поля общего количества.
func (p *Pagination) UnmarshalJSON(b []byte) error {
	var raw struct {
		CurrentPage       int  `json:"currentPage"`
		TotalPages        int  `json:"totalPages"`
		TotalCount        *int `json:"totalCount"`
		TotalUsers        *int `json:"totalUsers"`
		TotalPayments     *int `json:"totalPayments"`
		TotalTransactions *int `json:"totalTransactions"`
		HasNext           bool `json:"hasNext"`
		HasPrev           bool `json:"hasPrev"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.CurrentPage = raw.CurrentPage
	p.TotalPages = raw.TotalPages
	p.HasNext = raw.HasNext
	p.HasPrev = raw.HasPrev
	p.TotalCount = 0
	for _, n := range []*int{raw.TotalCount, raw.TotalUsers, raw.TotalPayments, raw.TotalTransactions} {
		if n != nil {
			p.TotalCount = *n
			break
		}
	}
	return nil
}

// Paged реализуют данные списковых страниц.
type Paged interface {
	Page() Pagination
}

// StatusSummary — агрегат по статусу, который API отдаёт рядом со списком.
type StatusSummary struct {
	Status string  `json:"_id"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}
