package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет учётную запись платформы в списке и карточке пользователя.
type User struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Role       string     `json:"role,omitempty"`
	IsActive   bool       `json:"isActive"`
	IsVerified bool       `json:"isVerified"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// UserRef — ссылка на пользователя в платеже или транзакции.
// API отдаёт либо заполненный объект {_id, name, email}, либо строковый id.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UnmarshalJSON принимает как объект, так и строку.
func (r *UserRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = UserRef{}
		return nil
	}
	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = UserRef{ID: id}
		return nil
	}
	type plain UserRef
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = UserRef(p)
	return nil
}

// Label возвращает имя пользователя, а при его отсутствии — id.
func (r UserRef) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// UsersPage — данные ответа GET users.
type UsersPage struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// Page реализует Paged.
func (p UsersPage) Page() Pagination { return p.Pagination }

// UserStats — агрегаты платежей пользователя.
type UserStats struct {
	TotalPayments     int     `json:"totalPayments"`
	CompletedPayments int     `json:"completedPayments"`
	TotalSpent        float64 `json:"totalSpent"`
	PackagesCount     int     `json:"packagesCount"`
}

// UserDetail — данные ответа GET users/{id}.
type UserDetail struct {
	User     User       `json:"user"`
	Stats    *UserStats `json:"stats,omitempty"`
	Payments []Payment  `json:"payments,omitempty"`
}

// Profile — данные ответа GET profile для текущего администратора.
type Profile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	Role       string     `json:"role,omitempty"`
	IsActive   bool       `json:"isActive"`
	IsVerified bool       `json:"isVerified"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// Credentials — тело запроса POST login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult — данные ответа POST login.
type LoginResult struct {
	Token string `json:"token"`
}
