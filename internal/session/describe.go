package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrOpaqueToken означает, что токен не является JWT и описать его нельзя.
var ErrOpaqueToken = errors.New("token is not a JWT")

// Info — сведения из токена, которые консоль показывает в `session status`.
type Info struct {
	Subject   string
	Email     string
	Role      string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// Describe разбирает JWT без проверки подписи. Результат только
// информационный: запросы по нему не блокируются, продление не выполняется.
func Describe(token string) (*Info, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Join(ErrOpaqueToken, err)
	}

	info := &Info{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if info.Subject == "" {
		for _, k := range []string{"id", "userId", "_id"} {
			if v, ok := claims[k].(string); ok && v != "" {
				info.Subject = v
				break
			}
		}
	}
	if v, ok := claims["email"].(string); ok {
		info.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		info.Role = v
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		t := iat.Time
		info.IssuedAt = &t
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
	}
	return info, nil
}

// Expired сообщает, истёк ли срок токена на момент now. Токен без exp не истекает.
func (i *Info) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}
