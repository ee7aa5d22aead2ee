// Package query превращает состояние фильтров списковой страницы в строку
// запроса. Поля описываются таблицей Schema: имя параметра, значение по
// умолчанию и правило валидации. Поле в значении по умолчанию не попадает в
// строку запроса, если оно не помечено Keep.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Стандартные параметры пагинации и сортировки.
const (
	Page      = "page"
	Limit     = "limit"
	Status    = "status"
	Search    = "search"
	UserID    = "userId"
	PackageID = "packageId"
	DateFrom  = "dateFrom"
	DateTo    = "dateTo"
	SortBy    = "sortBy"
	SortOrder = "sortOrder"
)

// All — значение перечислимых фильтров, означающее «без фильтра».
const All = "all"

var (
	// ErrUnknownField возвращается при обращении к полю вне схемы.
	ErrUnknownField = errors.New("unknown filter field")
	// ErrInvalidValue возвращается, если значение не прошло валидацию.
	ErrInvalidValue = errors.New("invalid filter value")
)

// Field описывает один параметр фильтра.
type Field struct {
	// Key — имя параметра в строке запроса.
	Key string
	// Default — начальное значение. Для "" и All поле опускается.
	Default string
	// Keep — поле выводится всегда, даже в значении по умолчанию.
	Keep bool
	// Rule — тег go-playground/validator для значения, например "oneof=asc desc".
	Rule string
}

// Schema — упорядоченная таблица полей. Порядок полей задаёт порядок
// параметров в строке запроса.
type Schema []Field

// Base возвращает схему с полями page, limit, sortBy и sortOrder, общими
// для всех списков, и полями extra между limit и sortBy. sortable
// ограничивает допустимые значения sortBy; nil снимает ограничение.
func Base(limit int, sortBy string, sortable []string, extra ...Field) Schema {
	sortRule := "required"
	if len(sortable) > 0 {
		sortRule = "oneof=" + strings.Join(sortable, " ")
	}
	s := Schema{
		{Key: Page, Default: "1", Keep: true, Rule: "numeric"},
		{Key: Limit, Default: strconv.Itoa(limit), Keep: true, Rule: "numeric"},
	}
	s = append(s, extra...)
	s = append(s,
		Field{Key: SortBy, Default: sortBy, Keep: true, Rule: sortRule},
		Field{Key: SortOrder, Default: "desc", Keep: true, Rule: "oneof=asc desc"},
	)
	return s
}

func (s Schema) field(key string) (Field, bool) {
	for _, f := range s {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults возвращает значения полей по умолчанию.
func (s Schema) Defaults() map[string]string {
	values := make(map[string]string, len(s))
	for _, f := range s {
		values[f.Key] = f.Default
	}
	return values
}

// Encode строит строку запроса из values детерминированно: в порядке схемы,
// без полей в значении по умолчанию (кроме Keep) и без пустых/All значений.
func (s Schema) Encode(values map[string]string) string {
	var b strings.Builder
	for _, f := range s {
		v, ok := values[f.Key]
		if !ok {
			v = f.Default
		}
		if v == "" || (!f.Keep && omitted(f, v)) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String()
}

func omitted(f Field, v string) bool {
	return v == "" || v == All || v == f.Default
}

var validate = validator.New()

// Check проверяет значение поля по его правилу.
func (s Schema) Check(key, value string) error {
	f, ok := s.field(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if f.Rule == "" || (!f.Keep && omitted(f, value)) {
		return nil
	}
	if err := validate.Var(value, f.Rule); err != nil {
		return fmt.Errorf("%w: %s=%q (%s)", ErrInvalidValue, key, value, f.Rule)
	}
	return nil
}
