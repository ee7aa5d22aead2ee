package query

import (
	"fmt"
	"strconv"
)

// State — изменяемое состояние фильтров одной страницы.
// Изменение любого поля, кроме page, сбрасывает page на 1.
type State struct {
	schema Schema
	values map[string]string
}

// NewState создаёт состояние со значениями по умолчанию.
func NewState(schema Schema) *State {
	return &State{schema: schema, values: schema.Defaults()}
}

// Schema возвращает схему состояния.
func (s *State) Schema() Schema { return s.schema }

// Get возвращает текущее значение поля.
func (s *State) Get(key string) string { return s.values[key] }

// Page возвращает номер текущей страницы.
func (s *State) Page() int {
	n, err := strconv.Atoi(s.values[Page])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Set изменяет поле key. Для любого поля кроме page номер страницы
// сбрасывается на 1, даже если значение не изменилось.
func (s *State) Set(key, value string) error {
	if key == Page {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: page=%q", ErrInvalidValue, value)
		}
		return s.SetPage(n)
	}
	if err := s.schema.Check(key, value); err != nil {
		return err
	}
	s.values[key] = value
	s.values[Page] = "1"
	return nil
}

// SetMany применяет несколько изменений атомарно: при ошибке состояние
// не меняется. Используется для пары sortBy/sortOrder.
func (s *State) SetMany(changes map[string]string) error {
	for k, v := range changes {
		if k == Page {
			continue
		}
		if err := s.schema.Check(k, v); err != nil {
			return err
		}
	}
	for k, v := range changes {
		if k == Page {
			continue
		}
		s.values[k] = v
	}
	s.values[Page] = "1"
	if p, ok := changes[Page]; ok {
		return s.Set(Page, p)
	}
	return nil
}

// SetPage переходит на страницу n (n >= 1), не трогая остальные поля.
func (s *State) SetPage(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: page=%d", ErrInvalidValue, n)
	}
	s.values[Page] = strconv.Itoa(n)
	return nil
}

// Reset возвращает все поля к значениям по умолчанию.
func (s *State) Reset() {
	s.values = s.schema.Defaults()
}

// Encode возвращает строку запроса для текущего состояния.
func (s *State) Encode() string {
	return s.schema.Encode(s.values)
}

// Path добавляет строку запроса к пути ресурса.
func (s *State) Path(resource string) string {
	q := s.Encode()
	if q == "" {
		return resource
	}
	return resource + "?" + q
}
