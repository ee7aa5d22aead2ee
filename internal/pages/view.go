// Package pages содержит контроллеры страниц консоли: каждое состояние
// страницы проходит idle → loading → ready | error.
//
// Контроллер строит запрос из своих фильтров, вызывает apiclient и хранит
// развёрнутые данные (поле data конверта). При ошибке сохраняется текст
// ошибки, а предыдущие данные остаются на месте. Мутации выполняют один
// запрос и затем полностью перезагружают текущую страницу, без
// оптимистичного обновления.
//
// Загрузки не отменяются и не упорядочиваются: если две загрузки
// перекрываются, состояние остаётся за той, что завершилась последней.
package pages

import (
	"errors"
	"sync"

	"github.com/magabrotheeeer/payments-admin/internal/apiclient"
)

// Status — состояние страницы.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot — копия состояния страницы для отображения.
type Snapshot[D any] struct {
	Status Status
	Data   *D
	Err    string
}

// view хранит состояние страницы. Data не очищается при ошибке.
type view[D any] struct {
	mu     sync.Mutex
	status Status
	data   *D
	err    string
}

func (v *view[D]) begin() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	prev := v.status
	v.status = StatusLoading
	return prev
}

// finish применяет результат загрузки. Ответ 401 не меняет ни данные,
// ни текст ошибки: возвращается состояние, бывшее до загрузки.
func (v *view[D]) finish(prev Status, data D, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		v.status = prev
	case err != nil:
		v.status = StatusError
		v.err = err.Error()
	default:
		v.status = StatusReady
		v.data = &data
		v.err = ""
	}
}

// Snapshot возвращает текущее состояние.
func (v *view[D]) Snapshot() Snapshot[D] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot[D]{Status: v.status, Data: v.data, Err: v.err}
}

// Status возвращает текущее состояние.
func (v *view[D]) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Data возвращает последние успешно загруженные данные или nil.
func (v *view[D]) Data() *D {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data
}

// Err возвращает текст последней ошибки загрузки.
func (v *view[D]) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
