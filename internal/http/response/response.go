// Package response содержит вспомогательные типы и функции для формирования
// JSON-ответов в формате конверта внешнего API: {success, message, data, error}.
// Прокси синтезирует собственные ответы только при сбое пересылки и в
// служебных обработчиках; остальные ответы передаются как есть.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response описывает конверт JSON-ответа.
// Success — признак успеха, Message — сообщение для пользователя,
// Data — данные ответа, Error — текст ошибки.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Proxy request failed"`
	Error   string `json:"error" example:"dial tcp: connection refused"`
}

// ProxyFailedMessage — сообщение ответа при сбое пересылки запроса.
const ProxyFailedMessage = "Proxy request failed"

// OK возвращает успешный Response с переданными данными.
func OK(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Error возвращает неуспешный Response с переданным сообщением.
func Error(msg string) Response {
	return Response{
		Success: false,
		Message: msg,
	}
}

// ProxyFailure возвращает ответ прокси при ошибке транспорта.
func ProxyFailure(err error) Response {
	detail := "Unknown error"
	if err != nil {
		detail = err.Error()
	}
	return Response{
		Success: false,
		Message: ProxyFailedMessage,
		Error:   detail,
	}
}

// ValidationError формирует неуспешный Response на основе ошибок валидации.
func ValidationError(errs validator.ValidationErrors) Response {
	return Response{
		Success: false,
		Message: ValidationMessage(errs),
	}
}

// ValidationMessage переводит ошибки валидации в человеко-читаемый текст,
// объединённый через запятую.
func ValidationMessage(errs validator.ValidationErrors) string {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "datetime":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only date in format YYYY-MM-DD", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return strings.Join(errsMsgs, ", ")
}
