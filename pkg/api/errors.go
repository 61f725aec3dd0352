package api

import (
	"context"
	"errors"
	"net"
)

// ErrorType представляет тип ошибки при работе с backend API.
type ErrorType int

const (
	ErrUnknown ErrorType = iota
	// ErrBackend — backend ответил {success:false, error}.
	ErrBackend
	// ErrNetwork — backend недоступен или ответ не разобран.
	ErrNetwork
	// ErrTimeout — запрос не уложился в timeout.
	ErrTimeout
)

// String возвращает строковое представление типа ошибки.
func (e ErrorType) String() string {
	switch e {
	case ErrBackend:
		return "backend_error"
	case ErrNetwork:
		return "network_error"
	case ErrTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// ConnectivityMessage — общий текст для недоступного backend.
const ConnectivityMessage = "Ошибка подключения к серверу. Убедитесь, что backend сервер запущен."

// HumanMessage возвращает человекочитаемое сообщение для типа ошибки.
func (e ErrorType) HumanMessage() string {
	switch e {
	case ErrTimeout:
		return "Сервер не ответил вовремя. Попробуйте ещё раз."
	case ErrNetwork:
		return ConnectivityMessage
	default:
		return "Неизвестная ошибка при обращении к серверу."
	}
}

// Error — ошибка вызова backend API.
type Error struct {
	Type    ErrorType
	Op      string // "channels", "rewrite", "send", "health"
	Status  int    // HTTP статус, 0 если ответа не было
	Message string // Текст ошибки от backend (для ErrBackend)
	Err     error
}

func (e *Error) Error() string {
	if e.Type == ErrBackend {
		return "api " + e.Op + ": " + e.Message
	}
	if e.Err != nil {
		return "api " + e.Op + ": " + e.Type.String() + ": " + e.Err.Error()
	}
	return "api " + e.Op + ": " + e.Type.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HumanMessage возвращает текст для показа пользователю.
//
// Для ошибок backend сообщение передаётся как есть.
func (e *Error) HumanMessage() string {
	if e.Type == ErrBackend && e.Message != "" {
		return e.Message
	}
	return e.Type.HumanMessage()
}

// Classify определяет тип ошибки транспорта.
func Classify(err error) ErrorType {
	if err == nil {
		return ErrUnknown
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Type
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	return ErrNetwork
}

// classifyWait определяет тип ошибки rate.Limiter.Wait.
//
// Limiter отказывает заранее ("would exceed context deadline"), не дожидаясь
// истечения контекста, поэтому context.DeadlineExceeded в цепочке нет.
func classifyWait(ctx context.Context, err error) ErrorType {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Classify(ctxErr)
	}
	if _, ok := ctx.Deadline(); ok {
		return ErrTimeout
	}
	return Classify(err)
}

// IsBackend сообщает, что ошибка пришла от backend как {success:false}.
func IsBackend(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Type == ErrBackend
}
