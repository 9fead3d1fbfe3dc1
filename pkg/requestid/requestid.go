package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header имя заголовка с идентификатором запроса
const Header = "X-Request-ID"

type ctxKey struct{}

// New генерирует новый идентификатор
func New() string {
	return uuid.New().String()
}

// WithContext кладет идентификатор в контекст
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достает идентификатор; пустая строка, если его нет
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
