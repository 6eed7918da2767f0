package services

import "errors"

// Доменные ошибки. Контроллеры сопоставляют их с HTTP-статусами:
// ErrUnauthorized → 401, ErrNotFound → 404, ErrConflict → 400.
var (
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrNotFound     = errors.New("registro no encontrado")
	ErrConflict     = errors.New("el registro ya existe")
	ErrValidation   = errors.New("datos de entrada inválidos")
)
