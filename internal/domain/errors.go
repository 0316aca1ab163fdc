package domain

import (
	"errors"
	"fmt"
)

// ErrVariableNotSet означает, что переменная среды не задана или пуста.
var ErrVariableNotSet = errors.New("is not set")

// MissingVariableError определяет ошибку, когда проверяемая переменная не задана.
type MissingVariableError struct {
	name string
}

// NewMissingVariableError создает экземпляр ошибки.
func NewMissingVariableError(name string) *MissingVariableError {
	return &MissingVariableError{name: name}
}

// Error возвращает текст ошибки.
func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("%s %v", e.name, ErrVariableNotSet)
}

// Unwrap возвращает ErrVariableNotSet.
func (e *MissingVariableError) Unwrap() error {
	return ErrVariableNotSet
}

// Name возвращает имя переменной.
func (e *MissingVariableError) Name() string {
	return e.name
}

// ValueMismatchError определяет ошибку, когда значение переменной отличается от ожидаемого.
type ValueMismatchError struct {
	name     string
	observed string
	expected string
}

// NewValueMismatchError создает экземпляр ошибки.
func NewValueMismatchError(name, observed, expected string) *ValueMismatchError {
	return &ValueMismatchError{
		name:     name,
		observed: observed,
		expected: expected,
	}
}

// Error возвращает текст ошибки.
func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("%s is set to '%s' but expected '%s'", e.name, e.observed, e.expected)
}

// Name возвращает имя переменной.
func (e *ValueMismatchError) Name() string {
	return e.name
}

// Observed возвращает прочитанное значение.
func (e *ValueMismatchError) Observed() string {
	return e.observed
}

// Expected возвращает ожидаемое значение.
func (e *ValueMismatchError) Expected() string {
	return e.expected
}
