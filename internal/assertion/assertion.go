// Package assertion проверяет, что переменная среды задана и имеет ожидаемое значение.
package assertion

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	conf "github.com/nestjam/envassert/internal/config"
	"github.com/nestjam/envassert/internal/domain"
)

const (
	eventKey    = "event"
	variableKey = "variable"
	stateKey    = "state"
	runIDKey    = "run_id"
)

// Result описывает итог проверки.
type Result struct {
	State    domain.State
	Name     string
	Observed string
	Expected string
}

// Assertion выполняет проверку переменной среды.
type Assertion struct {
	env      conf.Environment
	logger   *zap.Logger
	name     string
	expected string
}

// New создает проверку по конфигурации.
func New(config conf.Config, env conf.Environment, logger *zap.Logger) *Assertion {
	return &Assertion{
		name:     config.VariableName,
		expected: config.ExpectedValue,
		env:      env,
		logger:   logger.With(zap.String(runIDKey, uuid.NewString())),
	}
}

// Check читает переменную среды один раз и сравнивает ее с ожидаемым значением.
// Для неуспешной проверки возвращается ошибка domain.MissingVariableError
// или domain.ValueMismatchError.
func (a *Assertion) Check() (Result, error) {
	result := Result{
		State:    domain.Unchecked,
		Name:     a.name,
		Expected: a.expected,
	}

	observed, ok := a.env.LookupEnv(a.name)
	a.logger.Debug("Variable read",
		zap.String(eventKey, "read variable"),
		zap.String(variableKey, a.name),
		zap.Bool("present", ok))

	var err error
	switch {
	case !ok || observed == "":
		result.State = domain.MissingVariable
		err = errors.WithStack(domain.NewMissingVariableError(a.name))
	case observed != a.expected:
		result.State = domain.ValueMismatch
		result.Observed = observed
		err = errors.WithStack(domain.NewValueMismatchError(a.name, observed, a.expected))
	default:
		result.State = domain.ValueMatch
		result.Observed = observed
	}

	if err != nil {
		a.logger.Warn("Check failed",
			zap.String(eventKey, "check variable"),
			zap.String(variableKey, a.name),
			zap.Stringer(stateKey, result.State),
			zap.Error(err))
		return result, err
	}

	a.logger.Info("Check passed",
		zap.String(eventKey, "check variable"),
		zap.String(variableKey, a.name),
		zap.Stringer(stateKey, result.State))
	return result, nil
}
