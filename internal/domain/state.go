package domain

// State описывает состояние проверки переменной среды.
type State int

// Состояния проверки. Все, кроме Unchecked, конечные.
const (
	Unchecked State = iota
	MissingVariable
	ValueMismatch
	ValueMatch
)

// Коды завершения процесса.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

var stateNames = map[State]string{
	Unchecked:       "unchecked",
	MissingVariable: "missing variable",
	ValueMismatch:   "value mismatch",
	ValueMatch:      "value match",
}

// String возвращает название состояния.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal сообщает, завершена ли проверка.
func (s State) IsTerminal() bool {
	switch s {
	case MissingVariable, ValueMismatch, ValueMatch:
		return true
	default:
		return false
	}
}

// ExitCode возвращает код завершения процесса для состояния.
// Успешным считается только ValueMatch.
func (s State) ExitCode() int {
	if s == ValueMatch {
		return ExitSuccess
	}
	return ExitFailure
}
