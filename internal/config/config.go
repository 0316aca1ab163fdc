package config

// Config описывает конфигурацию проверки переменной среды.
type Config struct {
	VariableName  string // имя проверяемой переменной среды
	ExpectedValue string // ожидаемое значение переменной
	LogLevel      string // уровень диагностического журнала, пустой отключает журнал
}

const (
	// DefaultVariableName имя переменной, которую внедряет лаунчер.
	DefaultVariableName = "TRAMPOLINE_V2_TEST_ENV"
	// DefaultExpectedValue значение, которое лаунчер должен внедрить.
	DefaultExpectedValue = "teapot_v2"

	logLevelKey = "ENVASSERT_LOG_LEVEL"
)

// Environment определяет доступ к переменным среды.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// New создает экземпляр конфигурации с настройками по умолчанию.
func New() Config {
	return Config{
		VariableName:  DefaultVariableName,
		ExpectedValue: DefaultExpectedValue,
	}
}

// FromEnv заполняет параметры конфигурации из переменных среды.
// Имя и ожидаемое значение проверяемой переменной не переопределяются.
func (conf Config) FromEnv(env Environment) Config {
	if level, ok := env.LookupEnv(logLevelKey); ok {
		conf.LogLevel = level
	}

	return conf
}
