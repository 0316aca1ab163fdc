package environment

import "os"

// Environment определяет доступ к переменным среды процесса.
type Environment struct {
}

// New создает экземпляр Environment.
func New() Environment {
	return Environment{}
}

// LookupEnv возвращает значение переменной среды по ключу, если переменная существует.
func (env Environment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map задает переменные среды явно, без обращения к среде процесса.
type Map map[string]string

// LookupEnv возвращает значение переменной по ключу, если она задана.
func (m Map) LookupEnv(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}
