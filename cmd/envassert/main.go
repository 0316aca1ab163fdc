package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nestjam/envassert/internal/assertion"
	conf "github.com/nestjam/envassert/internal/config"
	env "github.com/nestjam/envassert/internal/config/environment"
	"github.com/nestjam/envassert/internal/log"
)

func main() {
	exit(run(env.New(), os.Stdout, os.Stderr))
}

func run(environment conf.Environment, stdout, stderr io.Writer) int {
	config := conf.New().FromEnv(environment)

	if err := log.Initialize(config.LogLevel); err != nil {
		fmt.Fprintf(stderr, "Warning: %v, diagnostics disabled\n", err)
	}
	defer log.Sync()

	check := assertion.New(config, environment, log.Logger)
	result, err := check.Check()
	assertion.NewReporter(stdout, stderr).Report(result, err)

	return result.State.ExitCode()
}

func exit(code int) {
	os.Exit(code)
}
