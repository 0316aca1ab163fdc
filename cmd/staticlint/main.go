// Command staticlint запускает набор анализаторов над кодом проекта.
//
//	go run ./cmd/staticlint ./...
package main

import (
	gocritic "github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/nestjam/envassert/internal/staticlint"
)

func main() {
	multichecker.Main(analyzers()...)
}

// Проверки stylecheck, включенные в набор.
var styleChecks = map[string]bool{
	"ST1005": true, // текст ошибки
	"ST1019": true, // повторный импорт
}

func analyzers() []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		assign.Analyzer,
		bools.Analyzer,
		errorsas.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		stringintconv.Analyzer,
		structtag.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
		gocritic.Analyzer,
		bodyclose.Analyzer,
		staticlint.ExitMainAnalyzer,
	}

	checks = appendLint(checks, staticcheck.Analyzers, nil)
	checks = appendLint(checks, simple.Analyzers, nil)
	checks = appendLint(checks, stylecheck.Analyzers, styleChecks)

	return checks
}

func appendLint(checks []*analysis.Analyzer, from []*lint.Analyzer, only map[string]bool) []*analysis.Analyzer {
	for _, a := range from {
		if only != nil && !only[a.Analyzer.Name] {
			continue
		}
		checks = append(checks, a.Analyzer)
	}
	return checks
}
