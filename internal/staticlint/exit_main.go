// Package staticlint содержит анализаторы кода проекта.
package staticlint

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const usingExitInMainWarn = "using exit in main"

// ExitMainAnalyzer запрещает прямой вызов os.Exit в функции main пакета main.
// Код завершения должен возвращаться из run и передаваться во вспомогательную функцию.
var ExitMainAnalyzer = &analysis.Analyzer{
	Name:     "exitmain",
	Doc:      "check using exit in main",
	Run:      runExitMain,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runExitMain(pass *analysis.Pass) (interface{}, error) {
	const mainName = "main"

	if pass.Pkg.Name() != mainName {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.FuncDecl)(nil)}

	insp.Preorder(nodeFilter, func(node ast.Node) {
		decl := node.(*ast.FuncDecl)
		if decl.Recv != nil || decl.Name.Name != mainName || decl.Body == nil {
			return
		}

		ast.Inspect(decl.Body, func(n ast.Node) bool {
			if call, ok := n.(*ast.CallExpr); ok && isOSExit(pass, call) {
				pass.Reportf(call.Pos(), usingExitInMainWarn)
			}
			return true
		})
	})

	return nil, nil
}

func isOSExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	var id *ast.Ident
	switch fun := call.Fun.(type) {
	case *ast.SelectorExpr:
		id = fun.Sel
	case *ast.Ident:
		id = fun
	default:
		return false
	}

	fn, ok := pass.TypesInfo.Uses[id].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
