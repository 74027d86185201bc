// Package engine bundles reference implementations of the lint,
// extract, and transform pipelines for Go source files. The
// orchestration layer only sees them through the msgtool interfaces.
package engine

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/loopcontext/msgtool"
)

// scanner matches translator call sites. With auto-detection on, both
// bare calls (formatMessage(...)) and method-style calls
// (intl.formatMessage(...)) match; with it off, only the bare form does.
type scanner struct {
	funcName string
	auto     bool
}

func (s scanner) match(call *ast.CallExpr) bool {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		return fn.Name == s.funcName
	case *ast.SelectorExpr:
		return s.auto && fn.Sel.Name == s.funcName
	}
	return false
}

// callSite is one matched translator invocation. Pattern is empty when
// the first argument is not a literal string expression.
type callSite struct {
	call    *ast.CallExpr
	pos     token.Position
	pattern string
	literal bool
}

func (s scanner) callSites(fset *token.FileSet, file *ast.File) []callSite {
	var sites []callSite
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok || !s.match(call) || len(call.Args) == 0 {
			return true
		}
		pattern, literal := litString(call.Args[0])
		sites = append(sites, callSite{
			call:    call,
			pos:     fset.Position(call.Pos()),
			pattern: pattern,
			literal: literal,
		})
		return true
	})
	return sites
}

// litString resolves a string literal expression, including literal
// concatenation chains ("a" + "b").
func litString(expr ast.Expr) (string, bool) {
	switch typed := expr.(type) {
	case *ast.BasicLit:
		if typed.Kind != token.STRING {
			return "", false
		}
		s, err := strconv.Unquote(typed.Value)
		if err != nil {
			return "", false
		}
		return s, true
	case *ast.BinaryExpr:
		if typed.Op != token.ADD {
			return "", false
		}
		left, lok := litString(typed.X)
		right, rok := litString(typed.Y)
		if !lok || !rok {
			return "", false
		}
		return left + right, true
	}
	return "", false
}

// parseUnit parses a source unit, reading from disk for file-backed
// units and from the captured buffer for synthetic ones.
func parseUnit(fset *token.FileSet, unit msgtool.SourceUnit) (*ast.File, error) {
	var src interface{}
	if unit.Synthetic() {
		src = unit.SourceCode
	}
	file, err := parser.ParseFile(fset, unit.Name(), src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", unit.Name(), err)
	}
	return file, nil
}
