package logger

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sync"
)

// sourceFile is a parsed Go file kept for recovering the text of failed
// Check expressions. A nil *ast.File marks a file that could not be read.
type sourceFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

var sourceFiles sync.Map // path -> *sourceFile

func loadSource(path string) *sourceFile {
	if cached, ok := sourceFiles.Load(path); ok {
		return cached.(*sourceFile)
	}
	sf := &sourceFile{fset: token.NewFileSet()}
	if src, err := os.ReadFile(path); err == nil {
		if f, err := parser.ParseFile(sf.fset, path, src, parser.SkipObjectResolution); err == nil {
			sf.file, sf.src = f, src
		}
	}
	actual, _ := sourceFiles.LoadOrStore(path, sf)
	return actual.(*sourceFile)
}

// callArgs returns the source text of the arguments of the call to a
// function named name that spans line in path. When several calls match,
// the narrowest one wins. ok is false if the source is unavailable or if
// the narrowest match is ambiguous, as with two checks on one line.
func callArgs(path string, line int, name string) (args []string, ok bool) {
	sf := loadSource(path)
	if sf.file == nil {
		return nil, false
	}

	var best *ast.CallExpr
	bestSpan, ties := 0, 0
	ast.Inspect(sf.file, func(n ast.Node) bool {
		call, isCall := n.(*ast.CallExpr)
		if !isCall || calleeName(call.Fun) != name {
			return true
		}
		start, end := sf.fset.Position(call.Pos()).Line, sf.fset.Position(call.End()).Line
		if line < start || line > end {
			return true
		}
		switch span := end - start; {
		case best == nil || span < bestSpan:
			best, bestSpan, ties = call, span, 0
		case span == bestSpan:
			ties++
		}
		return true
	})
	if best == nil || ties > 0 {
		return nil, false
	}

	args = make([]string, len(best.Args))
	for i, arg := range best.Args {
		from, to := sf.fset.Position(arg.Pos()).Offset, sf.fset.Position(arg.End()).Offset
		args[i] = string(sf.src[from:to])
	}
	return args, true
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	default:
		return ""
	}
}
