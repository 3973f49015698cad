package logger

import (
	"cmp"
	"fmt"
	"path/filepath"
	"runtime"
)

const checkPrefix = "Check failed: "

// fail logs a Fatal "Check failed: ..." line for the call to name and
// aborts. render receives the source text of the call's arguments, or nil
// when the source file cannot be read.
func (l *Logger) fail(calldepth int, name string, render func(args []string) string) {
	_, file, line, ok := runtime.Caller(calldepth)
	var args []string
	if ok {
		args, _ = callArgs(file, line, name)
	} else {
		file = "unknown"
	}
	l.record(Fatal, filepath.Base(file), line, checkPrefix+render(args))
}

func (l *Logger) failOp(calldepth int, name, op string, a, b any, v []any) {
	l.fail(calldepth+1, name, func(args []string) string {
		return opDiagnostic(argText(args, 0, a), op, argText(args, 1, b), a, b) + fmt.Sprint(v...)
	})
}

// opDiagnostic renders "<lhs> <op> <rhs> " and, when an operand's source
// text is not simply its value, the values as "(<lhs>=<a>, <rhs>=<b>) ".
func opDiagnostic(lhs, op, rhs string, a, b any) string {
	diag := lhs + " " + op + " " + rhs + " "
	if !isLiteral(lhs, a) || !isLiteral(rhs, b) {
		diag += fmt.Sprintf("(%s=%v, %s=%v) ", lhs, a, rhs, b)
	}
	return diag
}

func argText(args []string, i int, value any) string {
	if i < len(args) {
		return args[i]
	}
	return fmt.Sprint(value)
}

func isLiteral(expr string, value any) bool {
	return expr == fmt.Sprint(value) || expr == fmt.Sprintf("%#v", value)
}

func strDiagnostic(s1, op, s2 string, v []any) string {
	diag := `"` + s1 + `" ` + op + ` "` + s2 + `"`
	if len(v) > 0 {
		diag += " " + fmt.Sprint(v...)
	}
	return diag
}

// --- Logger methods ---
//
// Methods cannot take type parameters, so the typed comparisons
// (CheckEq, CheckLt, ...) exist only as package functions.

// Check aborts with "Check failed: <cond> " if cond is false. The operands
// v are appended to the diagnostic.
func (l *Logger) Check(cond bool, v ...any) {
	if cond {
		return
	}
	l.fail(2, "Check", func(args []string) string {
		return argText(args, 0, false) + " " + fmt.Sprint(v...)
	})
}

// CheckStrEq aborts with `Check failed: "<s1>" == "<s2>"` unless s1 == s2.
func (l *Logger) CheckStrEq(s1, s2 string, v ...any) {
	if s1 == s2 {
		return
	}
	l.fail(2, "CheckStrEq", func([]string) string { return strDiagnostic(s1, "==", s2, v) })
}

// CheckStrNe aborts with `Check failed: "<s1>" != "<s2>"` if s1 == s2.
func (l *Logger) CheckStrNe(s1, s2 string, v ...any) {
	if s1 != s2 {
		return
	}
	l.fail(2, "CheckStrNe", func([]string) string { return strDiagnostic(s1, "!=", s2, v) })
}

// CheckNoErr aborts with "Check failed: <err> == nil (<err>=...) " if err is
// not nil.
func (l *Logger) CheckNoErr(err error, v ...any) {
	if err == nil {
		return
	}
	l.failNoErr(2, "CheckNoErr", err, v)
}

func (l *Logger) failNoErr(calldepth int, name string, err error, v []any) {
	l.fail(calldepth+1, name, func(args []string) string {
		expr := "err"
		if len(args) > 0 {
			expr = args[0]
		}
		return expr + " == nil (" + expr + "=" + err.Error() + ") " + fmt.Sprint(v...)
	})
}

// --- Package-level checks on the default logger ---

// Check aborts the process with "Check failed: <cond> " if cond is false.
// <cond> is the source text of the argument when the source is available.
// It never returns on failure.
func Check(cond bool, v ...any) {
	if cond {
		return
	}
	Default().fail(2, "Check", func(args []string) string {
		return argText(args, 0, false) + " " + fmt.Sprint(v...)
	})
}

// CheckEq aborts with "Check failed: <a> == <b> " unless a == b.
func CheckEq[T comparable](a, b T, v ...any) {
	if a == b {
		return
	}
	Default().failOp(2, "CheckEq", "==", a, b, v)
}

// CheckNe aborts with "Check failed: <a> != <b> " if a == b.
func CheckNe[T comparable](a, b T, v ...any) {
	if a != b {
		return
	}
	Default().failOp(2, "CheckNe", "!=", a, b, v)
}

// CheckLt aborts unless a < b.
func CheckLt[T cmp.Ordered](a, b T, v ...any) {
	if a < b {
		return
	}
	Default().failOp(2, "CheckLt", "<", a, b, v)
}

// CheckLe aborts unless a <= b.
func CheckLe[T cmp.Ordered](a, b T, v ...any) {
	if a <= b {
		return
	}
	Default().failOp(2, "CheckLe", "<=", a, b, v)
}

// CheckGt aborts unless a > b.
func CheckGt[T cmp.Ordered](a, b T, v ...any) {
	if a > b {
		return
	}
	Default().failOp(2, "CheckGt", ">", a, b, v)
}

// CheckGe aborts unless a >= b.
func CheckGe[T cmp.Ordered](a, b T, v ...any) {
	if a >= b {
		return
	}
	Default().failOp(2, "CheckGe", ">=", a, b, v)
}

// CheckStrEq aborts with `Check failed: "<s1>" == "<s2>"` unless s1 == s2.
func CheckStrEq(s1, s2 string, v ...any) {
	if s1 == s2 {
		return
	}
	Default().fail(2, "CheckStrEq", func([]string) string { return strDiagnostic(s1, "==", s2, v) })
}

// CheckStrNe aborts with `Check failed: "<s1>" != "<s2>"` if s1 == s2.
func CheckStrNe(s1, s2 string, v ...any) {
	if s1 != s2 {
		return
	}
	Default().fail(2, "CheckStrNe", func([]string) string { return strDiagnostic(s1, "!=", s2, v) })
}

// CheckNoErr aborts if err is not nil, reporting the error.
func CheckNoErr(err error, v ...any) {
	if err == nil {
		return
	}
	Default().failNoErr(2, "CheckNoErr", err, v)
}
