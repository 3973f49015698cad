package logger

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCheck_Death(t *testing.T) {
	expectDeath(t, "check", func() { Check(false) }, "Check failed: false ")
	Check(true)

	expectDeath(t, "check_eq", func() { CheckEq(0, 1) }, "Check failed: 0 == 1 ")
	CheckEq(0, 0)

	expectDeath(t, "check_streq", func() { CheckStrEq("foo", "bar") }, `Check failed: "foo" == "bar"`)
	CheckStrEq("foo", "foo")
}

func TestCheck_PassingChecksAreSilent(t *testing.T) {
	buf := captureStderr(t)

	Check(true)
	CheckEq("a", "a")
	CheckNe(1, 2)
	CheckLt(1, 2)
	CheckLe(2, 2)
	CheckGt(3, 2)
	CheckGe(3, 3)
	CheckStrEq("foo", "foo")
	CheckStrNe("foo", "bar")
	CheckNoErr(nil)

	require.Zero(t, buf.Len(), "passing checks must not log: %q", buf.String())
}

func TestCheck_BooleanDiagnostic(t *testing.T) {
	buf := captureStderr(t)

	expectAbort(t, func() { Check(false) })
	require.Regexp(t, logPattern(Fatal, "Check failed: false "), buf.String())

	buf.Reset()
	n := 1
	expectAbort(t, func() { Check(n > 2, "n is ", n) })
	require.Contains(t, buf.String(), "] Check failed: n > 2 n is 1\n")
}

func TestCheck_TwoChecksOnOneLineUseValueText(t *testing.T) {
	buf := captureStderr(t)
	a, b := true, false

	expectAbort(t, func() { Check(a); Check(b) })
	require.Contains(t, buf.String(), "] Check failed: false \n")
	require.NotContains(t, buf.String(), "Check failed: a ")
}

func TestCheck_ComparisonDiagnostics(t *testing.T) {
	buf := captureStderr(t)

	cases := []struct {
		name string
		call func()
		want string
	}{
		{"eq literals", func() { CheckEq(0, 1) }, "Check failed: 0 == 1 \n"},
		{"ne", func() { CheckNe(2, 2) }, "Check failed: 2 != 2 \n"},
		{"lt", func() { CheckLt(10, 5) }, "Check failed: 10 < 5 \n"},
		{"le", func() { CheckLe(10, 5) }, "Check failed: 10 <= 5 \n"},
		{"gt", func() { CheckGt(1.5, 2.5) }, "Check failed: 1.5 > 2.5 \n"},
		{"ge", func() { CheckGe("a", "b") }, `Check failed: "a" >= "b" ` + "\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			expectAbort(t, tc.call)
			require.Contains(t, buf.String(), tc.want)
			require.Regexp(t, `^F\s+\d+\s+\d+ check_test\.go:\d+\] `, buf.String())
		})
	}
}

func TestCheck_ValuesShownForExpressions(t *testing.T) {
	buf := captureStderr(t)
	got, want := 3, 4

	expectAbort(t, func() { CheckEq(got, want) })
	require.Contains(t, buf.String(), "Check failed: got == want (got=3, want=4) \n")

	buf.Reset()
	expectAbort(t, func() {
		CheckEq(
			got+1,
			5,
			"off by one",
		)
	})
	require.Contains(t, buf.String(), "Check failed: got+1 == 5 (got+1=4, 5=5) off by one\n")
}

func TestCheckStrEq_Diagnostics(t *testing.T) {
	buf := captureStderr(t)

	expectAbort(t, func() { CheckStrEq("foo", "bar") })
	require.Regexp(t, logPattern(Fatal, `Check failed: "foo" == "bar"`), buf.String())

	buf.Reset()
	expectAbort(t, func() { CheckStrNe("foo", "foo", "names must differ") })
	require.Contains(t, buf.String(), `Check failed: "foo" != "foo" names must differ`)
}

func TestCheckNoErr_Diagnostic(t *testing.T) {
	buf := captureStderr(t)
	err := errors.New("boom")

	expectAbort(t, func() { CheckNoErr(err) })
	require.Contains(t, buf.String(), "Check failed: err == nil (err=boom) \n")
}

func TestLoggerCheck_Methods(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, nil)
	l.abort = func() { panic(errAborted) }

	require.PanicsWithValue(t, errAborted, func() { l.Check(len("abc") == 4) })
	require.Contains(t, buf.String(), `Check failed: len("abc") == 4 `)

	buf.Reset()
	require.PanicsWithValue(t, errAborted, func() { l.CheckStrEq("x", "y") })
	require.Contains(t, buf.String(), `Check failed: "x" == "y"`)

	buf.Reset()
	require.PanicsWithValue(t, errAborted, func() { l.CheckNoErr(errors.New("nope")) })
	require.Contains(t, buf.String(), `Check failed: errors.New("nope") == nil (errors.New("nope")=nope) `)

	buf.Reset()
	l.Check(true)
	l.CheckStrNe("x", "y")
	l.CheckNoErr(nil)
	require.Empty(t, buf.String())
}

func TestCheck_FallbackWithoutSource(t *testing.T) {
	require.Equal(t, "false", argText(nil, 0, false))
	require.Equal(t, "0 == 1 ", opDiagnostic(argText(nil, 0, 0), "==", argText(nil, 1, 1), 0, 1))
}
