package debugs

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/regstack/dispatch"
	"github.com/reusee/regstack/harness"
	"github.com/reusee/regstack/logs"
	"github.com/reusee/regstack/modes"
	"go.starlark.net/starlark"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return io.Discard
		},
	)
}

func TestTap(t *testing.T) {
	testScope(t).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestExecRun(t *testing.T) {
	testScope(t).Call(func(
		exec Exec,
		globals Globals,
	) {
		ret, err := exec(t.Context(), "test.star", `
a = run("register/fib", [10])
b = run("stack/fib-naive", [10], strategy = "unchecked")
n = len(programs)
s = strategies[1]
text = disasm("stack/fib-smart")
`, globals(nil))
		if err != nil {
			t.Fatal(err)
		}
		if ret["a"] != starlark.Float(55) {
			t.Fatalf("got %v", ret["a"])
		}
		if ret["b"] != starlark.Float(55) {
			t.Fatalf("got %v", ret["b"])
		}
		if n, _ := starlark.AsInt32(ret["n"]); n != len(harness.Variants()) {
			t.Fatalf("got %v", ret["n"])
		}
		if ret["s"] != starlark.String("unchecked") {
			t.Fatalf("got %v", ret["s"])
		}
		if !strings.Contains(ret["text"].String(), "return") {
			t.Fatalf("got %v", ret["text"])
		}
	})
}

func TestExecErrors(t *testing.T) {
	testScope(t).Call(func(
		exec Exec,
		globals Globals,
	) {
		for _, src := range []string{
			`run("nope", [1])`,
			`run("register/fib", [1, 2])`,
			`run("register/fib", ["x"])`,
			`run("register/fib", [1], strategy = "jit")`,
			`disasm("nope")`,
		} {
			if _, err := exec(t.Context(), "test.star", src, globals(nil)); err == nil {
				t.Fatalf("should error: %s", src)
			}
		}
	})
}

func TestExecReport(t *testing.T) {
	testScope(t).Call(func(
		exec Exec,
		globals Globals,
	) {
		v, err := harness.Lookup("register/mandel")
		if err != nil {
			t.Fatal(err)
		}
		report := &harness.Report{
			Results: []harness.Result{
				{
					Case: harness.Case{
						Variant:  v,
						Strategy: dispatch.Unchecked,
					},
					Inputs: 3,
				},
			},
		}
		ret, err := exec(t.Context(), "test.star", `
ok = len(report["Mismatches"]) == 0
strategy = report["Results"][0]["Case"]["Strategy"]
name = report["Results"][0]["Case"]["Variant"]["Name"]
`, globals(report))
		if err != nil {
			t.Fatal(err)
		}
		if ret["ok"] != starlark.True {
			t.Fatalf("got %v", ret["ok"])
		}
		if ret["strategy"] != starlark.String("unchecked") {
			t.Fatalf("got %v", ret["strategy"])
		}
		if ret["name"] != starlark.String("register/mandel") {
			t.Fatalf("got %v", ret["name"])
		}
	})
}

func TestExecCanceled(t *testing.T) {
	testScope(t).Call(func(
		exec Exec,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := exec(ctx, "test.star", `
x = 0
while True:
    x += 1
`, nil)
		if err == nil {
			t.Fatal("should error")
		}
	})
}
