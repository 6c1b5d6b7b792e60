package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/regstack/dispatch"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var limit int
	executor.Define("+limit", Func(func() {
		limit = 10000
	}))
	executor.Define("limit", Func(func(i int) {
		limit = i
	}))

	if err := executor.Execute([]string{
		"+limit",
	}); err != nil {
		t.Fatal(err)
	}
	if limit != 10000 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"limit", "500",
	}); err != nil {
		t.Fatal(err)
	}
	if limit != 500 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"limit", "many",
	})
	if !strings.Contains(err.Error(), "convert many to int") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errBad := errors.New("bad")
	executor.Define("fail", Func(func() error {
		return errBad
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, errBad) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var checked bool
	var n int
	executor.Define("bench", Sub(map[string]*Command{
		"checked": Func(func() {
			checked = true
		}),
		"n": Func(func(i int) {
			n = i
		}),
	}))

	if err := executor.Execute([]string{
		"bench",
		"checked",
		"n", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if !checked {
		t.Fatal()
	}
	if n != 42 {
		t.Fatal()
	}

	// sub commands are only visible after their parent
	if err := executor.Execute([]string{"checked"}); err == nil {
		t.Fatal("should fail")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}
}

func TestTextArgument(t *testing.T) {
	executor := NewExecutor()
	var strategy dispatch.Strategy
	executor.Define("-strategy", Func(func(s dispatch.Strategy) {
		strategy = s
	}))
	if err := executor.Execute([]string{"-strategy", "unchecked"}); err != nil {
		t.Fatal(err)
	}
	if strategy != dispatch.Unchecked {
		t.Fatalf("got %v", strategy)
	}
	err := executor.Execute([]string{"-strategy", "turbo"})
	if !errors.Is(err, dispatch.ErrUnknownStrategy) {
		t.Fatalf("got %v", err)
	}
}

func TestSliceArgument(t *testing.T) {
	executor := NewExecutor()
	var args []float64
	executor.Define("-args", Func(func(v []float64) {
		args = v
	}))
	if err := executor.Execute([]string{"-args", "0.25, -0.5,10000"}); err != nil {
		t.Fatal(err)
	}
	if len(args) != 3 || args[0] != 0.25 || args[1] != -0.5 || args[2] != 10000 {
		t.Fatalf("got %v", args)
	}
	if err := executor.Execute([]string{"-args", ""}); err != nil {
		t.Fatal(err)
	}
	if len(args) != 0 {
		t.Fatalf("got %v", args)
	}
	if err := executor.Execute([]string{"-args", "1,x"}); err == nil {
		t.Fatal("should fail")
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.output = buf
	executor.Define("bench", Sub(map[string]*Command{
		"fib": Func(func(n int) {
		}).Desc("FIB"),
		"mandel": Sub(map[string]*Command{
			"smart": Func(func() {}).Desc("SMART"),
		}).Desc("MANDEL"),
	}).Desc("BENCH"))
	executor.PrintUsage()

	out := buf.String()
	for _, want := range []string{
		"bench\tBENCH",
		"  fib <int>\tFIB",
		"  mandel\tMANDEL",
		"    smart\tSMART",
		"--help, -h, -help, help\tprint this usage",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}
