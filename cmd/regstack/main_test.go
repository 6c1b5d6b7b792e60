package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/regstack/dispatch"
	"github.com/reusee/regstack/harness"
	"github.com/reusee/regstack/logs"
	"github.com/reusee/regstack/modes"
	"github.com/reusee/regstack/vmconfigs"
)

func testScope(t *testing.T) dscope.Scope {
	t.Cleanup(func() {
		*checkFlag = false
		*runFlag = false
		*listFlag = false
		*programFlag = ""
		*argsFlag = nil
		*execFlag = ""
	})
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() vmconfigs.ConfigDirs {
			return vmconfigs.ConfigDirs{"testdata"}
		},
		func() logs.Writer {
			return io.Discard
		},
	)
}

func TestList(t *testing.T) {
	scope := testScope(t)
	*listFlag = true
	out := new(bytes.Buffer)
	if err := execute(t.Context(), scope, out); err != nil {
		t.Fatal(err)
	}
	for _, v := range harness.Variants() {
		if !strings.Contains(out.String(), v.Name+"\t") {
			t.Fatalf("%s not listed", v.Name)
		}
	}
}

func TestRun(t *testing.T) {
	scope := testScope(t)
	*runFlag = true
	*programFlag = "register/fib"
	*argsFlag = []float64{10}
	out := new(bytes.Buffer)
	if err := execute(t.Context(), scope, out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(dispatch.Strategies()) {
		t.Fatalf("got %q", out.String())
	}
	if lines[0] != "register/fib\tchecked\t55" {
		t.Fatalf("got %q", lines[0])
	}
	if lines[1] != "register/fib\tunchecked\t55" {
		t.Fatalf("got %q", lines[1])
	}
}

func TestRunErrors(t *testing.T) {
	scope := testScope(t)
	*runFlag = true
	if err := execute(t.Context(), scope, io.Discard); err == nil {
		t.Fatal("should error")
	}
	*programFlag = "stack/fib-smart"
	*argsFlag = []float64{1, 2}
	if err := execute(t.Context(), scope, io.Discard); err == nil {
		t.Fatal("should error")
	}
}

func TestCheckAndExec(t *testing.T) {
	scope := testScope(t)
	*checkFlag = true
	*execFlag = "testdata/script.star"
	out := new(bytes.Buffer)
	if err := execute(t.Context(), scope, out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "stack/mandel-smart-no-dup@unchecked\t4 inputs") {
		t.Fatalf("got %q", out.String())
	}
	if !strings.Contains(out.String(), "ok: 22 cases") {
		t.Fatalf("got %q", out.String())
	}
}

func TestInvalidConfig(t *testing.T) {
	scope := testScope(t).Fork(
		func() vmconfigs.ConfigDirs {
			return vmconfigs.ConfigDirs{"testdata/invalid"}
		},
	)
	*checkFlag = true
	out := new(bytes.Buffer)
	err := execute(t.Context(), scope, out)
	if err == nil {
		t.Fatal("should error")
	}
	if errors.Is(err, harness.ErrMismatch) {
		t.Fatalf("got %v", err)
	}
	if out.Len() > 0 {
		t.Fatalf("got %q", out.String())
	}
}
