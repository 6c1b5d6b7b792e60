package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
program?: string
limit?: int
args?: [...number]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var program string
	err := loader.AssignFirst("program", &program)
	if err != nil {
		t.Fatal(err)
	}
	if program != "register/fib" {
		t.Fatalf("got %q", program)
	}

	var args []float64
	err = loader.AssignFirst("args", &args)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", args); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &args)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var programs []string
	for value, err := range loader.IterCueValues("program") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		programs = append(programs, s)
	}
	if str := fmt.Sprintf("%v", programs); str != "[register/fib stack/mandel-smart]" {
		t.Fatalf("got %q", str)
	}

	// only the first file sets limit
	n := 0
	for _, err := range loader.IterCueValues("limit") {
		if err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != 1 {
		t.Fatalf("got %d", n)
	}

	if str := fmt.Sprintf("%v", loader.Paths()); str != "[testdata/test.cue testdata/test2.cue]" {
		t.Fatalf("got %q", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var program string
	err := loader.AssignFirst("unknown_field", &program)
	if err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/missing.cue",
	}, testSchema)
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	if n := First[int](loader, "limit"); n != 0 {
		t.Fatalf("got %v", n)
	}
}
