package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(new(ModuleForProduction)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestModeString(t *testing.T) {
	if s := ModeDevelopment.String(); s != "development" {
		t.Fatalf("got %s", s)
	}
	if s := Mode(0).String(); s != "Mode(0)" {
		t.Fatalf("got %s", s)
	}
}
