package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how a machine fetches instructions and addresses its storage.
type Strategy uint8

const (
	// Checked indexes slices and lets the runtime bounds checks fail loudly.
	Checked Strategy = iota + 1
	// Unchecked computes raw offsets from a base pointer. Only valid for
	// well-formed programs.
	Unchecked
)

var ErrUnknownStrategy = errors.New("unknown strategy")

func Strategies() []Strategy {
	return []Strategy{Checked, Unchecked}
}

func (s Strategy) String() string {
	switch s {
	case Checked:
		return "checked"
	case Unchecked:
		return "unchecked"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

func ParseStrategy(str string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "checked", "safe":
		return Checked, nil
	case "unchecked", "fast", "unsafe":
		return Unchecked, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, str)
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
