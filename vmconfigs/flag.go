package vmconfigs

import (
	"fmt"

	"github.com/reusee/regstack/cmds"
)

// intFlag is an integer flag that remembers whether it was given.
type intFlag struct {
	value int
	set   bool
}

// boundedIntFlag defines name to set a value in [0, max] and name+"." to unset it.
func boundedIntFlag(name string, desc string, max int) *intFlag {
	ret := new(intFlag)

	// set
	cmds.Define(name, cmds.Func(func(n int) error {
		if n < 0 || n > max {
			return fmt.Errorf("%d not in [0, %d]", n, max)
		}
		ret.value = n
		ret.set = true
		return nil
	}).Desc(desc))

	// unset
	cmds.Define(name+".", cmds.Func(func() {
		*ret = intFlag{}
	}).Desc("reset "+name))

	return ret
}
