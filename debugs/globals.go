package debugs

import (
	"fmt"

	"github.com/reusee/regstack/dispatch"
	"github.com/reusee/regstack/harness"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// Globals builds the REPL scope: program names, strategies, run and disasm
// builtins, and report if one is given.
type Globals func(report *harness.Report) map[string]any

func (Module) Globals(
	run harness.Run,
) Globals {
	return func(report *harness.Report) map[string]any {
		var names []string
		for _, v := range harness.Variants() {
			names = append(names, v.Name)
		}

		ret := map[string]any{
			"programs":   names,
			"strategies": dispatch.Strategies(),

			// run(name, args, strategy="checked")
			"run": starlark.NewBuiltin("run", func(
				thread *starlark.Thread,
				fn *starlark.Builtin,
				args starlark.Tuple,
				kwargs []starlark.Tuple,
			) (starlark.Value, error) {
				var name string
				var list *starlark.List
				strategyName := dispatch.Checked.String()
				if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
					"name", &name,
					"args", &list,
					"strategy?", &strategyName,
				); err != nil {
					return nil, err
				}
				strategy, err := dispatch.ParseStrategy(strategyName)
				if err != nil {
					return nil, err
				}
				values := make([]float64, list.Len())
				for i := range values {
					f, ok := starlark.AsFloat(list.Index(i))
					if !ok {
						return nil, fmt.Errorf("%s: args[%d]: want a number, got %s", fn.Name(), i, list.Index(i).Type())
					}
					values[i] = f
				}
				result, err := run(name, strategy, values)
				if err != nil {
					return nil, err
				}
				return starlark.Float(result), nil
			}),

			"disasm": starlarkutil.MakeFunc("disasm", func(name string) (string, error) {
				v, err := harness.Lookup(name)
				if err != nil {
					return "", err
				}
				return v.Disassemble(), nil
			}),
		}

		if report != nil {
			ret["report"] = report
		}
		return ret
	}
}
