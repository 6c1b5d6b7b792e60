package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/regstack/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func predeclared(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// Tap opens a REPL on stdin with globals in scope and returns when it reads EOF.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, predeclared(globals))
	}
}

// Exec runs a script with globals in scope and returns its top level bindings.
type Exec func(ctx context.Context, filename string, src string, globals map[string]any) (starlark.StringDict, error)

func (Module) Exec(
	logger logs.Logger,
) Exec {
	return func(ctx context.Context, filename string, src string, globals map[string]any) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "script", filename)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()
		ret, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, predeclared(globals))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return ret, nil
	}
}
