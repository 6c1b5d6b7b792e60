package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/regstack/cmds"
	"github.com/reusee/regstack/configs"
	"github.com/reusee/regstack/debugs"
	"github.com/reusee/regstack/harness"
	"github.com/reusee/regstack/logs"
	"github.com/reusee/regstack/modes"
	"github.com/reusee/regstack/vmconfigs"
)

var (
	checkFlag   = cmds.Switch("check", "run every program under every strategy against the reference")
	runFlag     = cmds.Switch("run", "run the program given by -program with -args")
	listFlag    = cmds.Switch("list", "print every program with its disassembly")
	tapFlag     = cmds.Switch("-tap", "open a starlark repl after other commands")
	programFlag = cmds.Var[string]("-program", "program name, see list")
	argsFlag    = cmds.Var[[]float64]("-args", "comma separated program arguments")
	execFlag    = cmds.Var[string]("-exec", "starlark script to run after other commands")
)

func main() {
	cmds.Execute(os.Args[1:])
	if !*checkFlag && !*runFlag && !*listFlag && !*tapFlag && *execFlag == "" {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if err := execute(context.Background(), scope, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, harness.ErrMismatch) {
			os.Exit(1)
		}
		os.Exit(3)
	}
}

func execute(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
	defer he(&err)

	// providers read config values, fail here rather than inside them
	scope.Call(func(
		loader configs.Loader,
	) {
		ce(loader.Err())
	})

	var (
		report  *harness.Report
		failure error
	)

	scope.Call(func(
		logger logs.Logger,
		check harness.Check,
		run harness.Run,
		strategies vmconfigs.Strategies,
		globals debugs.Globals,
		tap debugs.Tap,
		exec debugs.Exec,
	) {

		if *listFlag {
			for _, v := range harness.Variants() {
				_, err := fmt.Fprintf(out, "%s\t%s, %d arguments\n%s\n",
					v.Name, v.Algorithm, v.Algorithm.Arity(), v.Disassemble())
				ce(err)
			}
		}

		if *runFlag {
			if *programFlag == "" {
				ce(errors.New("run: -program is required"))
			}
			for _, strategy := range strategies {
				result, err := run(*programFlag, strategy, *argsFlag)
				ce(err)
				_, err = fmt.Fprintf(out, "%s\t%v\t%v\n", *programFlag, strategy, result)
				ce(err)
			}
		}

		if *checkFlag {
			r, err := check(ctx)
			if err != nil && !errors.Is(err, harness.ErrMismatch) {
				ce(err)
			}
			report = &r
			failure = err
			for _, result := range r.Results {
				_, err := fmt.Fprintf(out, "%v\t%d inputs\t%v\n",
					result.Case, result.Inputs, result.Elapsed)
				ce(err)
			}
			if r.OK() {
				_, err := fmt.Fprintf(out, "ok: %d cases\n", len(r.Results))
				ce(err)
			}
		}

		if *execFlag != "" {
			src, err := os.ReadFile(*execFlag)
			ce(err)
			_, err = exec(ctx, *execFlag, string(src), globals(report))
			ce(err)
		}

		if *tapFlag {
			tap(ctx, "regstack", globals(report))
		}

		logger.DebugContext(ctx, "done")
	})

	return failure
}
