package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/regstack/debugs"
	"github.com/reusee/regstack/harness"
)

type Module struct {
	dscope.Module
	Harness harness.Module
	Debugs  debugs.Module
}
