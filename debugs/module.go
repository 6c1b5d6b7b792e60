package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/regstack/harness"
	"github.com/reusee/regstack/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Harness harness.Module
}
