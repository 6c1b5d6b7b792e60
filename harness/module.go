package harness

import (
	"github.com/reusee/dscope"
	"github.com/reusee/regstack/logs"
	"github.com/reusee/regstack/vmconfigs"
)

type Module struct {
	dscope.Module
	VMConfigs vmconfigs.Module
	Logs      logs.Module
}
