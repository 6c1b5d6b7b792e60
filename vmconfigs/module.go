package vmconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/regstack/configs"
	"github.com/reusee/regstack/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
