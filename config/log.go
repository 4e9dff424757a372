package config

import (
	"github.com/cruxnet/cruxd/logger"
)

var log = logger.RegisterSubSystem("CNFG")
