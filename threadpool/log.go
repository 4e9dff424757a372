package threadpool

import (
	"github.com/cruxnet/cruxd/logger"
	"github.com/cruxnet/cruxd/util/panics"
)

var log = logger.RegisterSubSystem("TPOL")
var spawn = panics.GoroutineWrapperFunc(log)
