package modkit

import (
	"promptcorrector/internal/modkit/repokit"
	"promptcorrector/internal/platform/config"
	"promptcorrector/internal/platform/logger"
	"promptcorrector/internal/platform/metrics"
)

// Deps are the process wide dependencies every module may read. Zero
// values are usable in tests, except PG for modules that query
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	Metrics *metrics.Metrics // nil records nothing
}
