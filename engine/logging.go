package engine

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// zerologGlobal returns the package-wide default logger. Using the
// global logger directly (rather than a hand-rolled no-op) matches how
// czcorpus-vert-tagextract/proc/inserting.go logs without requiring
// every caller to configure one first.
func zerologGlobal() zerolog.Logger {
	return log.Logger
}
