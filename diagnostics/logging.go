// Package diagnostics provides optional, caller-invoked GPU telemetry and
// structured logging for tools built on top of the engine package. Nothing
// here is called by the sort engine itself: command-buffer recording must
// stay allocation-free and side-effect-free, so any logging happens at the
// call sites that build and submit work, never inside Sort/SortIndirect.
package diagnostics

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once
var singleton *log.Logger

func getLogger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "vkradixsort",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// SetLevel adjusts the package logger's verbosity.
func SetLevel(level log.Level) {
	getLogger().SetLevel(level)
}

func Debug(msg string, args ...interface{}) { getLogger().Debug(msg, args...) }
func Info(msg string, args ...interface{})  { getLogger().Info(msg, args...) }
func Warn(msg string, args ...interface{})  { getLogger().Warn(msg, args...) }
func Error(msg string, args ...interface{}) { getLogger().Error(msg, args...) }
