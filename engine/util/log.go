package util

import (
	"fmt"
	"io"
	"os"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogModifier | LogEquipment | LogExplosion | LogConfig

var logOutput io.Writer = os.Stderr

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogModifier LogCategory = 1 << iota
	LogEquipment
	LogExplosion
	LogPhysics
	LogStore
	LogConfig
	LogSystem
)

// SetLogOutput redirects all log lines, nil restores stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logOutput = w
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	fmt.Fprintln(logOutput, txt)
}

func LogModifierInfo(txt string) {
	log(LogModifier, LogLevelInfo, txt)
}

func LogModifierDebug(txt string) {
	log(LogModifier, LogLevelDebug, txt)
}

func LogEquipmentDebug(txt string) {
	log(LogEquipment, LogLevelDebug, txt)
}

func LogEquipmentWarning(txt string) {
	log(LogEquipment, LogLevelWarning, txt)
}

func LogExplosionInfo(txt string) {
	log(LogExplosion, LogLevelInfo, txt)
}

func LogExplosionDebug(txt string) {
	log(LogExplosion, LogLevelDebug, txt)
}

func LogPhysicsDebug(txt string) {
	log(LogPhysics, LogLevelDebug, txt)
}

func LogStoreDebug(txt string) {
	log(LogStore, LogLevelDebug, txt)
}

func LogConfigInfo(txt string) {
	log(LogConfig, LogLevelInfo, txt)
}

func LogConfigError(txt string) {
	log(LogConfig, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}
