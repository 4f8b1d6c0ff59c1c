package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogFiltersByLevelAndCategory(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	level, categories := GLOBAL_LOG_LEVEL, GLOBAL_LOG_CATEGORIES
	defer func() {
		GLOBAL_LOG_LEVEL, GLOBAL_LOG_CATEGORIES = level, categories
		SetLogOutput(nil)
	}()

	GLOBAL_LOG_LEVEL = LogLevelInfo
	GLOBAL_LOG_CATEGORIES = LogModifier
	LogModifierInfo("shown")
	LogModifierDebug("too verbose")
	LogExplosionInfo("wrong category")
	LogConfigError("config error")

	out := buf.String()
	if !strings.Contains(out, "shown\n") {
		t.Errorf("expected lines missing: %q", out)
	}
	if strings.Contains(out, "too verbose") || strings.Contains(out, "wrong category") || strings.Contains(out, "config error") {
		t.Errorf("filtered lines leaked: %q", out)
	}
}
