package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mwaldt/packwise/pkg/logging"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger()
	logger.SetWriter(&buf)

	logger.Infof("hello %s", "world")
	logger.Warnf("watch out")
	logger.Errorf("boom")

	output := buf.String()
	for _, expected := range []string{"INFO", "hello world", "WARN", "watch out", "ERROR", "boom"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected output to contain %q, got:\n%s", expected, output)
		}
	}
}

func TestLoggerDebugGate(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger()
	logger.SetWriter(&buf)

	logger.Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("Expected debug output to be suppressed by default")
	}

	logger.SetDebug(true)
	if !logger.IsDebugEnabled() {
		t.Error("Expected debug to be enabled")
	}
	logger.Debugf("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("Expected debug output after enabling debug")
	}
}
