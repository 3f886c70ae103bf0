package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// capture reinitializes the logger against a buffer, runs f, then restores
// the default stderr logger.
func capture(level Level, format Format, f func()) string {
	var buf bytes.Buffer
	InitLoggerWriter(&buf, level, format)
	f()
	InitLogger(LevelInfo, FormatText)
	return buf.String()
}

func TestJSONOutput(t *testing.T) {
	out := capture(LevelDebug, FormatJSON, func() {
		Warn("malformed verse line", "path", "/data/Genesis.txt", "line", 7)
	})

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if entry["msg"] != "malformed verse line" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["path"] != "/data/Genesis.txt" {
		t.Errorf("path = %v", entry["path"])
	}
}

func TestTextOutput(t *testing.T) {
	out := capture(LevelInfo, FormatText, func() {
		Info("corpus loaded", "works", 66)
	})
	if !strings.Contains(out, "corpus loaded") {
		t.Errorf("text output missing message: %s", out)
	}
	if !strings.Contains(out, "works=66") {
		t.Errorf("text output missing attribute: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	out := capture(LevelWarn, FormatText, func() {
		Debug("hidden")
		Info("also hidden")
		Warn("visible")
		Error("also visible")
	})
	if strings.Contains(out, "hidden") {
		t.Errorf("suppressed levels leaked: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn/error missing: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("json should map to FormatJSON")
	}
	if ParseFormat("text") != FormatText {
		t.Error("text should map to FormatText")
	}
	if ParseFormat("") != FormatText {
		t.Error("unknown formats should fall back to text")
	}
}

func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Fatal("GetLogger returned nil")
	}
}
