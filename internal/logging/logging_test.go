package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", File: "x.log", MaxSize: 10}, false},
		{"console only", Config{Level: "debug"}, false},
		{"bad level", Config{Level: "verbose"}, true},
		{"zero size with file", Config{Level: "info", File: "x.log"}, true},
		{"negative backups", Config{Level: "warn", MaxBackups: -1}, true},
		{"negative age", Config{Level: "error", MaxAge: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: LevelWarn, Console: &buf})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below warn were written: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "warn 3") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "error 4") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "portal.log")

	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: LevelInfo, File: logFile, MaxSize: 1, Console: &buf})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello %s", "file")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file content = %q", string(data))
	}
}

func TestGetGlobalLoggerBeforeInit(t *testing.T) {
	if GetGlobalLogger() == nil {
		t.Fatal("GetGlobalLogger returned nil before InitLogger")
	}
}
