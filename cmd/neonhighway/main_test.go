package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogFileClosedAfterCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neon.log")
	flagLogLevel, flagLogFile = "info", path
	t.Cleanup(func() {
		flagLogFile = ""
		closeLogFile()
	})

	if err := setup(playCmd, nil); err != nil {
		t.Fatalf("setup: %v", err)
	}
	f := logFile
	if f == nil {
		t.Fatal("log file not opened")
	}
	logger.Info("hello")

	rootCmd.PersistentPostRun(playCmd, nil)
	if logFile != nil {
		t.Error("log file handle kept after the command")
	}
	if _, err := f.WriteString("late"); err == nil {
		t.Error("log file still writable after close")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log = %q", data)
	}
}

func TestCloseLogFileWithoutFile(t *testing.T) {
	logFile = nil
	closeLogFile()
}
