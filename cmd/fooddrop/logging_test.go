package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fooddrop.log")

	logger, logFile, err := setupLogging(false, path)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if logger.Out != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", logger.Out)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no log file to be created")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	path := filepath.Join(logDir, "fooddrop.log")

	logger, logFile, err := setupLogging(true, path)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	logger.WithField("frame", 1).Debug("Test log message")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test log message") || !strings.Contains(string(data), "frame=1") {
		t.Errorf("Expected log file to contain the entry, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	logDir := t.TempDir()
	path := filepath.Join(logDir, "fooddrop.log")

	// Write just over 10MB
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile, err := setupLogging(true, path)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != "fooddrop.log" && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	logger, logFile, err := setupLogging(true, filepath.Join(t.TempDir(), "fooddrop.log"))
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer logFile.Close()

	if logger.Out == os.Stdout {
		t.Error("Log output should not be stdout")
	}
	if logger.Out == os.Stderr {
		t.Error("Log output should not be stderr")
	}
}
