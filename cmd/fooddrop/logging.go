package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// maxLogSize triggers rotation of the previous run's log
const maxLogSize = 10 * 1024 * 1024

// setupLogging returns a logger writing to path when debug is set, discarding otherwise
// The terminal belongs to the game, so logs never go to stdout or stderr
func setupLogging(debug bool, path string) (*logrus.Logger, *os.File, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	if !debug {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.WarnLevel)
		return logger, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	if err := rotateLog(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return logger, f, nil
}

// rotateLog renames an oversized log to name-<timestamp>.ext
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
