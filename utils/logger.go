package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
)

// InitLogger opens logs/app.log and mirrors output to stdout.
func InitLogger() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return nil
	}

	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "app.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	logFile = file
	mw := io.MultiWriter(os.Stdout, file)
	logger = log.New(mw, "", 0)

	go checkLogRotation()

	return nil
}

func ensureLogger() {
	if logger == nil {
		InitLogger()
	}
	if logger == nil {
		logger = log.New(os.Stdout, "", 0)
	}
}

// LogError records an error entry.
func LogError(message string, err error) {
	ensureLogger()
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	errMsg := fmt.Sprintf("[%s] [ERROR] %s", timestamp, message)
	if err != nil {
		errMsg += fmt.Sprintf(": %v", err)
	}
	logger.Println(errMsg)
}

// LogInfo records an informational entry.
func LogInfo(message string) {
	ensureLogger()
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logger.Printf("[%s] [INFO] %s\n", timestamp, message)
}

func checkLogRotation() {
	for {
		time.Sleep(time.Hour)
		if needRotation() {
			rotateLog()
		}
	}
}

func needRotation() bool {
	if logFile == nil {
		return false
	}

	info, err := logFile.Stat()
	if err != nil {
		return false
	}

	// rotate past 10MB
	return info.Size() > 10*1024*1024
}

func rotateLog() {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return
	}

	logFile.Close()

	oldPath := filepath.Join("logs", "app.log")
	newPath := filepath.Join("logs", fmt.Sprintf("app.%s.log",
		time.Now().Format("20060102150405")))

	os.Rename(oldPath, newPath)

	file, err := os.OpenFile(oldPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger = log.New(os.Stdout, "", 0)
		logFile = nil
		return
	}
	logFile = file
	logger = log.New(io.MultiWriter(os.Stdout, file), "", 0)
}
