package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String returns the level name.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

type Logger struct {
	mu           sync.Mutex
	logger       *log.Logger
	level        LogLevel
	closer       io.Closer
	enableCaller bool
	debugMode    bool
	exit         func(code int)
}

// Global logger instance
var globalLogger *Logger

// IsDebugEnabled reports whether the global logger is in debug mode
func IsDebugEnabled() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.IsDebugMode()
}

// InitLogger initializes the global logger writing to logPath
func InitLogger(logPath string, level LogLevel, debugMode bool) error {
	logger, err := NewFileOnlyLogger(logPath, level)
	if err != nil {
		return err
	}
	logger.SetDebugMode(debugMode)
	globalLogger = logger
	return nil
}

// SetLogger replaces the global logger
func SetLogger(l *Logger) {
	globalLogger = l
}

// CloseLogger closes the global logger
func CloseLogger() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

// Package level helpers
func Debug(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.IsDebugMode() {
		globalLogger.Debug(format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Info(format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Warn(format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Error(format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Fatal(format, args...)
	}
}

// New creates a logger writing to w
func New(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		logger:       log.New(w, "", 0),
		level:        level,
		enableCaller: true,
		exit:         os.Exit,
	}
}

// NewFileOnlyLogger creates a logger that only writes to file.
// The terminal belongs to the UI, so nothing goes to stdout.
func NewFileOnlyLogger(logPath string, level LogLevel) (*Logger, error) {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := New(file, level)
	logger.closer = file
	return logger, nil
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer != nil {
		err := l.closer.Close()
		l.closer = nil
		return err
	}
	return nil
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// EnableCaller enables/disables caller information in logs
func (l *Logger) EnableCaller(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enableCaller = enable
}

// SetDebugMode enables/disables debug mode
func (l *Logger) SetDebugMode(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugMode = enable
}

// IsDebugMode returns whether debug mode is enabled
func (l *Logger) IsDebugMode() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debugMode
}

// log is the internal logging function
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	var caller string
	if l.enableCaller {
		_, file, line, ok := runtime.Caller(2)
		if ok {
			caller = fmt.Sprintf(" [%s:%d]", filepath.Base(file), line)
		}
	}

	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%s [%s]%s %s", timestamp, level, caller, message)

	if level == FATAL {
		l.exit(1)
	}
}

// Debug logs a debug message (only if debug mode is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.IsDebugMode() {
		l.log(DEBUG, format, args...)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
}
