package logging

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ANSI color codes for terminal output
const (
	colorRed    = "\033[97;41m" // White text on red background
	colorGreen  = "\033[97;42m" // White text on green background
	colorYellow = "\033[90;43m" // Black text on yellow background
	colorBlue   = "\033[97;44m" // White text on blue background
	colorCyan   = "\033[97;46m" // White text on cyan background
	colorReset  = "\033[0m"
)

// Log levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

type Logger struct {
	*log.Logger
	writer *lumberjack.Logger
	level  int
}

func NewLogger(config *Config) (*Logger, error) {
	if config.Level == "" {
		config.Level = LevelInfo
	}
	config.Level = strings.ToLower(config.Level)

	if config.File == "" {
		return newStdoutLogger(config.Level), nil
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Expand home directory in log file path
	logFile := config.File
	if strings.HasPrefix(logFile, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		logFile = filepath.Join(homeDir, logFile[2:])
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    config.MaxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   true,
	}

	return &Logger{
		Logger: log.New(io.MultiWriter(writer, os.Stdout), "", log.LstdFlags),
		writer: writer,
		level:  levelRank[config.Level],
	}, nil
}

func newStdoutLogger(level string) *Logger {
	rank, ok := levelRank[level]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	return &Logger{
		Logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  rank,
	}
}

// Close flushes and closes the rotating file, if any
func (l *Logger) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

func (l *Logger) logf(level, prefix, format string, v ...interface{}) {
	if levelRank[level] < l.level {
		return
	}
	l.Printf(prefix+colorReset+" "+format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, colorBlue+"[DEBUG]", format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, colorGreen+"[INFO]", format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, colorYellow+"[WARN]", format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, colorRed+"[ERROR]", format, v...)
}

// FormatHTTPMethod returns a colored string based on the HTTP method
func (l *Logger) FormatHTTPMethod(method string) string {
	var color string
	switch method {
	case http.MethodGet:
		color = colorBlue
	case http.MethodPost:
		color = colorCyan
	case http.MethodPut, http.MethodPatch:
		color = colorYellow
	case http.MethodDelete:
		color = colorRed
	default:
		color = colorBlue
	}
	return fmt.Sprintf("%s %s %s", color, method, colorReset)
}

// FormatHTTPStatus returns a colored string based on the status code
func (l *Logger) FormatHTTPStatus(status int) string {
	var color string
	switch {
	case status >= 500:
		color = colorRed
	case status >= 400:
		color = colorYellow
	case status >= 300:
		color = colorCyan
	case status >= 200:
		color = colorGreen
	default:
		color = colorBlue
	}
	return fmt.Sprintf("%s %d %s", color, status, colorReset)
}

// LogHTTPRequest logs an HTTP request with colored output
func (l *Logger) LogHTTPRequest(method, path, clientIP, requestID string, status, bytes int, latency string) {
	l.Printf("[HTTP] %s | %15s | %-17s | %s | %d bytes | %s | %s",
		l.FormatHTTPStatus(status),
		clientIP,
		l.FormatHTTPMethod(method),
		path,
		bytes,
		latency,
		requestID,
	)
}

// LogHTTPError logs a failed HTTP request together with its cause
func (l *Logger) LogHTTPError(method, path, clientIP string, status int, message string, err error) {
	l.Printf("[HTTP-ERROR] %s | %15s | %-17s | %s | %s: %v",
		l.FormatHTTPStatus(status),
		clientIP,
		l.FormatHTTPMethod(method),
		path,
		message,
		err,
	)
}
