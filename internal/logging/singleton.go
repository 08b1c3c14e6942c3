package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the process-wide logger from config.
// Calling it again replaces the previous instance.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetGlobalLogger returns the process-wide logger.
// Before InitLogger is called it returns a stdout logger at info level.
func GetGlobalLogger() *Logger {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = newStdoutLogger(LevelInfo)
	}
	return instance
}
