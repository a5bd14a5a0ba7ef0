package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the global logger from config, replacing any previous one.
func InitLogger(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		instance.Close()
	}
	instance = logger
	return nil
}

// GetGlobalLogger returns the global logger. Before InitLogger has been
// called it returns a console-only logger at info level.
func GetGlobalLogger() *Logger {
	mu.RLock()
	logger := instance
	mu.RUnlock()
	if logger != nil {
		return logger
	}

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance, _ = NewLogger(&Config{Level: LevelInfo})
	}
	return instance
}
