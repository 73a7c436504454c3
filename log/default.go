package log

import (
	"sync"

	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
)

var defaultLogger Logger = logger{zap.NewNop().Sugar(), NewInput{}}
var defaultLoggerLock sync.Mutex

// Default returns the current default logger. Until InitDefault is called it
// discards everything.
func Default() Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	return defaultLogger
}

// InitDefault will create a new logger with the given settings
// and will set it as the default global logger.
func InitDefault(input NewInput) stackerr.Error {
	l, err := New(input)
	if err != nil {
		return err
	}
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	defaultLogger = l
	return nil
}

// SweetenDefaultLogger will add fields to the default logger.
func SweetenDefaultLogger(fields map[string]any) stackerr.Error {
	input := Default().Config()
	for k, v := range fields {
		input.InitialFields[k] = v
	}
	return InitDefault(input)
}
