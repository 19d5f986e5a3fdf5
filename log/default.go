package log

import (
	"sync"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap/zapcore"
)

var defaultLogger Logger
var defaultLoggerLock sync.Mutex

var Debugf func(template string, args ...interface{})
var Infof func(template string, args ...interface{})
var Warnf func(template string, args ...interface{})
var Errorf func(template string, args ...interface{})

var Debugw func(msg string, keysAndValues ...interface{})
var Infow func(msg string, keysAndValues ...interface{})
var Warnw func(msg string, keysAndValues ...interface{})
var Errorw func(msg string, keysAndValues ...interface{})

var Error func(err error)

var With func(args ...interface{}) Logger
var WithError func(err error) Logger

func init() {
	if err := InitDefault(NewInput{
		Name:  "linkedlist",
		Level: zapcore.InfoLevel,
	}); err != nil {
		panic(err)
	}
}

// Default returns the current default logger.
func Default() Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	return defaultLogger
}

// InitDefault will create a new logger with the given settings
// and will set it as the default global logger. This function
// IS NOT thread-safe and cannot be used while other routines
// are using the existing global default logger.
func InitDefault(input NewInput) stackerr.Error {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	l, err := New(input)
	if err != nil {
		return err
	}
	defaultLogger = l

	Debugf = defaultLogger.Debugf
	Infof = defaultLogger.Infof
	Warnf = defaultLogger.Warnf
	Errorf = defaultLogger.Errorf

	Debugw = defaultLogger.Debugw
	Infow = defaultLogger.Infow
	Warnw = defaultLogger.Warnw
	Errorw = defaultLogger.Errorw

	Error = defaultLogger.Error

	With = defaultLogger.With
	WithError = defaultLogger.WithError
	return nil
}

// SweetenDefaultLogger will add fields to the default logger.
func SweetenDefaultLogger(fields map[string]any) stackerr.Error {
	input := Default().Config()
	input.InitialFields = collections.MergeMaps(input.InitialFields, fields)
	return InitDefault(input)
}

// UnsweetenDefaultLogger will remove fields from the default logger.
func UnsweetenDefaultLogger(fieldKeys []string) stackerr.Error {
	input := Default().Config()
	needsUpdate := false
	for _, key := range fieldKeys {
		if _, ok := input.InitialFields[key]; ok {
			needsUpdate = true
			delete(input.InitialFields, key)
		}
	}
	if needsUpdate {
		return InitDefault(input)
	}
	return nil
}

func RegisterDefaultWriteHook(key string, hook WriteHook) stackerr.Error {
	return Default().RegisterWriteHook(key, hook)
}

func DeregisterDefaultWriteHook(key string) stackerr.Error {
	return Default().DeregisterWriteHook(key)
}
