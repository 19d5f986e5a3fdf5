package log

import (
	"sort"
	"time"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Error logs the error's message at the Error level, with the error
	// itself attached as the "error" field.
	Error(err error)

	With(args ...interface{}) Logger
	WithOptions(opts ...zap.Option) Logger
	WithError(err error) Logger

	// RegisterWriteHook will register a function hook that will be called
	// for each log write. Loggers derived with With share their hooks.
	RegisterWriteHook(key string, hook WriteHook) stackerr.Error

	// DeregisterWriteHook will deregister a hook that was registered with RegisterWriteHook
	DeregisterWriteHook(key string) stackerr.Error

	// Config gets the config values that can be used to re-create this logger
	Config() NewInput

	// Clone returns a copy of the logger
	Clone() Logger

	Sync() error
}

type logger struct {
	*zap.SugaredLogger
	config NewInput
	hooks  *hookRegistry
}

func (l logger) Clone() Logger {
	return logger{
		SugaredLogger: l.SugaredLogger.With(),
		config:        l.config.Clone(),
		hooks:         l.hooks,
	}
}

func (l logger) Config() NewInput {
	c := l.config.Clone()
	c.WriteHooks = l.hooks.snapshot()
	return c
}

func (l logger) RegisterWriteHook(key string, hook WriteHook) stackerr.Error {
	return l.hooks.register(key, hook)
}

func (l logger) DeregisterWriteHook(key string) stackerr.Error {
	return l.hooks.deregister(key)
}

func (l logger) Error(err error) {
	l.SugaredLogger.WithOptions(zap.AddCallerSkip(1)).Errorw(err.Error(), zap.Error(err))
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone(), l.hooks}
}

func (l logger) WithOptions(opts ...zap.Option) Logger {
	return logger{l.SugaredLogger.WithOptions(opts...), l.config.Clone(), l.hooks}
}

func (l logger) WithError(err error) Logger {
	return l.With(zap.Error(err))
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	// OutputPaths are the sinks the encoded entries are written to, in the
	// form accepted by zap.Open. Defaults to stdout.
	OutputPaths   []string
	WriteHooks    map[string]WriteHook
	InitialFields map[string]any
}

func (ni *NewInput) Clone() NewInput {
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		OutputPaths:   append([]string(nil), ni.OutputPaths...),
		WriteHooks:    collections.CopyMap(ni.WriteHooks),
		InitialFields: collections.CopyMap(ni.InitialFields),
	}
}

func New(input NewInput) (Logger, stackerr.Error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder

	if input.IsDevelopment {
		// If it's development mode, modify some settings
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	if len(input.OutputPaths) == 0 {
		input.OutputPaths = []string{"stdout"}
	}
	sink, closeOut, err := zap.Open(input.OutputPaths...)
	if err != nil {
		return nil, stackerr.Wrap(err)
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		closeOut()
		return nil, stackerr.Wrap(err)
	}

	buildOpts := []zap.Option{
		zap.ErrorOutput(errSink),
	}

	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	}

	// Add the caller field
	buildOpts = append(buildOpts, zap.AddCaller())

	// Add the stacktraces
	buildOpts = append(buildOpts, zap.AddStacktrace(zap.ErrorLevel))

	if !input.IsDevelopment {
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)
		}))
	}

	if input.InitialFields == nil {
		input.InitialFields = map[string]any{}
	}

	// Add any initial field as a build option
	if len(input.InitialFields) > 0 {
		fs := make([]zap.Field, 0, len(input.InitialFields))
		keys := collections.MapKeys(input.InitialFields)
		sort.Strings(keys)
		for _, k := range keys {
			if f, ok := input.InitialFields[k].(zap.Field); ok {
				f.Key = k
				fs = append(fs, f)
			} else {
				fs = append(fs, zap.Any(k, input.InitialFields[k]))
			}
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	hooks := newHookRegistry(input.WriteHooks)
	input.WriteHooks = nil

	zapLogger := zap.New(
		&core{
			LevelEnabler: zap.NewAtomicLevelAt(input.Level),
			enc:          encoder,
			out:          sink,
			fields:       []zapcore.Field{},
			hooks:        hooks,
		},
		buildOpts...,
	)
	if input.Name != "" {
		zapLogger = zapLogger.Named(input.Name)
	}

	return logger{zapLogger.Sugar(), input, hooks}, nil
}
