package log

import (
	"sort"

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
	// itself attached as a field.
	Error(err error)

	With(args ...interface{}) Logger
	WithError(err error) Logger

	// Config gets the config values that can be used to re-create this logger
	Config() NewInput

	// Sync flushes any buffered log entries.
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
	config NewInput
}

func (l logger) Config() NewInput {
	return l.config.Clone()
}

func (l logger) Error(err error) {
	l.SugaredLogger.WithOptions(zap.AddCallerSkip(1)).Errorw(err.Error(), zap.Error(err))
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone()}
}

func (l logger) WithError(err error) Logger {
	return l.With(zap.Error(err))
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	InitialFields map[string]any
	// OutputPaths are zap sink URLs or file paths. Defaults to stderr so
	// that logs never mix with command output on stdout.
	OutputPaths []string
}

func (ni *NewInput) Clone() NewInput {
	fields := make(map[string]any, len(ni.InitialFields))
	for k, v := range ni.InitialFields {
		fields[k] = v
	}
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		InitialFields: fields,
		OutputPaths:   append([]string(nil), ni.OutputPaths...),
	}
}

// New creates a logger. Development loggers write capitalized, human
// readable lines; all others write JSON.
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

	outputPaths := input.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = []string{"stderr"}
	}
	sink, _, err := zap.Open(outputPaths...)
	if err != nil {
		return nil, stackerr.Wrap(err)
	}

	buildOpts := []zap.Option{
		zap.ErrorOutput(sink),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	}
	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	}

	// Add any initial field as a build option, in a stable order
	if len(input.InitialFields) > 0 {
		keys := make([]string, 0, len(input.InitialFields))
		for k := range input.InitialFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fs := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			fs = append(fs, zap.Any(k, input.InitialFields[k]))
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(input.Level))
	zapLogger := zap.New(core, buildOpts...)
	if input.Name != "" {
		zapLogger = zapLogger.Named(input.Name)
	}

	return logger{zapLogger.Sugar(), input.Clone()}, nil
}
