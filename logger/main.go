package logger

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Init replaces the global zap logger with one built by New. Logs go to
// stderr so stdout stays free for the mapped records.
func Init(level string, format string) error {
	logger, err := New(level, format, zapcore.Lock(os.Stderr))
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// New builds a logger writing to out. An empty level means info and an
// empty format means console.
func New(level string, format string, out zapcore.WriteSyncer) (*zap.Logger, error) {
	enabled, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid LOG_LEVEL")
	}
	encoder, err := newEncoder(format)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(encoder, out, enabled)
	return zap.New(
		core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	switch format {
	case "", FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05"))
		}
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case FormatJSON:
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		return zapcore.NewJSONEncoder(encoderConfig), nil
	}
	return nil, errors.Errorf("invalid LOG_FORMAT %q, expected %s or %s", format, FormatConsole, FormatJSON)
}

func Sync() error {
	return zap.L().Sync()
}
