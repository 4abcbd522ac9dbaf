package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelDebug
	LevelTrace
)

// FlagTimestamp adds a timestamp to every entry; it is the default.
const FlagTimestamp = 1

type Logger struct {
	sugar     *zap.SugaredLogger
	out       io.Writer
	prefix    string
	flags     int
	level     LogLevel
	isVerbose bool
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.prefix = prefix
	}
}

// WithFlags controls entry decoration. Zero drops the timestamp.
func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.flags = flags
	}
}

func New(options ...Option) *Logger {
	l := &Logger{
		out:       os.Stdout,
		flags:     FlagTimestamp,
		level:     LevelInfo,
		isVerbose: false,
	}

	for _, opt := range options {
		opt(l)
	}

	encCfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		ConsoleSeparator: " ",
	}
	if l.flags != 0 {
		encCfg.TimeKey = "time"
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(l.out),
		zapcore.DebugLevel,
	)
	l.sugar = zap.New(core).Sugar()

	return l
}

func (l *Logger) SetVerbose(verbose bool) {
	l.isVerbose = verbose
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(l.prefix+format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.isVerbose || l.level >= LevelDebug {
		l.sugar.Debugf(l.prefix+format, args...)
	}
}

func (l *Logger) Trace(format string, args ...interface{}) {
	if l.level >= LevelTrace {
		l.sugar.Debugf(l.prefix+"TRACE: "+format, args...)
	}
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.sugar.Fatalf(l.prefix+format, args...)
}

func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
