package logger

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithComponent(name string) Logger
}

type Opts struct {
	Env       string
	SentryUrl string
}

type Impl struct {
	slog *slog.Logger
}

var _ Logger = (*Impl)(nil)

func New(opts Opts) *Impl {
	var handlers []slog.Handler

	if opts.Env == "production" {
		zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
		handlers = append(handlers, slogzerolog.Option{
			Level:  slog.LevelInfo,
			Logger: &zl,
		}.NewZerologHandler())

		if opts.SentryUrl != "" {
			if err := sentry.Init(sentry.ClientOptions{
				Dsn:           opts.SentryUrl,
				Environment:   opts.Env,
				EnableTracing: false,
			}); err == nil {
				handlers = append(handlers, slogsentry.Option{
					Level: slog.LevelError,
				}.NewSentryHandler())
			}
		}
	} else {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
		zl := zerolog.New(writer).With().Timestamp().Logger()
		handlers = append(handlers, slogzerolog.Option{
			Level:  slog.LevelDebug,
			Logger: &zl,
		}.NewZerologHandler())
	}

	return &Impl{slog: slog.New(slogmulti.Fanout(handlers...))}
}

func (l *Impl) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

func (l *Impl) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

func (l *Impl) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

func (l *Impl) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

func (l *Impl) WithComponent(name string) Logger {
	return &Impl{slog: l.slog.With("component", name)}
}

// Printf makes the logger usable as an fx.Printer.
func (l *Impl) Printf(format string, args ...interface{}) {
	l.slog.Debug(fmt.Sprintf(format, args...))
}
