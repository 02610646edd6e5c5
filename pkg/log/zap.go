package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return l.sugar.With(string(requestIDKey), id)
	}
	return l.sugar
}

// Key/value pairs after a leading message are emitted as fields, so
// Info(ctx, "msg", "k", v) behaves like Infow.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	if msg, kv, ok := splitKV(arg); ok {
		s.Debugw(msg, kv...)
		return
	}
	s.Debug(arg...)
}

func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	if msg, kv, ok := splitKV(arg); ok {
		s.Infow(msg, kv...)
		return
	}
	s.Info(arg...)
}

func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	if msg, kv, ok := splitKV(arg); ok {
		s.Warnw(msg, kv...)
		return
	}
	s.Warn(arg...)
}

func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	if msg, kv, ok := splitKV(arg); ok {
		s.Errorw(msg, kv...)
		return
	}
	s.Error(arg...)
}

func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	if msg, kv, ok := splitKV(arg); ok {
		s.DPanicw(msg, kv...)
		return
	}
	s.DPanic(arg...)
}

func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	if msg, kv, ok := splitKV(arg); ok {
		s.Panicw(msg, kv...)
		return
	}
	s.Panic(arg...)
}

func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	s := l.with(ctx)
	if msg, kv, ok := splitKV(arg); ok {
		s.Fatalw(msg, kv...)
		return
	}
	s.Fatal(arg...)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// splitKV reports whether arg looks like (msg, k1, v1, ...).
func splitKV(arg []any) (string, []any, bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", nil, false
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", nil, false
	}
	if _, ok := arg[1].(string); !ok {
		return "", nil, false
	}
	return msg, arg[1:], true
}
