// Package logger 基于zap构建结构化日志
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置，与config.LogConfig字段一一对应
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// New 按配置创建Logger
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(defaultString(opts.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", opts.Level, err)
	}

	encoding := strings.ToLower(defaultString(opts.Format, "json"))
	if encoding != "json" && encoding != "console" {
		return nil, fmt.Errorf("无效的日志格式: %s", opts.Format)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	output := defaultString(opts.Output, "stdout")
	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !opts.EnableCaller,
		DisableStacktrace: level > zapcore.DebugLevel,
	}
	return cfg.Build()
}

// MustSetup 创建Logger并替换zap全局Logger，返回同步函数
func MustSetup(opts Options) (*zap.Logger, func()) {
	l, err := New(opts)
	if err != nil {
		panic(err)
	}
	restore := zap.ReplaceGlobals(l)
	return l, func() {
		_ = l.Sync()
		restore()
	}
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
