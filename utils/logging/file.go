// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig describes a size-rotated log file.
type FileConfig struct {
	Path string
	// MaxSize is the size in megabytes a file reaches before it is rotated.
	MaxSize int
	// MaxFiles is the number of rotated files to retain.
	MaxFiles int
	Compress bool
}

// DefaultFileConfig returns the rotation settings used for [path].
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:     path,
		MaxSize:  8,
		MaxFiles: 7,
		Compress: true,
	}
}

// NewFileCore returns a core that writes JSON logs at [level] to the file
// described by [config].
func NewFileCore(level Level, config FileConfig) WrappedCore {
	rw := &lumberjack.Logger{
		Filename:   config.Path,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxFiles,
		Compress:   config.Compress,
	}
	return NewWrappedCore(level, rw, fileEncoder())
}

func fileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})
}
