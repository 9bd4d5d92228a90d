// SPDX-License-Identifier: EPL-2.0

package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil error, so it can be passed
// unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Algorithm labels a record with the embedding algorithm.
func Algorithm(name string) slog.Attr {
	return slog.String("algorithm", name)
}

func Bitrate(kbps int) slog.Attr {
	return slog.Int("bitrate_kbps", kbps)
}

func Path(p string) slog.Attr {
	if p == "" {
		return slog.Attr{}
	}
	return slog.String("path", p)
}

func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}
