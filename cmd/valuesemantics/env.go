package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marcodamonte/valuesemantics/internal/config"
)

type envKey struct{}

// localEnv keeps everything the commands need in a single place.
type localEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	start        time.Time
	restoreTrace func()
}

func envFromContext(ctx context.Context) *localEnv {
	if env, ok := ctx.Value(envKey{}).(*localEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &localEnv{start: time.Now(), Log: zap.NewNop()})
}

func (e *localEnv) uptime() time.Duration {
	return time.Since(e.start)
}
