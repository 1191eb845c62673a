// Package shutdown blocks until SIGINT or SIGTERM and runs shutdown hooks
// within a bounded timeout.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/LHProvin/exercita365b/pkg/logger"
)

const (
	logSignalReceived = "shutdown signal received"
	logHookFailed     = "shutdown hook failed"
	logTimeoutReached = "shutdown timeout reached before all hooks completed"
)

// Wait blocks until SIGINT or SIGTERM is received, then runs all hooks
// concurrently within the given timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...func(context.Context) error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log := logger.Log(ctx)
	log.Info(ctx, logSignalReceived, zap.String("signal", sig.String()))

	hookCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn func(context.Context) error) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(hookCtx, logHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		log.Warn(hookCtx, logTimeoutReached)
	}
}
