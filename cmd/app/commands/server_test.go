package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/onlinz/returns/internal/config"
)

// fakeServer blocks in Start until Shutdown is called or fails immediately.
type fakeServer struct {
	startErr error
	stopped  chan struct{}
	once     sync.Once
}

func newFakeServer(startErr error) *fakeServer {
	return &fakeServer{startErr: startErr, stopped: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.once.Do(func() { close(f.stopped) })
	return nil
}

func TestServe(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{DBConnMaxLifetime: time.Second}

	t.Run("Success_StopsOnCancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		api, metrics := newFakeServer(nil), newFakeServer(nil)

		done := make(chan error, 1)
		go func() { done <- serve(ctx, logger, cfg, api, metrics) }()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return")
		}
	})

	t.Run("Error_ServerFailureStopsOthers", func(t *testing.T) {
		api, metrics := newFakeServer(nil), newFakeServer(errors.New("address in use"))

		err := serve(context.Background(), logger, cfg, api, metrics)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address in use")
		select {
		case <-api.stopped:
		default:
			t.Fatal("api server was not shut down")
		}
	})
}
