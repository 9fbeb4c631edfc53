package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/swatch/internal/app"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/swatch/internal/core/ports/mocks"
	"go.trai.ch/swatch/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func newApp(ctrl *gomock.Controller, loader ports.ConfigLoader, logger ports.Logger) *app.App {
	return app.New(
		loader,
		logger,
		mocks.NewMockFingerprinter(ctrl),
		mocks.NewMockStatSigner(ctrl),
		func(domain.CacheConfig, ports.WriteHook) (ports.CacheStore, error) {
			return mocks.NewMockCacheStore(ctrl), nil
		},
		func(domain.CompilerConfig) (ports.Compiler, error) {
			return mocks.NewMockCompiler(ctrl), nil
		},
		mocks.NewMockTelemetry(ctrl),
		mocks.NewMockWatcher(ctrl),
		pipeline.NewRegistry(),
	)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := newApp(ctrl, mocks.NewMockConfigLoader(ctrl), mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigReadFailed)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})

	application := newApp(ctrl, mockLoader, mockLogger)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	cleaned := false
	exitCode := run(context.Background(), []string{"clean", "-c", "missing.yaml"}, io.Discard,
		func(ctx context.Context) (*app.Components, func(), error) {
			c, _, err := provider(ctx)
			return c, func() { cleaned = true }, err
		})

	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockCh := make(chan struct{})

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Config, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := newApp(ctrl, mockLoader, mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"resolve", "main.scss"}, io.Discard, func(context.Context) (*app.Components, func(), error) {
			return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
		})
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
