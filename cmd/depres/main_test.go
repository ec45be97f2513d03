package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depres/internal/adapters/config"
	"go.trai.ch/depres/internal/adapters/metrics"
	"go.trai.ch/depres/internal/adapters/telemetry/progrock"
	"go.trai.ch/depres/internal/app"
	"go.trai.ch/depres/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T, log *mocks.MockLogger) *app.Components {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockModuleVersionsStore(ctrl)
	application := app.New(config.NewLoader(log), store, config.Settings{}, log, metrics.New(), progrock.New())
	return &app.Components{App: application, Logger: log}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	components := newComponents(t, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "depres version")
}

// TestRun_ProviderError verifies that initialization failures are reported on stderr.
func TestRun_ProviderError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "wiring failed")
}

// TestRun_CommandError verifies that command failures are logged and exit with 1.
func TestRun_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)
	components := newComponents(t, mockLogger)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	args := []string{"resolve", "-c", filepath.Join(t.TempDir(), "missing.yaml")}
	exitCode := run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}

// TestRun_Options verifies that options are applied to the app before execution.
func TestRun_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	components := newComponents(t, mocks.NewMockLogger(ctrl))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	var applied *app.App
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider,
		func(a *app.App) { applied = a })
	assert.Equal(t, 0, exitCode)
	assert.Same(t, components.App, applied)
}
