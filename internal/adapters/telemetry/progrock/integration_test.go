package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depres/internal/adapters/telemetry/progrock"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)

	ctx, vertex := recorder.Record(context.Background(), "resolve compile")
	assert.Same(t, vertex, ports.VertexFromContext(ctx))

	vertex.Log(domain.LogLevelDebug, "selected org:a:1.2")
	vertex.Cached()
	vertex.Complete(nil)

	_, failed := recorder.Record(context.Background(), "resolve runtime")
	failed.Log(domain.LogLevelError, "version conflict")
	failed.Complete(errors.New("version conflict"))

	require.NoError(t, recorder.Close())
}

func TestVertexFromContext_Default(t *testing.T) {
	v := ports.VertexFromContext(context.Background())
	require.NotNil(t, v)
	v.Log(domain.LogLevelInfo, "discarded")
	v.Cached()
	v.Complete(nil)
}
