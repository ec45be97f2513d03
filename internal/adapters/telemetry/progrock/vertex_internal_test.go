package progrock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depres/internal/core/domain"
)

func TestVertex_LevelThreshold(t *testing.T) {
	recorder := New()
	_, v := recorder.Record(context.Background(), "resolve compile")
	vertex, ok := v.(*Vertex)
	require.True(t, ok)

	assert.False(t, vertex.logs(domain.LogLevelDebug))
	assert.True(t, vertex.logs(domain.LogLevelInfo))

	recorder.SetLevel(domain.LogLevelDebug)
	assert.True(t, vertex.logs(domain.LogLevelDebug))

	recorder.SetLevel(domain.LogLevelError)
	assert.False(t, vertex.logs(domain.LogLevelWarn))
	vertex.Complete(nil)
}
