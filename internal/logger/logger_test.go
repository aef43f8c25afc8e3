package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	id := GenerateRequestID()
	require.NotEmpty(t, id)

	ctx := WithRequestID(context.Background(), id)
	got, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestRequestIDAbsent(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGenerateRequestIDUnique(t *testing.T) {
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}

func TestFromContextWithoutID(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}
