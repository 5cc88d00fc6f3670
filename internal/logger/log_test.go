package logger

import (
	"context"
	"log/slog"
	"testing"

	"teamvote/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInitLevel(t *testing.T) {
	ctx := context.Background()

	Init(config.LogConfig{Level: "warn", Console: true})
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelWarn))

	Init(config.LogConfig{Level: "nonsense", Console: true})
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelInfo), "unknown level falls back to info")
}
