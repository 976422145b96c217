package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContextFallsBackToGlobal ensures a bare context still yields a usable logger.
func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
}

// TestContextRoundtrip ensures the logger stored via ToContext comes back via FromContext.
func TestContextRoundtrip(t *testing.T) {
	t.Parallel()

	l := New(nil)
	ctx := ToContext(context.Background(), l)
	require.Same(t, l, FromContext(ctx))

	named := WithName(ctx, "scope")
	require.NotSame(t, l, FromContext(named))
}
