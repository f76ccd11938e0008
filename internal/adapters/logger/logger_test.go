package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.verdant.dev/verdant/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	lg := logger.New()
	concrete, ok := lg.(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)
	lg.Info("dataset caches cleared")

	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "dataset caches cleared")
}

func TestLogger_Warn(t *testing.T) {
	lg := logger.New()
	concrete := lg.(*logger.Logger)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)
	lg.Warn("overlay directory missing")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "overlay directory missing")
}

func TestLogger_Error(t *testing.T) {
	lg := logger.New()
	concrete := lg.(*logger.Logger)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)
	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "permission denied")
}
