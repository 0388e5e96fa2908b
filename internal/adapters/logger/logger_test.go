package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bochsbuild/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := logger.NewWithWriter(buf)
	lg.Info("checking for cl.exe")

	assert.Equal(t, "checking for cl.exe\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := logger.NewWithWriter(buf)
	lg.Warn("unrecognized mode")

	assert.Equal(t, "! unrecognized mode\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := logger.NewWithWriter(buf)
	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "✗ Error: permission denied")
}

func TestLogger_Error_Nil(t *testing.T) {
	buf := &bytes.Buffer{}

	lg := logger.NewWithWriter(buf)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_Error_Chain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := logger.NewWithWriter(buf)
	lg.Error(zerr.Wrap(errors.New("exit status 2"), "command failed"))

	out := buf.String()
	assert.Contains(t, out, "Error: command failed")
	assert.Contains(t, out, "exit status 2")
}

func TestLogger_Error_Joined(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := logger.NewWithWriter(buf)
	lg.Error(errors.Join(errors.New("build execution failed"), errors.New("cargo exited 101")))

	out := buf.String()
	assert.Contains(t, out, "Error: build execution failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ cargo exited 101")
}

func TestLogger_SetOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}

	lg := logger.NewWithWriter(first)
	lg.SetOutput(second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Equal(t, "moved\n", second.String())
}

func TestNew(t *testing.T) {
	assert.NotNil(t, logger.New())
}
