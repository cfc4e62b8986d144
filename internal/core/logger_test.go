package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger().SetOutput(&out)

	logger.Info("hidden")
	logger.Warn("always")
	assert.Equal(t, "always\n", out.String())

	out.Reset()
	logger.SetVerboseLevel(VerboseInfo)
	logger.Infof("Exported %s", "Note.markdown")
	logger.Debug("hidden")
	assert.Equal(t, "Exported Note.markdown\n", out.String())

	out.Reset()
	logger.SetVerboseLevel(VerboseTrace)
	logger.Debugf("%d", 1)
	logger.Trace("2")
	assert.Equal(t, "1\n2\n", out.String())
}

func TestCurrentLogger(t *testing.T) {
	assert.Same(t, CurrentLogger(), CurrentLogger())
}
