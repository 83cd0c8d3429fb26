package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToWarn(t *testing.T) {
	log, err := New(Options{Out: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestComponentField(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Out: &buf})
	require.NoError(t, err)
	Component(log, "decoder").Info("decoded")
	out := buf.String()
	assert.Contains(t, out, "component=decoder")
	assert.Contains(t, out, "decoded")
	assert.NotContains(t, out, "\x1b[", "no colors for a non-terminal writer")
}
