package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("path", "/auth").Msg("logout failed")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/auth", entry["path"])
	assert.Equal(t, "logout failed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_HumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", HumanReadable: true, Writer: &buf})
	require.NoError(t, err)

	log.Debug().Msg("navigated")
	assert.Contains(t, buf.String(), "navigated")
	assert.Contains(t, buf.String(), "DBG")
}

func TestNew_DisabledIsNop(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "disabled", Writer: &buf})
	require.NoError(t, err)

	log.Error().Msg("nothing")
	assert.Zero(t, buf.Len())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestOpenFile_CreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "visionchat.log")

	f, err := OpenFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("x\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}
