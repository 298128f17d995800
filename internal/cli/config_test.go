package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	require.NoError(t, loadConfig(""))
	assert.True(t, config.Uppercase)
	assert.Equal(t, "", config.SigningAccount)
}

func TestLoadConfig_UnreadableFileErrors(t *testing.T) {
	err := loadConfig("/nonexistent/xrpld-cli-config.toml")
	assert.Error(t, err)
}
