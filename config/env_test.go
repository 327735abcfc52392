package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealEnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "9001")

	require.NoError(t, loadFromFiles("app.json", ".env"))
	assert.Equal(t, "9001", get("APP_PORT", ""))
}

func TestRealEnvCoversKeysAbsentFromFiles(t *testing.T) {
	t.Setenv("S3_BUCKET", "bakehouse-media")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("MAX_BODY_BYTES", "5242880")

	require.NoError(t, loadFromFiles("app.json", ".env"))

	assert.Equal(t, "bakehouse-media", get("S3_BUCKET", ""))
	assert.Equal(t, "eu-west-1", get("S3_REGION", ""))
	assert.Equal(t, "5242880", get("MAX_BODY_BYTES", ""))
}

func TestBlankEnvValueDoesNotMaskDefault(t *testing.T) {
	t.Setenv("APP_PORT", "   ")

	require.NoError(t, loadFromFiles("app.json", ".env"))
	assert.Equal(t, defaultAppPort, get("APP_PORT", defaultAppPort))
}
