package utils

import (
	"daily-journal-service/internal/pkg/constvars"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("PNG Data URL", func(t *testing.T) {
		data, ext, err := DecodeBase64Image("data:image/png;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, ".png", ext)
		assert.NoError(t, ValidateImageFormat(ext, constvars.ImageAllowedAvatarFormats))
	})

	t.Run("JPEG Data URL", func(t *testing.T) {
		_, ext, err := DecodeBase64Image("data:image/jpeg;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, ".jpg", ext)
	})

	t.Run("Unsupported Type", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/gif;base64," + encoded)
		assert.Error(t, err, "gif should be rejected")
	})

	t.Run("Missing Comma", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64")
		assert.Error(t, err)
	})

	t.Run("Bad Payload", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64,***")
		assert.Error(t, err)
	})
}

func TestValidateImageSize(t *testing.T) {
	assert.NoError(t, ValidateImageSize(make([]byte, 1024*1024), 1))
	assert.Error(t, ValidateImageSize(make([]byte, 1024*1024+1), 1))
}
