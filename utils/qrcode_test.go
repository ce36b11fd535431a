package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQRCode(t *testing.T) {
	t.Cleanup(func() { os.RemoveAll("uploads") })

	path, err := GenerateQRCode("http://localhost:3000/menu/pizza-place", "pizza-place")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/qr-codes/qr-pizza-place-"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	// The referenced file exists on disk
	onDisk := filepath.Join(".", strings.TrimPrefix(path, "/"))
	info, err := os.Stat(onDisk)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
