package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMimeType(t *testing.T) {
	assert.Equal(t, "image/png", GetMimeType("logos/acme.png"))
	assert.Equal(t, "image/png", GetMimeType("ACME.PNG"))
	assert.Equal(t, "application/octet-stream", GetMimeType("README"))
}

func TestIsRasterImage(t *testing.T) {
	assert.True(t, IsRasterImage("logo.png"))
	assert.True(t, IsRasterImage("logo.JPG"))
	assert.False(t, IsRasterImage("logo.svg"))
	assert.False(t, IsRasterImage("notes.txt"))
	assert.False(t, IsRasterImage("logo"))
}
