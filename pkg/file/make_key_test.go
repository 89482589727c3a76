package file

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeKey(t *testing.T) {
	key := MakeKey("intake", "clip.mp4")
	assert.True(t, strings.HasPrefix(key, "intake/"))
	assert.True(t, strings.HasSuffix(key, "-clip.mp4"))

	// directory components are stripped from the client-supplied name
	key = MakeKey("intake", "../../etc/clip.mp4")
	assert.True(t, strings.HasSuffix(key, "-clip.mp4"))
	assert.NotContains(t, key, "..")

	key = MakeKey("", "clip.mp4")
	assert.False(t, strings.HasPrefix(key, "/"))
}

func TestMakeKeyTrimsPrefixSlash(t *testing.T) {
	key := MakeKey("intake/", "clip.mp4")
	assert.True(t, strings.HasPrefix(key, "intake/"))
	assert.NotContains(t, key, "//")
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("headshot.JPG"))
	assert.True(t, IsImageFile("headshot.webp"))
	assert.False(t, IsImageFile("clip.mp4"))
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("clip.MOV"))
	assert.False(t, IsVideoFile("headshot.png"))
}
