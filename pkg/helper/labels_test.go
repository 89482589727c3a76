package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelCase(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"playerFirstName", "Player First Name"},
		{"parent_email", "Parent Email"},
		{"grad-year", "Grad Year"},
		{"notes", "Notes"},
		{"teamURL", "Team URL"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelCase(tt.key))
		})
	}
}

func TestMimeTypeFromExtension(t *testing.T) {
	assert.Equal(t, "video/mp4", MimeTypeFromExtension("highlights.MP4"))
	assert.Equal(t, "image/jpeg", MimeTypeFromExtension("headshot.jpg"))
	assert.Equal(t, "application/octet-stream", MimeTypeFromExtension("unknown.xyz"))
}
