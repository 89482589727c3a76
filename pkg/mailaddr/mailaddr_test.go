package mailaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		address string
	}{
		{name: "bare address", input: "ops@example.com", address: "ops@example.com"},
		{name: "display form", input: "Ops Team <ops@example.com>", address: "ops@example.com"},
		{name: "surrounding whitespace", input: "  ops@example.com ", address: "ops@example.com"},
		{name: "not an email", input: "not-an-email", wantErr: true},
		{name: "display form with bad address", input: "Ops Team <not-an-email>", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.address, addr.Address)
		})
	}
}

func TestParseKeepsDisplayName(t *testing.T) {
	addr, err := Parse("Ops Team <ops@example.com>")
	require.NoError(t, err)
	assert.Equal(t, "Ops Team", addr.Name)
	assert.Equal(t, `"Ops Team" <ops@example.com>`, addr.String())
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("ops@example.com"))
	assert.False(t, Valid("not-an-email"))
}
