package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clambin/kbdstate/internal/effector"
	"github.com/clambin/kbdstate/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = state.State{Brightness: "48", Color: "FF0000"}

func TestIsValidBrightness(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "zero", value: "0", want: true},
		{name: "mid-range", value: "48", want: true},
		{name: "max", value: "255", want: true},
		{name: "leading zeros", value: "048", want: true},
		{name: "out of range", value: "256", want: false},
		{name: "way out of range", value: "999", want: false},
		{name: "negative", value: "-1", want: false},
		{name: "empty", value: "", want: false},
		{name: "not a number", value: "bright", want: false},
		{name: "trailing garbage", value: "48x", want: false},
		{name: "embedded whitespace", value: " 48", want: false},
		{name: "hex", value: "0x30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, state.IsValidBrightness(tt.value))
		})
	}
}

func TestIsValidColor(t *testing.T) {
	// each channel is either fully off or fully on
	for _, valid := range []string{"000000", "0000FF", "00FF00", "00FFFF", "FF0000", "FF00FF", "FFFF00", "FFFFFF"} {
		assert.True(t, state.IsValidColor(valid), valid)
	}

	tests := []struct {
		name  string
		value string
	}{
		{name: "lowercase", value: "ff0000"},
		{name: "mixed case", value: "Ff0000"},
		{name: "partial channel", value: "FF8000"},
		{name: "too short", value: "FF00"},
		{name: "too long", value: "FF0000FF"},
		{name: "leading garbage", value: "xFF0000"},
		{name: "trailing newline", value: "FF0000\n"},
		{name: "empty", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, state.IsValidColor(tt.value))
		})
	}
}

func TestStore_Read(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		want    state.State
	}{
		{
			name:    "valid state is returned as stored",
			content: `{"brightness": "72", "color": "00FF00"}`,
			want:    state.State{Brightness: "72", Color: "00FF00"},
		},
		{
			name:    "missing file yields defaults",
			missing: true,
			want:    defaults,
		},
		{
			name:    "corrupt file yields defaults",
			content: `{"brightness": `,
			want:    defaults,
		},
		{
			name:    "invalid brightness is defaulted, valid color is kept",
			content: `{"brightness": "999", "color": "00FF00"}`,
			want:    state.State{Brightness: "48", Color: "00FF00"},
		},
		{
			name:    "invalid color is defaulted, valid brightness is kept",
			content: `{"brightness": "72", "color": "ff0000"}`,
			want:    state.State{Brightness: "72", Color: "FF0000"},
		},
		{
			name:    "both fields invalid yields defaults",
			content: `{"brightness": "-1", "color": "123456"}`,
			want:    defaults,
		},
		{
			name:    "absent fields yield defaults",
			content: `{}`,
			want:    defaults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			if !tt.missing {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			}
			s := state.Store{Path: path, Defaults: defaults}
			assert.Equal(t, tt.want, s.Read())
		})
	}
}

func TestStore_Read_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"brightness": "72", "color": "00FF00"}`), 0644))
	s := state.Store{Path: path, Defaults: defaults}
	assert.Equal(t, s.Read(), s.Read())
}

func TestStore_Write(t *testing.T) {
	// parent directories are created as needed
	path := filepath.Join(t.TempDir(), "lib", "kbdstate", "state.json")
	s := state.Store{Path: path, Defaults: defaults}

	require.NoError(t, s.Write(state.State{Brightness: "72", Color: "00FF00"}, effector.FileWriter{}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{
  "brightness": "72",
  "color": "00FF00"
}
`, string(content))
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := state.Store{Path: path, Defaults: defaults}

	written := state.State{Brightness: "255", Color: "FFFF00"}
	require.NoError(t, s.Write(written, effector.FileWriter{}))
	assert.Equal(t, written, s.Read())
}

func TestStore_Write_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib", "state.json")
	s := state.Store{Path: path, Defaults: defaults}

	require.NoError(t, s.Write(defaults, effector.DryRun{Out: os.Stderr}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
