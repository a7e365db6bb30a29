// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "spotify-client-id", "  abc123  \n")
				writeFile(t, dir, "spotify-client-secret", "shhh")
				writeFile(t, dir, "youtube-api-key", "yt_key\n")
				return dir
			},
			want: map[string]string{
				"spotify-client-id":     "abc123",
				"spotify-client-secret": "shhh",
				"youtube-api-key":       "yt_key",
			},
		},
		{
			name: "returns empty provider for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "discogs-consumer-key", "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{
				"discogs-consumer-key": "valid-key",
			},
		},
		{
			name: "skips dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, "soundcloud-client-id", "sc_real")
				return dir
			},
			want: map[string]string{
				"soundcloud-client-id": "sc_real",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "allmusic-api-key", "am_123")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"allmusic-api-key": "am_123",
			},
		},
		{
			name: "returns empty provider for empty directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			require.NoError(t, err)
			require.NotNil(t, got)
			for k, v := range tt.want {
				assert.Equal(t, v, got.Get(k))
			}
			assert.Len(t, got.Keys(), len(tt.want))
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	// Create a file then remove read permission.
	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir)
	require.NoError(t, err)
	// The good file should still be returned; the bad file is skipped with a warning.
	assert.Equal(t, "value123", got.Get("good-key"))
	assert.Empty(t, got.Get("bad-key"), "unreadable file should not appear in result")
}

func TestNewProvider(t *testing.T) {
	p := NewProvider(map[string]string{
		"youtube-api-key":   "  yt  ",
		"empty-key":         "",
		"whitespace-only":   "  \n ",
		"spotify-client-id": "id",
	})

	assert.Equal(t, "yt", p.Get("youtube-api-key"), "values should be trimmed")
	assert.Empty(t, p.Get("empty-key"))
	assert.Empty(t, p.Get("whitespace-only"))

	keys := p.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"spotify-client-id", "youtube-api-key"}, keys)
}

func TestProviderHas(t *testing.T) {
	p := NewProvider(map[string]string{
		"spotify-client-id":     "id",
		"spotify-client-secret": "secret",
	})

	assert.True(t, p.Has("spotify-client-id"))
	assert.True(t, p.Has("spotify-client-id", "spotify-client-secret"))
	assert.False(t, p.Has("spotify-client-id", "youtube-api-key"))
	assert.False(t, p.Has("youtube-api-key"))
	assert.False(t, p.Has(), "zero keys should not report present")
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	assert.Empty(t, p.Get("anything"))
	assert.False(t, p.Has("anything"))
	assert.Nil(t, p.Keys())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
