package collect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestConfiguredKeepsLinesVerbatim(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "GNOME-terminals.list")
	b := filepath.Join(dir, "terminals.list")
	write(t, a, "foot.desktop\r\n\n# comment\n")
	write(t, b, "kitty.desktop")

	got, err := Configured([]string{a, b}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"foot.desktop", "", "# comment", "kitty.desktop"}, got)
}

func TestConfiguredSkipComments(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "terminals.list")
	write(t, p, "  foot.desktop \n\n# comment\nkitty.desktop\n")

	got, err := Configured([]string{p}, Options{SkipComments: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"foot.desktop", "kitty.desktop"}, got)
}

func TestListLinesLongLinesKeptWhole(t *testing.T) {
	long := strings.Repeat("x", 70000) + ".desktop"
	got, err := listLines([]byte("foot.desktop\n"+long+"\nkitty.desktop"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"foot.desktop", long, "kitty.desktop"}, got)
}

func TestConfiguredReadFailureIsFatal(t *testing.T) {
	// a directory cannot be read as a list file
	_, err := Configured([]string{t.TempDir()}, Options{})
	assert.ErrorIs(t, err, ErrIO)
}

func TestPresent(t *testing.T) {
	user, sys := t.TempDir(), t.TempDir()
	write(t, filepath.Join(user, "b.desktop"), "")
	write(t, filepath.Join(user, "a.desktop"), "")
	write(t, filepath.Join(sys, "c.desktop"), "")
	require.NoError(t, os.Mkdir(filepath.Join(sys, "nested"), 0o755))
	write(t, filepath.Join(sys, "nested", "deep.desktop"), "")

	got, err := Present([]string{user, filepath.Join(user, "gone"), sys})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.desktop", "b.desktop", "c.desktop", "nested"}, got)
}

func TestPresentListFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	write(t, file, "")

	_, err := Present([]string{file})
	assert.ErrorIs(t, err, ErrIO)
}

func TestMergeDedupFirstWins(t *testing.T) {
	seen := Seen{}
	got := Merge(seen,
		[]string{"foot.desktop", "kitty.desktop", "foot.desktop"},
		[]string{"alacritty.desktop", "kitty.desktop", "xterm.desktop"},
	)
	assert.Equal(t, []string{"foot.desktop", "kitty.desktop", "alacritty.desktop", "xterm.desktop"}, got)
	assert.False(t, seen.First("xterm.desktop"))
	assert.True(t, seen.First("new.desktop"))
}

func TestMergeFreshSetPerRun(t *testing.T) {
	first := Merge(Seen{}, []string{"foot.desktop"})
	second := Merge(Seen{}, []string{"foot.desktop"})
	assert.Equal(t, first, second)
}
