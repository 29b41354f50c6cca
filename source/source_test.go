package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quartzjs/quartz/source"
)

func TestOrigins(t *testing.T) {
	require.Equal(t, "console", source.Console().String())
	require.Equal(t, "eval", source.Eval().String())
	require.Equal(t, "lib/a.js", source.File("lib/a.js").String())
	require.True(t, source.File("a.js").IsFile())
	require.False(t, source.Eval().IsFile())
}

func TestBuffer(t *testing.T) {
	buf := source.FromString("héllo", source.Eval())
	require.Equal(t, 5, buf.Len()) // runes, not bytes
	require.Equal(t, 'é', buf.At(1))
	require.Equal(t, "éll", buf.Slice(1, 4))
	require.Equal(t, "héllo", buf.String())
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.js")
	require.NoError(t, os.WriteFile(path, []byte("let a = 1"), 0o600))

	buf, err := source.FromFile(path)
	require.NoError(t, err)
	require.Equal(t, "let a = 1", buf.String())
	require.Equal(t, path, buf.Origin().Path())
}

func TestFromFileMissing(t *testing.T) {
	_, err := source.FromFile(filepath.Join(t.TempDir(), "absent.js"))
	require.Error(t, err)
	var load *source.LoadError
	require.ErrorAs(t, err, &load)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocationString(t *testing.T) {
	buf := source.FromString("a", source.File("x.js"))
	loc := source.Location{Buffer: buf, Line: 3, Column: 7, Index: 12}
	require.Equal(t, "x.js:3:7", loc.String())
	require.Equal(t, "?:0:0", source.Location{}.String())
}
