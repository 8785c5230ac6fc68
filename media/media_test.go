package media

import (
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesCodeNamedJPEG(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "/srv/images")

	name, err := s.Save("00000-00099", strings.NewReader("first"))
	require.NoError(t, err)
	assert.Equal(t, "00000-00099.jpeg", name)

	_, err = s.Save("00000-00099", strings.NewReader("second"))
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/srv/images/00000-00099.jpeg")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestRemove(t *testing.T) {
	s := New(afero.NewMemMapFs(), "/srv/images")
	_, err := s.Save("abc", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, s.Remove("abc"))
	ok, err := s.Exists("abc")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Remove("abc"), "removing a missing image is fine")
}

func TestRejectsPathTraversal(t *testing.T) {
	s := New(afero.NewMemMapFs(), "/srv/images")
	for _, code := range []string{"", "../etc/passwd", `a\b`, ".."} {
		_, err := s.Save(code, strings.NewReader("x"))
		assert.Error(t, err, code)
	}
}

func TestHTTPServesImages(t *testing.T) {
	s := New(afero.NewMemMapFs(), "/srv/images")
	_, err := s.Save("abc", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	f, err := s.HTTP().Open("/abc.jpeg")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}
