package xmlutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	doc := `<Root a="1" b="two">
	  <Child c="3"/>
	  <Child/>
	  <Other>
	    <Nested d="4"/>
	  </Other>
	</Root>`

	root, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "Root", root.Tag)
	assert.Equal(t, map[string]string{"a": "1", "b": "two"}, root.Attr)
	require.Len(t, root.Children, 3)

	assert.Equal(t, "Child", root.Children[0].Tag)
	assert.Equal(t, "3", root.Children[0].Attr["c"])
	assert.Nil(t, root.Children[1].Attr)

	other := root.Children[2]
	require.Len(t, other.Children, 1)
	assert.Equal(t, "Nested", other.Children[0].Tag)
}

func TestDecode_LegacyHTMLEntities(t *testing.T) {
	// Old reports contain HTML entities the XML standard does not define.
	root, err := DecodeBytes([]byte(`<Root name="A&nbsp;B"/>`))
	require.NoError(t, err)
	assert.Equal(t, "A B", root.Attr["name"])
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`<Root><Unclosed></Root>`))
	assert.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<Root a="1"/>`), 0600))

	root, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Root", root.Tag)

	_, err = DecodeFile(filepath.Join(dir, "missing.xml"))
	assert.Error(t, err)
}

func TestHasRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<FlexQueryResponse queryName="x" type="AF"/>`), 0600))

	ok, err := HasRoot(path, "FlexQueryResponse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasRoot(path, "Document")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = HasRoot(filepath.Join(dir, "missing.xml"), "FlexQueryResponse")
	assert.Error(t, err)
}
