package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSS = `
/* theme colours */
:root {
    --primary: #3b82f6;
}

.card   {
    color : red ;
    margin: 0px 0px 0px 0px;
}
`

func TestFind(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"css/main.css", "css/main.min.css", "css/blue/theme.css", "js/main.js"} {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(sampleCSS), 0o644))
	}

	files, err := Find(root, nil, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"css/main.css", "css/blue/theme.css"}, files)

	files, err = Find(root, nil, append([]string{"**/blue/**"}, DefaultExclude...))
	require.NoError(t, err)
	assert.Equal(t, []string{"css/main.css"}, files)
}

func TestMinifyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.css")
	require.NoError(t, os.WriteFile(src, []byte(sampleCSS), 0o644))

	res, err := MinifyFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "main.min.css"), res.Output)
	assert.Less(t, res.MinifiedSize, res.OriginalSize)
	assert.Positive(t, res.Percent())

	out, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "theme colours")
	assert.Contains(t, string(out), "--primary")
}
