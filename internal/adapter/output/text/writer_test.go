package text_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovrstra/python-unidiff/internal/adapter/output/text"
	"github.com/tovrstra/python-unidiff/internal/unidiff"
)

const statDiff = `--- /dev/null
+++ b/new.txt
@@ -0,0 +1,2 @@
+one
+two
--- a/changed.txt
+++ b/changed.txt
@@ -1,2 +1,2 @@
 keep
-old
+new
`

func TestWriterRendersStatLines(t *testing.T) {
	set, err := unidiff.ParseString(statDiff)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, text.NewWriter(&buf, false).Write(set))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " A new.txt | +2 -0", lines[0])
	assert.Equal(t, " M changed.txt | +1 -1", lines[1])
	assert.Equal(t, "2 files changed, 3 insertions(+), 1 deletions(-)", lines[2])
}

func TestWriterColorsCounts(t *testing.T) {
	set, err := unidiff.ParseString(statDiff)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, text.NewWriter(&buf, true).Write(set))

	assert.Contains(t, buf.String(), "\033[32m+2\033[0m")
	assert.Contains(t, buf.String(), "\033[31m-0\033[0m")
}

func TestWriterEmptySet(t *testing.T) {
	set, err := unidiff.ParseString("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, text.NewWriter(&buf, false).Write(set))
	assert.Equal(t, "0 files changed, 0 insertions(+), 0 deletions(-)\n", buf.String())
}
