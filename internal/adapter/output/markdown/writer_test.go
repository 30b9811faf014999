package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovrstra/python-unidiff/internal/adapter/output/markdown"
	"github.com/tovrstra/python-unidiff/internal/unidiff"
)

func TestRenderIncludesTableAndSections(t *testing.T) {
	diff := `--- /dev/null
+++ b/new.txt
@@ -0,0 +1 @@
+hello
--- a/changed.txt
+++ b/changed.txt
@@ -1 +1 @@
-old
+new
`
	set, err := unidiff.ParseString(diff)
	require.NoError(t, err)

	report := markdown.NewWriter().Render(set, "change.diff")

	assert.Contains(t, report, "# Diff Summary")
	assert.Contains(t, report, "- Source: change.diff")
	assert.Contains(t, report, "- Files changed: 2")
	assert.Contains(t, report, "| new.txt | added | 1 | +1 | -0 |")
	assert.Contains(t, report, "| changed.txt | modified | 1 | +1 | -1 |")
	assert.Contains(t, report, "## Added Files")
	assert.Contains(t, report, "## Modified Files")
	assert.NotContains(t, report, "## Removed Files")
}
