package clipboard_test

import (
	"testing"

	"github.com/atotto/clipboard"
	sgclipboard "github.com/fwojciec/sectiongrid/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Copy(t *testing.T) {
	t.Parallel()

	cb := sgclipboard.NewSystem()
	if !cb.Available() {
		t.Skip("no clipboard backend available, skipping clipboard test")
	}

	testContent := "test clipboard content from sectiongrid"
	if err := cb.Copy(testContent); err != nil {
		t.Skipf("clipboard backend not usable: %v", err)
	}

	out, err := clipboard.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, testContent, out)
}
