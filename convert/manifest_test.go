package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bdd2yolo/bdd"
)

func TestWriteManifest(t *testing.T) {
	base := t.TempDir()
	trainImages := filepath.Join(base, "images", "train")
	valImages := filepath.Join(base, "images", "val")

	mapping := BuildMapping([]bdd.Frame{
		{Labels: []bdd.Label{{Category: "person"}, {Category: "bike"}, {Category: "car"}}},
	})
	require.NoError(t, WriteManifest(base, trainImages, valImages, mapping))

	data, err := os.ReadFile(filepath.Join(base, "data.yaml"))
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "train: "+trainImages+"\n")
	assert.Contains(t, content, "val: "+valImages+"\n")
	assert.Contains(t, content, "nc: 3\n")
	assert.Contains(t, content, "names: ['bike', 'car', 'person']\n")
}
