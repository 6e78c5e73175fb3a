package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteManifest writes <outputBase>/data.yaml for the downstream trainer.
// The names line uses the trainer's expected list-literal style with
// single quotes, so the file is assembled by hand rather than marshaled.
func WriteManifest(outputBase, trainImagesDir, valImagesDir string, mapping *Mapping) error {
	trainAbs, err := filepath.Abs(trainImagesDir)
	if err != nil {
		return err
	}
	valAbs, err := filepath.Abs(valImagesDir)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "train: %s\n", trainAbs)
	fmt.Fprintf(&sb, "val: %s\n", valAbs)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "nc: %d\n", mapping.Len())
	fmt.Fprintf(&sb, "names: %s\n", nameList(mapping.Names()))

	return os.WriteFile(filepath.Join(outputBase, "data.yaml"), []byte(sb.String()), 0o644)
}

func nameList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
