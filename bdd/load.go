package bdd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFrames reads a label file holding a JSON array of frames and returns
// them in source order.
func LoadFrames(path string) ([]Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var frames []Frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return frames, nil
}

// LabelPath resolves the polygon label file for a split inside a BDD100K
// base directory.
func LabelPath(baseDir, split string) string {
	return filepath.Join(baseDir, "labels", "sem_seg", "polygons", "sem_seg_"+split+".json")
}
