// Package convert turns BDD100K polygon frames into YOLO-style label files
// plus a copied image tree and a data.yaml manifest.
package convert

// BDD100K frames are all 1280x720; coordinates are normalized against
// these, not against the actual image.
const (
	ImageWidth  = 1280.0
	ImageHeight = 720.0
)

// Options carries the per-split paths for a conversion pass.
type Options struct {
	Split       string
	LabelDir    string
	ImageSrcDir string
	ImageDstDir string
}

// Result is the outcome of one split's conversion pass.
type Result struct {
	Entries       int
	Processed     int
	Missing       int
	MissingImages []string
	Instances     map[string]int
}
