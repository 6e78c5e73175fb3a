package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"bdd2yolo/bdd"
	"bdd2yolo/logger"
)

// Run converts one split: copies each frame's image and writes a sibling
// label text file with one line per polygon label. A frame whose source
// image is missing is recorded and skipped entirely; it contributes no
// label file, no stats and no processed count.
func Run(frames []bdd.Frame, mapping *Mapping, opts Options) (*Result, error) {
	if err := os.MkdirAll(opts.LabelDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.ImageDstDir, 0o755); err != nil {
		return nil, err
	}

	res := &Result{Entries: len(frames), Instances: make(map[string]int)}
	bar := progressbar.Default(int64(len(frames)), "Converting "+opts.Split)
	for _, frame := range frames {
		src := filepath.Join(opts.ImageSrcDir, frame.Name)
		dst := filepath.Join(opts.ImageDstDir, frame.Name)
		if err := copyImage(src, dst); err != nil {
			if os.IsNotExist(err) {
				res.MissingImages = append(res.MissingImages, frame.Name)
				_ = bar.Add(1)
				continue
			}
			return nil, err
		}
		if err := writeLabelFile(frame, mapping, opts.LabelDir, res.Instances); err != nil {
			return nil, err
		}
		res.Processed++
		_ = bar.Add(1)
	}
	res.Missing = len(res.MissingImages)
	return res, nil
}

// copyImage copies src to dst byte for byte and carries over the source's
// mode and modification time.
func copyImage(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := os.Chmod(dst, info.Mode()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// writeLabelFile writes <stem>.txt for a frame. The file is created even
// when no label qualifies, so every copied image has a label file.
func writeLabelFile(frame bdd.Frame, mapping *Mapping, labelDir string, instances map[string]int) error {
	stem := strings.TrimSuffix(frame.Name, filepath.Ext(frame.Name))
	f, err := os.Create(filepath.Join(labelDir, stem+".txt"))
	if err != nil {
		return err
	}
	defer f.Close()

	for _, label := range frame.Labels {
		if label.Poly2D == nil {
			continue
		}
		id, ok := mapping.ID(label.Category)
		if !ok {
			logger.S().Warnf("category %q found in %s but not in the category mapping", label.Category, frame.Name)
			continue
		}
		instances[label.Category]++
		if len(label.Poly2D) == 0 {
			continue
		}
		// The first polygon is the shape; any further entries are ignored.
		verts := label.Poly2D[0].Vertices
		if len(verts) < 3 {
			continue
		}
		if err := writeLine(f, id, verts); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, id int, verts [][2]float64) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", id)
	for _, v := range verts {
		fmt.Fprintf(&sb, " %.6f %.6f", v[0]/ImageWidth, v[1]/ImageHeight)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
