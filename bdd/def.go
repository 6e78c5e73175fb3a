// Package bdd holds the BDD100K semantic-segmentation polygon label model
// and its JSON loader.
package bdd

// Frame is one image's worth of annotations.
type Frame struct {
	Name   string  `json:"name"`
	Labels []Label `json:"labels"`
}

// Label is a single annotation on a frame. Category may be absent (empty).
// Poly2D is nil when the label carries no polygon.
type Label struct {
	Category string   `json:"category"`
	Poly2D   []Poly2D `json:"poly2d"`
}

// Poly2D is one polygon of a label. Vertices are pixel coordinates in
// x,y pairs.
type Poly2D struct {
	Vertices [][2]float64 `json:"vertices"`
	Types    string       `json:"types"`
	Closed   bool         `json:"closed"`
}
