package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bdd2yolo/bdd"
)

func TestBuildMapping(t *testing.T) {
	t.Run("sorted contiguous ids", func(t *testing.T) {
		frames := []bdd.Frame{
			{Name: "a.jpg", Labels: []bdd.Label{{Category: "car"}, {Category: "bike"}}},
		}
		m := BuildMapping(frames)
		assert.Equal(t, 2, m.Len())
		assert.Equal(t, []string{"bike", "car"}, m.Names())

		id, ok := m.ID("bike")
		assert.True(t, ok)
		assert.Equal(t, 0, id)
		id, ok = m.ID("car")
		assert.True(t, ok)
		assert.Equal(t, 1, id)
	})

	t.Run("includes categories without polygons", func(t *testing.T) {
		// The mapping is built from every categorized label, while
		// instance stats later only see polygon-bearing labels.
		frames := []bdd.Frame{
			{Name: "a.jpg", Labels: []bdd.Label{
				{Category: "sky"},
				{Category: "car", Poly2D: []bdd.Poly2D{{Vertices: [][2]float64{{0, 0}, {1, 1}, {2, 2}}}}},
			}},
		}
		m := BuildMapping(frames)
		assert.Equal(t, []string{"car", "sky"}, m.Names())
	})

	t.Run("ignores labels without category", func(t *testing.T) {
		frames := []bdd.Frame{
			{Name: "a.jpg", Labels: []bdd.Label{
				{Poly2D: []bdd.Poly2D{{Vertices: [][2]float64{{0, 0}, {1, 1}, {2, 2}}}}},
				{Category: "person"},
			}},
		}
		m := BuildMapping(frames)
		assert.Equal(t, []string{"person"}, m.Names())
	})

	t.Run("deduplicates across frames", func(t *testing.T) {
		frames := []bdd.Frame{
			{Name: "a.jpg", Labels: []bdd.Label{{Category: "car"}}},
			{Name: "b.jpg", Labels: []bdd.Label{{Category: "car"}, {Category: "bus"}}},
		}
		m := BuildMapping(frames)
		assert.Equal(t, []string{"bus", "car"}, m.Names())
	})

	t.Run("unknown category unmapped", func(t *testing.T) {
		m := BuildMapping(nil)
		assert.Equal(t, 0, m.Len())
		_, ok := m.ID("car")
		assert.False(t, ok)
	})
}
