package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type styleItem struct {
	Label string
	URL   string `env_interpolation:"yes"`
}

type document struct {
	Name     string
	Host     string            `env_interpolation:"yes"`
	Headers  map[string]string `env_interpolation:"yes"`
	Mirrors  []string          `env_interpolation:"yes"`
	Items    []styleItem
	Fallback *styleItem
	Nested   styleItem
	skipped  string `env_interpolation:"yes"`
}

func TestInterpolateStruct(t *testing.T) {
	t.Setenv("MAPCTL_HOST", "tiles.example.com")

	t.Run("expands tagged fields only", func(t *testing.T) {
		doc := &document{
			Name:     "${MAPCTL_HOST}",
			Host:     "${MAPCTL_HOST}",
			Headers:  map[string]string{"Origin": "https://${MAPCTL_HOST}"},
			Mirrors:  []string{"${MAPCTL_HOST}", "", "${MAPCTL_MIRROR:backup.example.com}"},
			Items:    []styleItem{{Label: "${MAPCTL_HOST}", URL: "https://${MAPCTL_HOST}/a.json"}},
			Fallback: &styleItem{URL: "${MAPCTL_HOST}"},
			Nested:   styleItem{URL: "${MAPCTL_HOST}/n"},
			skipped:  "${MAPCTL_HOST}",
		}

		require.NoError(t, InterpolateStruct(doc))
		assert.Equal(t, "${MAPCTL_HOST}", doc.Name)
		assert.Equal(t, "tiles.example.com", doc.Host)
		assert.Equal(t, "https://tiles.example.com", doc.Headers["Origin"])
		assert.Equal(t, []string{"tiles.example.com", "", "backup.example.com"}, doc.Mirrors)
		assert.Equal(t, "${MAPCTL_HOST}", doc.Items[0].Label)
		assert.Equal(t, "https://tiles.example.com/a.json", doc.Items[0].URL)
		assert.Equal(t, "tiles.example.com", doc.Fallback.URL)
		assert.Equal(t, "tiles.example.com/n", doc.Nested.URL)
		assert.Equal(t, "${MAPCTL_HOST}", doc.skipped)
	})

	t.Run("reports the failing field", func(t *testing.T) {
		doc := &document{Items: []styleItem{{URL: "${MAPCTL_NOT_SET}"}}}
		err := InterpolateStruct(doc)
		require.ErrorIs(t, err, ErrUndefinedVar)
		assert.Contains(t, err.Error(), "Items")
		assert.Contains(t, err.Error(), "MAPCTL_NOT_SET")
	})

	t.Run("nil and non-struct inputs", func(t *testing.T) {
		assert.NoError(t, InterpolateStruct(nil))
		var doc *document
		assert.NoError(t, InterpolateStruct(doc))
		assert.Error(t, InterpolateStruct("not a struct"))
	})
}
