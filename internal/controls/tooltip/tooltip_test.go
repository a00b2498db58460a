package tooltip

import (
	"fmt"
	"testing"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/tooltip"
	"github.com/atlanticdynamic/mapctl/internal/config/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featureContent(e Event) string {
	return fmt.Sprintf("Feature: %v", e.Features[0].ID)
}

func TestActivate_Layer(t *testing.T) {
	t.Parallel()

	c, err := New(&cfg.Options{GetContent: featureContent, Layer: "poi"})
	require.NoError(t, err)
	assert.Equal(t, "poi", c.Layer())

	content, ok := c.Activate(Event{Features: []cfg.Feature{
		{ID: 7, Layer: "roads"},
		{ID: 42, Layer: "poi"},
	}})
	require.True(t, ok)
	assert.Equal(t, "Feature: 42", content)

	shown, visible := c.Visible()
	assert.True(t, visible)
	assert.Equal(t, "Feature: 42", shown)

	_, ok = c.Activate(Event{Features: []cfg.Feature{{ID: 7, Layer: "roads"}}})
	assert.False(t, ok)
	_, visible = c.Visible()
	assert.False(t, visible)
}

func TestActivate_WholeMap(t *testing.T) {
	t.Parallel()

	calls := 0
	c, err := New(&cfg.Options{GetContent: func(e Event) string {
		calls++
		return fmt.Sprintf("%d features at %.1f,%.1f", len(e.Features), e.LngLat.Lng, e.LngLat.Lat)
	}})
	require.NoError(t, err)

	content, ok := c.Activate(Event{LngLat: cfg.LngLat{Lng: 13.4, Lat: 52.5}})
	require.True(t, ok)
	assert.Equal(t, "0 features at 13.4,52.5", content)
	assert.Equal(t, 1, calls)

	c.Deactivate()
	_, visible := c.Visible()
	assert.False(t, visible)
}

func TestActivate_Script(t *testing.T) {
	t.Parallel()

	c, err := New(&cfg.Options{
		GetContentScript: callbacks.NewScript(`_ = "Feature: " + str(ctx["features"][0]["id"])`),
		Layer:            "poi",
	})
	require.NoError(t, err)

	content, ok := c.Activate(Event{Features: []cfg.Feature{{ID: 42, Layer: "poi"}}})
	require.True(t, ok)
	assert.Equal(t, "Feature: 42", content)
}

func TestNew_RequiresContent(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	assert.ErrorIs(t, err, errz.ErrMissingRequiredField)

	_, err = New(&cfg.Options{Layer: "poi"})
	assert.ErrorIs(t, err, errz.ErrMissingRequiredField)
}
