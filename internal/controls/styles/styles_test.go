package styles

import (
	"sync"
	"testing"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	streets   = Item{Label: "Streets", StyleName: "streets", StyleURL: "mapbox://styles/mapbox/streets-v12"}
	satellite = Item{Label: "Satellite", StyleName: "satellite", StyleURL: "mapbox://styles/mapbox/satellite-v9"}
)

type changeRecorder struct {
	mu    sync.Mutex
	items []Item
}

func (r *changeRecorder) record(item Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

func (r *changeRecorder) calls() []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Item(nil), r.items...)
}

func TestSelect_OnChangeExactlyOnce(t *testing.T) {
	t.Parallel()

	rec := &changeRecorder{}
	c, err := New(&cfg.Options{Styles: []Item{streets, satellite}, OnChange: rec.record}, WithInitialStyle("streets"))
	require.NoError(t, err)

	require.NoError(t, c.Select(1))
	assert.Equal(t, []Item{satellite}, rec.calls())

	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, satellite, active)

	// Reselecting the active style is not a change.
	require.NoError(t, c.Select(1))
	require.NoError(t, c.SelectByName("satellite"))
	assert.Len(t, rec.calls(), 1)

	require.NoError(t, c.SelectByName("streets"))
	assert.Equal(t, []Item{satellite, streets}, rec.calls())
}

func TestSelect_FirstSelectionNotifies(t *testing.T) {
	t.Parallel()

	rec := &changeRecorder{}
	c, err := New(&cfg.Options{Styles: []Item{streets, satellite}, OnChange: rec.record})
	require.NoError(t, err)

	_, ok := c.Active()
	assert.False(t, ok)
	assert.Equal(t, -1, c.ActiveIndex())

	require.NoError(t, c.Select(0))
	assert.Equal(t, []Item{streets}, rec.calls())
}

func TestSelect_Errors(t *testing.T) {
	t.Parallel()

	empty, err := New(&cfg.Options{Styles: []Item{}})
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.ErrorIs(t, empty.Select(0), ErrNoStyles)

	c, err := New(&cfg.Options{Styles: []Item{streets}})
	require.NoError(t, err)
	assert.ErrorIs(t, c.Select(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, c.Select(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, c.SelectByName("terrain"), ErrUnknownStyle)
	assert.NoError(t, c.Select(0), "no OnChange configured")

	_, err = New(&cfg.Options{Styles: []Item{streets}}, WithInitialStyle("terrain"))
	assert.ErrorIs(t, err, ErrUnknownStyle)

	_, err = New(&cfg.Options{Styles: []Item{{Label: "x"}}})
	assert.ErrorIs(t, err, cfg.ErrEmptyStyleField)
}

func TestSelect_ScriptOnChange(t *testing.T) {
	t.Parallel()

	script := callbacks.NewScript(`_ = ctx.get("style_name")`)
	c, err := New(&cfg.Options{Styles: []Item{streets, satellite}, OnChangeScript: script})
	require.NoError(t, err)
	assert.NoError(t, c.Select(1))
}

func TestItems_IsACopy(t *testing.T) {
	t.Parallel()

	opts := &cfg.Options{Styles: []Item{streets, satellite}}
	c, err := New(opts)
	require.NoError(t, err)

	opts.Styles[0].Label = "changed"
	items := c.Items()
	assert.Equal(t, "Streets", items[0].Label)

	items[1].Label = "changed"
	assert.Equal(t, "Satellite", c.Items()[1].Label)
}

func TestSelect_Concurrent(t *testing.T) {
	t.Parallel()

	rec := &changeRecorder{}
	c, err := New(&cfg.Options{Styles: []Item{streets, satellite}, OnChange: rec.record})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Select(i % 2)
		}()
	}
	wg.Wait()

	calls := rec.calls()
	assert.NotEmpty(t, calls)
	assert.LessOrEqual(t, len(calls), 50)
}
