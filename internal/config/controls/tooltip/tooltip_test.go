package tooltip

import (
	"fmt"
	"testing"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	"github.com/atlanticdynamic/mapctl/internal/config/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func poiEvent() Event {
	return Event{
		Point:  Point{X: 120, Y: 48},
		LngLat: LngLat{Lng: 13.405, Lat: 52.52},
		Features: []Feature{
			{ID: 42, Layer: "poi", Properties: map[string]any{"name": "Fernsehturm"}},
		},
	}
}

func TestOptions_Content(t *testing.T) {
	t.Parallel()

	t.Run("go function", func(t *testing.T) {
		o := &Options{
			Layer:      "poi",
			GetContent: func(e Event) string { return fmt.Sprintf("Feature: %v", e.Features[0].ID) },
		}
		assert.Equal(t, "Feature: 42", o.Content(poiEvent()))
	})

	t.Run("script", func(t *testing.T) {
		script := callbacks.NewScript(`_ = "Feature: " + str(ctx["features"][0]["id"])`)
		require.NoError(t, script.Validate())
		o := &Options{Layer: "poi", GetContentScript: script, GetContent: ScriptContentFunc(script, nil)}
		assert.Equal(t, "Feature: 42", o.Content(poiEvent()))
	})

	t.Run("failing script yields empty content", func(t *testing.T) {
		content := ScriptContentFunc(callbacks.NewScript(`_ = ctx["features"][5]`), nil)
		assert.Empty(t, content(poiEvent()))
	})

	t.Run("unset", func(t *testing.T) {
		assert.Empty(t, (&Options{}).Content(poiEvent()))
	})
}

func TestEvent_Map(t *testing.T) {
	t.Parallel()

	m := poiEvent().Map()
	assert.Equal(t, map[string]any{"x": 120.0, "y": 48.0}, m["point"])
	features, ok := m["features"].([]any)
	require.True(t, ok)
	require.Len(t, features, 1)
	assert.Equal(t, "poi", features[0].(map[string]any)["layer"])

	empty := Event{Features: []Feature{{ID: "a"}}}.Map()
	first := empty["features"].([]any)[0].(map[string]any)
	assert.NotNil(t, first["properties"])
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Options{GetContent: func(Event) string { return "" }}).Validate())
	assert.NoError(t, (&Options{GetContentScript: callbacks.NewScript(`_ = "x"`)}).Validate())

	err := (&Options{Layer: "poi"}).Validate()
	assert.ErrorIs(t, err, errz.ErrMissingRequiredField)

	err = (&Options{GetContentScript: callbacks.NewScript(`_ = (`)}).Validate()
	assert.ErrorIs(t, err, callbacks.ErrCompilationFailed)
}

func TestOptions_ProtoRoundTrip(t *testing.T) {
	t.Parallel()

	script := callbacks.NewScript(`_ = "Feature: " + str(ctx["features"][0]["id"])`)
	o := &Options{Layer: "poi", GetContentScript: script, GetContent: ScriptContentFunc(script, nil)}

	pb, err := o.ToProto()
	require.NoError(t, err)
	decoded, err := FromProto(pb)
	require.NoError(t, err)
	assert.True(t, o.Equals(decoded))
	require.NoError(t, decoded.Validate())
	assert.Equal(t, "Feature: 42", decoded.Content(poiEvent()))

	_, err = (&Options{GetContent: func(Event) string { return "" }}).ToProto()
	assert.ErrorIs(t, err, callbacks.ErrNotSerializable)
}

func TestOptions_ProtoRoundTrip_ScriptOnly(t *testing.T) {
	t.Parallel()

	o := &Options{GetContentScript: callbacks.NewScript(`_ = "x"`), Layer: "poi"}
	require.NoError(t, o.Validate())

	pb, err := o.ToProto()
	require.NoError(t, err)
	decoded, err := FromProto(pb)
	require.NoError(t, err)
	require.NotNil(t, decoded.GetContent, "decoding wraps the script")
	assert.True(t, o.Equals(decoded))
	assert.True(t, decoded.Equals(o))
}

func TestOptions_Equals_Callbacks(t *testing.T) {
	t.Parallel()

	goContent := func(Event) string { return "" }
	script := callbacks.NewScript(`_ = "x"`)

	tests := []struct {
		name string
		a, b *Options
		want bool
	}{
		{name: "both go functions", a: &Options{GetContent: goContent}, b: &Options{GetContent: goContent}, want: true},
		{name: "go function and nothing", a: &Options{GetContent: goContent}, b: &Options{}, want: false},
		{name: "script with and without adapter", a: &Options{GetContentScript: script}, b: &Options{GetContentScript: script, GetContent: goContent}, want: true},
		{name: "different scripts", a: &Options{GetContentScript: script}, b: &Options{GetContentScript: callbacks.NewScript(`_ = "y"`)}, want: false},
		{name: "script and go function", a: &Options{GetContentScript: script}, b: &Options{GetContent: goContent}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equals(tt.b))
			assert.Equal(t, tt.want, tt.b.Equals(tt.a))
		})
	}
}

func TestFromProto_Errors(t *testing.T) {
	t.Parallel()

	for name, input := range map[string]map[string]any{
		"layer not a string":        {KeyLayer: 3.0},
		"get_content not a table":   {KeyGetContent: "return 1"},
		"unknown key":               {"layers": []any{"poi"}},
		"unknown key inside script": {KeyGetContent: map[string]any{"code": `_ = ""`, "lang": "starlark"}},
	} {
		t.Run(name, func(t *testing.T) {
			pb, err := structpb.NewStruct(input)
			require.NoError(t, err)
			_, err = FromProto(pb)
			assert.Error(t, err)
		})
	}
}

func TestOptions_String(t *testing.T) {
	t.Parallel()

	o := &Options{GetContent: func(Event) string { return "" }}
	assert.Equal(t, "Tooltip(layer=whole map, content=Go function)", o.String())
	assert.Contains(t, o.ToTree().Tree().String(), "whole map")
}
