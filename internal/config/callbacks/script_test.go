package callbacks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script *Script
		want   string
	}{
		{name: "nil", script: nil, want: "Starlark(nil)"},
		{name: "empty", script: &Script{}, want: "Starlark(code=0 chars, timeout=1s)"},
		{name: "code", script: &Script{Code: `_ = "x"`, Timeout: 2 * time.Second}, want: "Starlark(code=7 chars, timeout=2s)"},
		{name: "uri", script: &Script{URI: "file:///etc/label.star"}, want: "Starlark(uri=file:///etc/label.star, timeout=1s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.script.String())
		})
	}
}

func TestScript_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		s := NewScript(`_ = str(ctx.get("distance")) + " km"`)
		require.NoError(t, s.Validate())
	})

	t.Run("missing code and uri", func(t *testing.T) {
		err := (&Script{}).Validate()
		assert.ErrorIs(t, err, ErrMissingCodeAndURI)
	})

	t.Run("both code and uri", func(t *testing.T) {
		err := (&Script{Code: `_ = 1`, URI: "/tmp/x.star"}).Validate()
		assert.ErrorIs(t, err, ErrBothCodeAndURI)
	})

	t.Run("negative timeout", func(t *testing.T) {
		err := (&Script{Code: `_ = 1`, Timeout: -time.Second}).Validate()
		assert.ErrorIs(t, err, ErrNegativeTimeout)
	})

	t.Run("syntax error", func(t *testing.T) {
		err := NewScript(`_ = (`).Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCallback)
	})

	t.Run("uri is interpolated", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "label.star")
		require.NoError(t, os.WriteFile(path, []byte(`_ = "ok"`), 0o644))

		written := "${MAPCTL_TEST_SCRIPT_DIR_UNSET:" + dir + "}/label.star"
		s := &Script{URI: written}
		require.NoError(t, s.Validate())
		assert.Equal(t, path, s.URI)
		assert.Equal(t, written, s.SourceURI())

		pb, err := s.ToProto()
		require.NoError(t, err)
		assert.Equal(t, written, pb.GetFields()[KeyURI].GetStringValue())

		decoded, err := FromProto(pb)
		require.NoError(t, err)
		assert.True(t, s.Equals(decoded))
		assert.Equal(t, written, decoded.URI)
	})
}

func TestSameCallback(t *testing.T) {
	t.Parallel()

	a := NewScript(`_ = "a"`)
	b := NewScript(`_ = "b"`)

	tests := []struct {
		name      string
		left      *Script
		leftFunc  bool
		right     *Script
		rightFunc bool
		want      bool
	}{
		{name: "nothing on either side", want: true},
		{name: "go functions on both sides", leftFunc: true, rightFunc: true, want: true},
		{name: "go function on one side", leftFunc: true, want: false},
		{name: "same script, adapter on one side", left: a, right: NewScript(`_ = "a"`), rightFunc: true, want: true},
		{name: "different scripts", left: a, right: b, want: false},
		{name: "script against go function", left: a, rightFunc: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SameCallback(tt.left, tt.leftFunc, tt.right, tt.rightFunc))
			assert.Equal(t, tt.want, SameCallback(tt.right, tt.rightFunc, tt.left, tt.leftFunc))
		})
	}
}

func TestScript_Call(t *testing.T) {
	t.Parallel()

	t.Run("string result", func(t *testing.T) {
		s := NewScript(`_ = str(ctx.get("distance")) + " km"`)
		require.NoError(t, s.Validate())

		got, err := s.CallString(t.Context(), map[string]any{"distance": 2.5})
		require.NoError(t, err)
		assert.Equal(t, "2.5 km", got)
	})

	t.Run("reads nested input", func(t *testing.T) {
		s := NewScript(`
features = ctx.get("features", [])
_ = "Feature: " + str(features[0].get("id")) if features else ""
`)
		require.NoError(t, s.Validate())

		got, err := s.CallString(t.Context(), map[string]any{
			"features": []any{map[string]any{"id": "42"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Feature: 42", got)
	})

	t.Run("non-string result", func(t *testing.T) {
		s := NewScript(`_ = 7`)
		require.NoError(t, s.Validate())

		_, err := s.CallString(t.Context(), map[string]any{})
		assert.ErrorIs(t, err, ErrUnexpectedResult)
	})

	t.Run("compile error surfaces on call", func(t *testing.T) {
		s := NewScript(`_ = (`)
		_, err := s.Call(t.Context(), map[string]any{})
		assert.Error(t, err)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.star")
		require.NoError(t, os.WriteFile(path, []byte(`_ = "name:" + ctx.get("language")`), 0o644))

		s := &Script{URI: "file://" + path}
		require.NoError(t, s.Validate())
		got, err := s.CallString(t.Context(), map[string]any{"language": "de"})
		require.NoError(t, err)
		assert.Equal(t, "name:de", got)
	})
}

func TestScript_ProtoRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script *Script
	}{
		{name: "code", script: &Script{Code: `_ = "x"`}},
		{name: "uri with timeout", script: &Script{URI: "https://example.com/f.star", Timeout: 250 * time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb, err := tt.script.ToProto()
			require.NoError(t, err)

			decoded, err := FromProto(pb)
			require.NoError(t, err)
			assert.True(t, tt.script.Equals(decoded))
		})
	}

	t.Run("nil", func(t *testing.T) {
		var s *Script
		pb, err := s.ToProto()
		require.NoError(t, err)
		assert.Nil(t, pb)

		decoded, err := FromProto(nil)
		require.NoError(t, err)
		assert.Nil(t, decoded)
	})
}

func TestScript_Equals(t *testing.T) {
	t.Parallel()

	var nilScript *Script
	assert.True(t, nilScript.Equals(nil))
	assert.False(t, nilScript.Equals(NewScript("_ = 1")))
	assert.True(t, NewScript("_ = 1").Equals(NewScript("_ = 1")))
	assert.False(t, NewScript("_ = 1").Equals(NewScript("_ = 2")))
}
