package language

import (
	"testing"

	"github.com/atlanticdynamic/mapctl/internal/config/callbacks"
	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/language"
	"github.com/robbyt/go-loglater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitialLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *cfg.Options
		want string
	}{
		{name: "nil options", opts: nil, want: ""},
		{name: "supported language", opts: &cfg.Options{SupportedLanguages: []string{"en", "de"}, Language: "de"}, want: "de"},
		{name: "unsupported falls back to first", opts: &cfg.Options{SupportedLanguages: []string{"en", "de"}, Language: "fr"}, want: "en"},
		{name: "none requested uses first", opts: &cfg.Options{SupportedLanguages: []string{"es", "en"}}, want: "es"},
		{name: "no list keeps request", opts: &cfg.Options{Language: "ja"}, want: "ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Active())
		})
	}
}

func TestNew_FallbackIsLogged(t *testing.T) {
	t.Parallel()

	collector := loglater.NewLogCollector(nil)
	_, err := New(&cfg.Options{SupportedLanguages: []string{"en"}, Language: "fr"}, WithLogHandler(collector))
	require.NoError(t, err)

	logs := collector.GetLogs()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "falling back")
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	c, err := New(&cfg.Options{SupportedLanguages: []string{"en", "de"}})
	require.NoError(t, err)

	require.NoError(t, c.SetLanguage("de"))
	assert.Equal(t, "de", c.Active())

	err = c.SetLanguage("fr")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, "de", c.Active())
}

func TestLanguageKey(t *testing.T) {
	t.Parallel()

	c, err := New(&cfg.Options{
		SupportedLanguages: []string{"en", "de"},
		Language:           "de",
		GetLanguageKey:     func(code string) string { return "name_" + code },
		ExcludedLayerIDs:   []string{"road-shield"},
	})
	require.NoError(t, err)

	assert.Equal(t, "name_de", c.LanguageKey())
	assert.True(t, c.IsExcluded("road-shield"))
	assert.Equal(t, map[string]string{"place-label": "name_de"}, c.LayerKeys([]string{"place-label", "road-shield"}))

	identity, err := New(&cfg.Options{Language: "fr"})
	require.NoError(t, err)
	assert.Equal(t, "fr", identity.LanguageKey())
}

func TestLanguageKey_Script(t *testing.T) {
	t.Parallel()

	c, err := New(&cfg.Options{
		SupportedLanguages:   []string{"en", "de"},
		Language:             "de",
		GetLanguageKeyScript: callbacks.NewScript(`_ = "name_" + ctx["language"]`),
	})
	require.NoError(t, err)
	assert.Equal(t, "name_de", c.LanguageKey())

	require.NoError(t, c.SetLanguage("en"))
	assert.Equal(t, "name_en", c.LanguageKey())
}

func TestNew_CopiesOptions(t *testing.T) {
	t.Parallel()

	opts := &cfg.Options{SupportedLanguages: []string{"en", "de"}}
	c, err := New(opts)
	require.NoError(t, err)

	opts.SupportedLanguages[0] = "xx"
	assert.Equal(t, []string{"en", "de"}, c.Supported())
	assert.Equal(t, "en", c.Active())
}

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := New(&cfg.Options{SupportedLanguages: []string{"not a code"}})
	assert.ErrorIs(t, err, cfg.ErrInvalidLanguageCode)
}
