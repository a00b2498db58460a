package inspect

import (
	"context"
	"testing"

	"github.com/atlanticdynamic/mapctl/internal/config/base"
	"github.com/atlanticdynamic/mapctl/internal/config/button"
	cfg "github.com/atlanticdynamic/mapctl/internal/config/controls/inspect"
	"github.com/atlanticdynamic/mapctl/internal/config/labels"
	"github.com/robbyt/go-loglater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func features() []Feature {
	return []Feature{
		{ID: 1, Layer: "poi", Properties: map[string]any{"name": "Cafe"}},
		{ID: "road-7", Layer: "roads"},
	}
}

func TestInspect_Console(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		console  *bool
		wantLogs int
	}{
		{name: "absent", console: nil, wantLogs: 0},
		{name: "off", console: boolPtr(false), wantLogs: 0},
		{name: "on", console: boolPtr(true), wantLogs: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := loglater.NewLogCollector(nil)
			c, err := New(&cfg.Options{Console: tt.console}, WithConsoleHandler(collector))
			require.NoError(t, err)

			require.True(t, c.Toggle())
			got := c.Inspect(context.Background(), features())
			assert.Len(t, got, 2)

			logs := collector.GetLogs()
			require.Len(t, logs, tt.wantLogs)
			for _, record := range logs {
				assert.Equal(t, "Inspected feature", record.Message)
			}
		})
	}
}

func TestInspect_NoFeaturesLogsPlaceholder(t *testing.T) {
	t.Parallel()

	collector := loglater.NewLogCollector(nil)
	c, err := New(&cfg.Options{
		Options: base.Options{Strings: labels.Table{cfg.LabelNoFeatures: "Nichts hier"}},
		Console: boolPtr(true),
	}, WithConsoleHandler(collector))
	require.NoError(t, err)

	c.Toggle()
	assert.Empty(t, c.Inspect(context.Background(), []Feature{}))

	logs := collector.GetLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "Nichts hier", logs[0].Message)
}

func TestInspect_InactiveRecordsNothing(t *testing.T) {
	t.Parallel()

	c, err := New(nil)
	require.NoError(t, err)

	assert.False(t, c.Active())
	assert.Nil(t, c.Inspect(context.Background(), features()))
	assert.Nil(t, c.Selection())
}

func TestSelection_IsACopy(t *testing.T) {
	t.Parallel()

	c, err := New(nil)
	require.NoError(t, err)
	c.Toggle()

	input := features()
	c.Inspect(context.Background(), input)
	input[0].Properties["name"] = "changed"

	selection := c.Selection()
	require.Len(t, selection, 2)
	assert.Equal(t, "Cafe", selection[0].Properties["name"])

	selection[0].Layer = "changed"
	assert.Equal(t, "poi", c.Selection()[0].Layer)

	assert.False(t, c.Toggle())
	assert.Nil(t, c.Selection())
}

func TestLabels(t *testing.T) {
	t.Parallel()

	c, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, "Toggle inspector", c.Button().Title)
	assert.Equal(t, "No features", c.NoFeaturesText())
}

func TestWithButton(t *testing.T) {
	t.Parallel()

	icon := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"><circle cx="8" cy="8" r="6"/></svg>`
	c, err := New(nil, WithButton(button.Options{Icon: icon, Text: "i"}))
	require.NoError(t, err)
	assert.Equal(t, button.Options{Icon: icon, Text: "i", Title: "Toggle inspector"}, c.Button())

	_, err = New(nil, WithButton(button.Options{Icon: "<svg></svg><svg></svg>"}))
	assert.ErrorIs(t, err, button.ErrInvalidIcon)
}
