package progress

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvents(t *testing.T, buf *bytes.Buffer) []Event {
	t.Helper()
	var events []Event
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e Event
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		events = append(events, e)
	}
	return events
}

func TestWriterEmitsOneJSONRecordPerLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Status("run started"))
	require.NoError(t, w.Progress(25))
	require.NoError(t, w.Output("season 2023 done"))
	require.NoError(t, w.Progress(100))
	require.NoError(t, w.Completed(true))

	events := decodeEvents(t, &buf)
	require.Len(t, events, 5)
	assert.Equal(t, EventStatus, events[0].Event)
	assert.Equal(t, "run started", events[0].Message)
	require.NotNil(t, events[1].Percent)
	assert.Equal(t, 25.0, *events[1].Percent)
	assert.Equal(t, EventCompleted, events[4].Event)
	require.NotNil(t, events[4].Success)
	assert.True(t, *events[4].Success)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestWriterClampsPercent(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Progress(-5))
	require.NoError(t, w.Progress(140))

	events := decodeEvents(t, &buf)
	assert.Equal(t, 0.0, *events[0].Percent)
	assert.Equal(t, 100.0, *events[1].Percent)
}

func TestWriterDropsEventsAfterCompletion(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Error("season 2022 dataset missing"))
	require.NoError(t, w.Completed(false))
	require.NoError(t, w.Status("should not appear"))
	require.NoError(t, w.Completed(true))

	events := decodeEvents(t, &buf)
	require.Len(t, events, 2)
	assert.Equal(t, EventError, events[0].Event)
	require.NotNil(t, events[1].Success)
	assert.False(t, *events[1].Success)
}

func TestWriterConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(pct float64) {
			defer wg.Done()
			_ = w.Progress(pct)
		}(float64(i * 5))
	}
	wg.Wait()
	require.NoError(t, w.Completed(true))

	events := decodeEvents(t, &buf)
	assert.Len(t, events, 21)
}
