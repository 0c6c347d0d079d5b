package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, quietLogger(), "straight", 8, 0.5, 1, 1, true))

	var samples []sample
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var s sample
		require.NoError(t, json.Unmarshal(sc.Bytes(), &s))
		samples = append(samples, s)
	}
	require.Len(t, samples, 8)

	first, last := samples[0], samples[len(samples)-1]
	require.Equal(t, uint64(1), first.Tick)
	require.InDelta(t, 0.125, first.Progress, 1e-9)
	require.InDelta(t, 0.375, first.Position[0], 1e-9)
	require.InDelta(t, 90, first.Yaw, 1e-9)

	require.Equal(t, uint64(8), last.Tick)
	require.InDelta(t, 4.0, last.Time, 1e-9)
	require.InDelta(t, 1, last.Progress, 1e-9)
	require.InDelta(t, 3, last.Position[0], 1e-9)
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, quietLogger(), "canal", 120, 1.0/60, 7, 30, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// ticks 0, 30, 60, 90 and the last one
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "group=0")
}

func TestRunErrors(t *testing.T) {
	require.Error(t, run(io.Discard, quietLogger(), "straight", 1, 0, 1, 1, false))
	require.Error(t, run(io.Discard, quietLogger(), "does-not-exist", 1, 0.1, 1, 1, false))
}
