package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScreen_Draw(t *testing.T) {
	buf := &bytes.Buffer{}
	screen := NewScreen(buf, WithWidth(40))

	screen.Draw(&Session{Output: "Error: boom\n", Status: StatusError})

	text := buf.String()
	require.Contains(t, text, Title)
	require.Contains(t, text, "Error: boom\n")
	require.Contains(t, text, "Status: "+StatusError)
	require.Contains(t, text, Prompt)
	require.NotContains(t, text, clearScreen)
	require.Contains(t, text, "+"+strings.Repeat("-", 38)+"+")
}

func TestScreen_DrawColored(t *testing.T) {
	buf := &bytes.Buffer{}
	NewScreen(buf, WithColors(true), WithClear(true)).Draw(&Session{Status: StatusDone})

	require.True(t, strings.HasPrefix(buf.String(), clearScreen))
	require.Contains(t, buf.String(), StatusDone)
}

func TestRun_FetchThenQuit(t *testing.T) {
	f := newFixture(fivePairs)
	buf := &bytes.Buffer{}

	err := Run(context.Background(), f.session, NewScreen(buf), strings.NewReader("\nq\nf\n"))
	require.NoError(t, err)

	require.Equal(t, 1, f.fetcher.calls)
	require.Equal(t, StatusDone, f.session.Status)
	require.Contains(t, buf.String(), "Status: "+StatusReady)
	require.Contains(t, buf.String(), "Status: "+StatusDone)
}

func TestRun_EndOfInput(t *testing.T) {
	f := newFixture(fivePairs)

	err := Run(context.Background(), f.session, NewScreen(&bytes.Buffer{}), strings.NewReader("f\nfetch\nunknown\n"))
	require.NoError(t, err)
	require.Equal(t, 2, f.fetcher.calls)
}

func TestRun_CanceledContext(t *testing.T) {
	f := newFixture(fivePairs)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, f.session, NewScreen(&bytes.Buffer{}), strings.NewReader("\n\n"))
	require.NoError(t, err)
	require.Zero(t, f.fetcher.calls)
}

func TestScreen_MinimumWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	NewScreen(buf, WithWidth(3)).Draw(&Session{Status: StatusReady})

	require.Contains(t, buf.String(), "| "+Title+" |")
}
