package player

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
	"war/game"

	"github.com/stretchr/testify/require"
)

func TestHumanNextAction(t *testing.T) {
	ctx := context.Background()
	view := standardView(t, game.Mission{Kind: game.HoldCount, Count: 3})

	tests := []struct {
		name  string
		input string
		want  game.Action
	}{
		{name: "attack", input: "1\n1\n2\n", want: game.Attack(1, 2)},
		{name: "attack keeps out of range numbers", input: "1\n9\n0\n", want: game.Attack(9, 0)},
		{name: "check mission", input: "2\n", want: game.Action{Type: game.CheckMissionAction}},
		{name: "quit", input: "0\n", want: game.Action{Type: game.QuitAction}},
		{name: "space around the option", input: "  2 \n", want: game.Action{Type: game.CheckMissionAction}},
		{name: "reprompts after unknown option", input: "7\nabc\n0\n", want: game.Action{Type: game.QuitAction}},
		{name: "reprompts for a territory number", input: "1\nfirst\n4\n5\n", want: game.Attack(4, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			h := NewHuman(strings.NewReader(tt.input), &out)

			got, err := h.NextAction(ctx, view)

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Contains(t, out.String(), "=== Main Menu ===")
		})
	}
}

func TestHumanInvalidOptionMessage(t *testing.T) {
	var out bytes.Buffer
	h := NewHuman(strings.NewReader("3\n0\n"), &out)

	_, err := h.NextAction(context.Background(), standardView(t, game.Mission{}))

	require.NoError(t, err)
	require.Contains(t, out.String(), "Invalid option! Choose 0, 1 or 2.")
	require.Equal(t, 2, strings.Count(out.String(), "=== Main Menu ==="), "The menu is shown again after a bad option")
}

func TestHumanEndOfInput(t *testing.T) {
	view := standardView(t, game.Mission{})

	_, err := NewHuman(strings.NewReader(""), io.Discard).NextAction(context.Background(), view)
	require.ErrorIs(t, err, io.EOF)

	_, err = NewHuman(strings.NewReader("1\n2\n"), io.Discard).NextAction(context.Background(), view)
	require.ErrorIs(t, err, io.EOF, "Input ending halfway through an attack is reported")
}

func TestHumanPause(t *testing.T) {
	var out bytes.Buffer
	h := NewHuman(strings.NewReader("\n2\n"), &out)

	require.NoError(t, h.Pause(context.Background()))
	require.Contains(t, out.String(), "Press Enter to continue...")

	got, err := h.NextAction(context.Background(), standardView(t, game.Mission{}))
	require.NoError(t, err)
	require.Equal(t, game.CheckMissionAction, got.Type, "Pause consumes exactly one line")

	require.NoError(t, h.Pause(context.Background()), "Pausing at the end of input is not an error")
}

func TestHumanCancelWhileWaiting(t *testing.T) {
	view := standardView(t, game.Mission{})

	t.Run("menu", func(t *testing.T) {
		in, w := io.Pipe()
		defer w.Close()
		ctx, cancel := context.WithCancel(context.Background())

		errs := make(chan error, 1)
		go func() {
			_, err := NewHuman(in, io.Discard).NextAction(ctx, view)
			errs <- err
		}()
		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-errs:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("NextAction kept waiting for input after the context was cancelled")
		}
	})

	t.Run("pause", func(t *testing.T) {
		in, w := io.Pipe()
		defer w.Close()
		ctx, cancel := context.WithCancel(context.Background())

		errs := make(chan error, 1)
		go func() {
			errs <- NewHuman(in, io.Discard).Pause(ctx)
		}()
		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-errs:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("Pause kept waiting for input after the context was cancelled")
		}
	})
}

func TestHumanReadsAfterCancelledPrompt(t *testing.T) {
	in, w := io.Pipe()
	h := NewHuman(in, io.Discard)
	view := standardView(t, game.Mission{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.NextAction(ctx, view)
	require.ErrorIs(t, err, context.Canceled)

	go func() {
		_, _ = io.WriteString(w, "2\n")
		_ = w.Close()
	}()
	got, err := h.NextAction(context.Background(), view)
	require.NoError(t, err)
	require.Equal(t, game.CheckMissionAction, got.Type)
}
