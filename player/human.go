package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"war/game"
)

var errNotANumber = errors.New("not a number")

type inputLine struct {
	text string
	err  error
}

// Human reads menu choices from a line-oriented reader. Lines are scanned in
// the background so a cancelled context interrupts a pending prompt.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer

	once  sync.Once
	lines chan inputLine
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) NextAction(ctx context.Context, view game.View) (game.Action, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Action{}, err
		}
		h.printMenu()
		option, err := h.readInt(ctx, "Choose an option: ")
		if errors.Is(err, errNotANumber) {
			fmt.Fprintln(h.out, "Invalid option! Choose 0, 1 or 2.")
			continue
		}
		if err != nil {
			return game.Action{}, err
		}

		switch option {
		case 1:
			return h.readAttack(ctx, len(view.Territories))
		case 2:
			return game.Action{Type: game.CheckMissionAction}, nil
		case 0:
			return game.Action{Type: game.QuitAction}, nil
		default:
			fmt.Fprintln(h.out, "Invalid option! Choose 0, 1 or 2.")
		}
	}
}

// Pause waits for the player to press Enter.
func (h *Human) Pause(ctx context.Context) error {
	fmt.Fprint(h.out, "\nPress Enter to continue...")
	if _, err := h.readLine(ctx); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *Human) printMenu() {
	fmt.Fprintln(h.out, "\n=== Main Menu ===")
	fmt.Fprintln(h.out, "1 - Attack")
	fmt.Fprintln(h.out, "2 - Check mission")
	fmt.Fprintln(h.out, "0 - Quit")
}

// readAttack asks for both territories. Range checks are left to the resolver.
func (h *Human) readAttack(ctx context.Context, territories int) (game.Action, error) {
	from, err := h.readIntUntilValid(ctx, fmt.Sprintf("Choose the attacking territory (1 to %d): ", territories))
	if err != nil {
		return game.Action{}, err
	}
	to, err := h.readIntUntilValid(ctx, fmt.Sprintf("Choose the defending territory (1 to %d): ", territories))
	if err != nil {
		return game.Action{}, err
	}
	return game.Attack(from, to), nil
}

func (h *Human) readIntUntilValid(ctx context.Context, prompt string) (int, error) {
	for {
		n, err := h.readInt(ctx, prompt)
		if errors.Is(err, errNotANumber) {
			fmt.Fprintln(h.out, "Please type a number.")
			continue
		}
		return n, err
	}
}

func (h *Human) readInt(ctx context.Context, prompt string) (int, error) {
	fmt.Fprint(h.out, prompt)
	line, err := h.readLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, line)
	}
	return n, nil
}

func (h *Human) readLine(ctx context.Context) (string, error) {
	h.once.Do(func() {
		h.lines = make(chan inputLine)
		go h.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-h.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// scan feeds lines to readLine until the input ends, then reports why.
func (h *Human) scan() {
	defer close(h.lines)
	for h.scanner.Scan() {
		h.lines <- inputLine{text: h.scanner.Text()}
	}
	if err := h.scanner.Err(); err != nil {
		h.lines <- inputLine{err: fmt.Errorf("read input: %w", err)}
	}
}
