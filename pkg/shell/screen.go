package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/goterm/term"
)

const (
	Title  = "Dexscreener Analyzer"
	Prompt = "[Enter] Fetch and Analyze   [q] Quit"

	clearScreen  = "\033[H\033[2J"
	defaultWidth = 100
	minWidth     = len(Title) + 4
)

// Screen draws a session as a fixed terminal window.
type Screen struct {
	out     io.Writer
	width   int
	colored bool
	clear   bool
}

// ScreenOption configures a Screen
type ScreenOption func(*Screen)

// WithColors enables goterm colors on the status line.
func WithColors(colored bool) ScreenOption {
	return func(s *Screen) {
		s.colored = colored
	}
}

// WithClear controls whether the screen is cleared before each redraw.
func WithClear(clear bool) ScreenOption {
	return func(s *Screen) {
		s.clear = clear
	}
}

// WithWidth sets the frame width in columns, never narrower than the title.
func WithWidth(width int) ScreenOption {
	return func(s *Screen) {
		s.width = max(width, minWidth)
	}
}

// NewScreen creates a screen drawing on out, 100 columns wide and uncolored
// unless options say otherwise.
func NewScreen(out io.Writer, options ...ScreenOption) *Screen {
	s := &Screen{out: out, width: defaultWidth}
	for _, option := range options {
		option(s)
	}
	return s
}

// Draw renders title, output area, status line and prompt.
func (s *Screen) Draw(session *Session) {
	var sb strings.Builder

	if s.clear {
		sb.WriteString(clearScreen)
	}

	rule := "+" + strings.Repeat("-", s.width-2) + "+\n"

	sb.WriteString(rule)
	fmt.Fprintf(&sb, "| %-*s |\n", s.width-4, Title)
	sb.WriteString(rule)

	output := strings.TrimRight(session.Output, "\n")
	if output != "" {
		sb.WriteString(output)
		sb.WriteString("\n")
	}

	sb.WriteString(rule)
	sb.WriteString("Status: ")
	sb.WriteString(s.paintStatus(session.Status))
	sb.WriteString("\n")
	sb.WriteString(Prompt)
	sb.WriteString("\n")

	io.WriteString(s.out, sb.String())
}

func (s *Screen) paintStatus(status string) string {
	if !s.colored {
		return status
	}

	switch status {
	case StatusDone:
		return term.Greenf("%s", status)
	case StatusError:
		return term.Redf("%s", status)
	case StatusReady:
		return term.Whitef("%s", status)
	default:
		return term.Yellowf("%s", status)
	}
}

// Run redraws the screen and reads commands from in until the user quits, the
// input ends or ctx is done. An empty line or "f" triggers one run.
func Run(ctx context.Context, session *Session, screen *Screen, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	screen.Draw(session)

	for ctx.Err() == nil && scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "f", "fetch":
			session.FetchAndAnalyze(ctx)
		case "q", "quit", "exit":
			return nil
		}
		screen.Draw(session)
	}

	return scanner.Err()
}
