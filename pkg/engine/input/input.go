package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Event is one read from the terminal: either a bound key, reported by Code, or
// a typed command line.
type Event struct {
	Code string
	Line string
}

// Intent maps the event through the key bindings or the command parser.
func (ev Event) Intent(ctx ParseContext) (Intent, error) {
	code := ev.Code
	if code == "" && isBound(strings.TrimSpace(ev.Line)) {
		code = strings.TrimSpace(ev.Line)
	}
	if code != "" {
		return MapToIntent(DebouncedInput{Device: DeviceTerminal, Code: code}), nil
	}
	return Parse(ctx, ev.Line)
}

// TerminalReader reads keys from a terminal. When the input is not a terminal it
// falls back to reading whole lines.
type TerminalReader struct {
	in    *os.File
	out   io.Writer
	lines *bufio.Reader
}

// NewTerminalReader reads from in and echoes typed text to out.
func NewTerminalReader(in *os.File, out io.Writer) *TerminalReader {
	return &TerminalReader{in: in, out: out}
}

// Read blocks for the next event.
func (r *TerminalReader) Read() (Event, error) {
	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return r.readLine()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return Event{}, fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b1, err := r.readByte()
	if err != nil {
		return Event{}, err
	}

	if arrowKey, _ := r.tryReadArrowKey(b1); arrowKey != "" {
		return Event{Code: arrowKey}, nil
	}

	switch b1 {
	case 3:
		return Event{Code: "ctrl_c"}, nil
	case 0x1b:
		return Event{Code: "escape"}, nil
	case '\t':
		return Event{Code: "tab"}, nil
	case ' ':
		return Event{Code: "space"}, nil
	case '\n', '\r':
		return Event{}, nil
	}

	// Bound symbols act at once; letters start a command line.
	if code := string(b1); isBound(code) && !isLetter(b1) {
		return Event{Code: code}, nil
	}

	var line []byte
	if b1 >= 32 && b1 < 127 {
		line = append(line, b1)
		fmt.Fprint(r.out, string(b1))
	}

	for {
		b, err := r.readByte()
		if err != nil {
			break
		}

		// Arrow keys pressed during text entry are discarded
		if b == 0x1b {
			r.tryReadArrowKey(b)
			continue
		}

		if b == 127 || b == 8 {
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(r.out, "\b \b")
			}
			continue
		}

		if b == '\n' || b == '\r' {
			fmt.Fprint(r.out, "\r\n")
			break
		}

		if b == 3 {
			return Event{Code: "ctrl_c"}, nil
		}

		if b >= 32 && b < 127 {
			line = append(line, b)
			fmt.Fprint(r.out, string(b))
		}
	}

	return Event{Line: string(line)}, nil
}

func (r *TerminalReader) readLine() (Event, error) {
	if r.lines == nil {
		r.lines = bufio.NewReader(r.in)
	}
	line, err := r.lines.ReadString('\n')
	if err != nil && line == "" {
		return Event{}, err
	}
	return Event{Line: strings.TrimSpace(line)}, nil
}

func (r *TerminalReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := r.in.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, empty string otherwise.
func (r *TerminalReader) tryReadArrowKey(firstByte byte) (string, []byte) {
	if firstByte != 0x1b {
		return "", []byte{firstByte}
	}

	b2, err := r.readByte()
	if err != nil {
		return "", nil
	}

	// Both CSI (ESC [) and SS3 (ESC O) sequences
	if b2 == '[' || b2 == 'O' {
		b3, err := r.readByte()
		if err != nil {
			return "", nil
		}

		switch b3 {
		case 'A':
			return "arrow_up", nil
		case 'B':
			return "arrow_down", nil
		case 'C':
			return "arrow_right", nil
		case 'D':
			return "arrow_left", nil
		}
		return "", nil
	}

	return "", []byte{firstByte, b2}
}

func isBound(code string) bool {
	_, ok := bindings[code]
	return ok
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
