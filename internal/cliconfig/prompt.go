package cliconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompts shown when a value was not supplied by file, environment or flag.
const (
	PromptPackets = "Enter the number of packets to be sent: "
	PromptBits    = "Enter the number of bits for sequence numbers (n): "
)

// ErrNoInput is returned when standard input ends before a value is read.
var ErrNoInput = errors.New("no input")

// Prompter reads integer answers from an interactive input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Int prints label and parses one integer from the next input line.
func (p *Prompter) Int(label string) (int, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return 0, ErrNoInput
		}
		return 0, err
	}

	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", strings.TrimSpace(line), err)
	}
	return v, nil
}

// Resolve prompts for every value the configuration still lacks.
func (p *Prompter) Resolve(cfg *Config) error {
	if cfg.NeedsPackets() {
		n, err := p.Int(PromptPackets)
		if err != nil {
			return fmt.Errorf("read %s: %w", KeyPackets, err)
		}
		cfg.Packets = n
		cfg.MarkSet(KeyPackets)
	}
	if cfg.NeedsBits() {
		n, err := p.Int(PromptBits)
		if err != nil {
			return fmt.Errorf("read %s: %w", KeyBits, err)
		}
		cfg.Bits = n
		cfg.MarkSet(KeyBits)
	}
	return nil
}
