package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/impero-dev/impero/internal/generator"
)

// LineAsker asks each question on its own line. An empty line, or end of
// input, accepts the default.
type LineAsker struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLineAsker reads answers from r and writes questions to w.
func NewLineAsker(r io.Reader, w io.Writer) *LineAsker {
	return &LineAsker{reader: bufio.NewReader(r), w: w}
}

func (l *LineAsker) Ask(defaults generator.AnswerSet) (generator.AnswerSet, error) {
	name, err := l.input(MsgName, defaults.Name)
	if err != nil {
		return generator.AnswerSet{}, err
	}
	description, err := l.input(MsgDescription, defaults.Description)
	if err != nil {
		return generator.AnswerSet{}, err
	}
	css, err := l.selectFrom(MsgCSS, generator.CSSChoices(), defaults.CSS.String())
	if err != nil {
		return generator.AnswerSet{}, err
	}
	js, err := l.selectFrom(MsgJS, generator.JSChoices(), defaults.JS.String())
	if err != nil {
		return generator.AnswerSet{}, err
	}
	copyEnv, err := l.confirm(MsgCopyEnv, defaults.CopyEnv)
	if err != nil {
		return generator.AnswerSet{}, err
	}
	installDeps, err := l.confirm(MsgInstallDeps, defaults.InstallDeps)
	if err != nil {
		return generator.AnswerSet{}, err
	}

	return toAnswerSet(name, description, css, js, copyEnv, installDeps)
}

func (l *LineAsker) input(msg, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(l.w, "? %s (%s) ", msg, def)
	} else {
		fmt.Fprintf(l.w, "? %s ", msg)
	}
	line, err := l.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// selectFrom presents a numbered list and returns the chosen item.
func (l *LineAsker) selectFrom(msg string, items []string, def string) (string, error) {
	def = defaultChoice(items, def)
	defIdx := 0
	fmt.Fprintf(l.w, "? %s\n", msg)
	for i, item := range items {
		if item == def {
			defIdx = i
		}
		fmt.Fprintf(l.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(l.w, "Enter number [1-%d] (%d): ", len(items), defIdx+1)

	line, err := l.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return items[num-1], nil
}

func (l *LineAsker) confirm(msg string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(l.w, "? %s (%s) ", msg, hint)

	line, err := l.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected y or n", line)
	}
}

func (l *LineAsker) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
