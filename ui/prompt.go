package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrCancelled = errors.New("cancelled")

// OrdinalPrompt shows the entries of an archive and asks which one to
// extract.
type OrdinalPrompt struct {
	names     []string
	input     string
	message   string
	ordinal   uint32
	done      bool
	cancelled bool
}

func NewOrdinalPrompt(names []string) OrdinalPrompt {
	return OrdinalPrompt{
		names: names,
	}
}

func (p OrdinalPrompt) Ordinal() (uint32, error) {
	if p.cancelled || !p.done {
		return 0, ErrCancelled
	}
	return p.ordinal, nil
}

func (p OrdinalPrompt) Init() tea.Cmd {
	return nil
}

func (p OrdinalPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		p.cancelled = true
		return p, tea.Quit
	case tea.KeyBackspace:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
		p.message = ""
	case tea.KeyEnter:
		ordinal, err := strconv.ParseUint(p.input, 10, 32)
		if err != nil {
			p.message = fmt.Sprintf("%q is not a file id", p.input)
			p.input = ""
			return p, nil
		}
		p.ordinal = uint32(ordinal)
		p.done = true
		return p, tea.Quit
	case tea.KeyRunes:
		digits := lo.Filter(
			keyMsg.Runes,
			func(r rune, _ int) bool {
				return r >= '0' && r <= '9'
			},
		)
		p.input += string(digits)
		p.message = ""
	}
	return p, nil
}

func (p OrdinalPrompt) View() string {
	builder := strings.Builder{}
	builder.WriteString("THEO\n\n")
	for i, name := range p.names {
		builder.WriteString(fmt.Sprintf("%4d  %s\n", i+1, name))
	}
	builder.WriteString("\nFile id to extract: " + p.input + "\n")
	if p.message != "" {
		builder.WriteString(p.message + "\n")
	}
	builder.WriteString("(enter to confirm, esc to cancel)\n")
	return builder.String()
}

// PromptOrdinal runs the prompt on the terminal until a number is entered
// or the user gives up.
func PromptOrdinal(names []string) (uint32, error) {
	model, err := tea.NewProgram(NewOrdinalPrompt(names)).StartReturningModel()
	if err != nil {
		return 0, errors.Wrap(err, "PromptOrdinal error")
	}
	prompt, ok := model.(OrdinalPrompt)
	if !ok {
		return 0, errors.Errorf("PromptOrdinal error: unexpected model %T", model)
	}
	return prompt.Ordinal()
}
