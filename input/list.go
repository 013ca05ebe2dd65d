package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/simonhull/firebird-suite/warbler/logger"
	"github.com/simonhull/firebird-suite/warbler/terminal"
	"github.com/simonhull/firebird-suite/warbler/validate"
)

const (
	topCommandMessage  = "Item number, (a)dd or (c)ontinue"
	itemCommandMessage = "Item %d: (e)dit, (d)elete or back to the (l)ist"
	emptyListLine      = "  (no items)"

	unknownCommand    = "Unknown command"
	unknownItemNumber = "Unknown item number"
)

// List lets the user edit a list of values and returns it once they choose
// to continue. initial is copied and never modified.
//
// itemPrompt is the question asked for a new entry, or for the new value
// of an entry being edited (with its current value as the default). Empty
// answers leave the list unchanged.
//
// Example:
//
//	hosts, err := p.List("Allowed hosts", "Host", []string{"localhost"})
//	// Displays: Allowed hosts
//	//             1. localhost
//	//           Item number, (a)dd or (c)ontinue
func (p *Prompter) List(title, itemPrompt string, initial []string) ([]string, error) {
	e := &listEditor{
		p:          p,
		title:      title,
		itemPrompt: itemPrompt,
		items:      newItems(initial),
		log:        p.log.WithFields(logger.F("list", title)),
	}
	if err := e.run(); err != nil {
		return nil, err
	}
	return e.items.snapshot(), nil
}

type listState int

const (
	stateDisplaying listState = iota
	stateAwaitingTopCommand
	stateAwaitingItemCommand
	stateTerminated
)

// String returns the string representation of the state
func (s listState) String() string {
	switch s {
	case stateDisplaying:
		return "displaying"
	case stateAwaitingTopCommand:
		return "awaiting-top-command"
	case stateAwaitingItemCommand:
		return "awaiting-item-command"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

type commandKind int

const (
	commandAdd commandKind = iota + 1
	commandSelect
	commandContinue
	commandEdit
	commandDelete
	commandBack
)

type command struct {
	kind  commandKind
	index int // 1-based, set for commandSelect
}

// listEditor runs the list state machine for one List call.
type listEditor struct {
	p          *Prompter
	title      string
	itemPrompt string
	items      *items
	log        logger.Logger

	state    listState
	selected int // 1-based, set while awaiting an item command
}

func (e *listEditor) run() error {
	for e.state != stateTerminated {
		var err error
		switch e.state {
		case stateDisplaying:
			err = e.display()
		case stateAwaitingTopCommand:
			err = e.topCommand()
		case stateAwaitingItemCommand:
			err = e.itemCommand()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *listEditor) transition(to listState) {
	e.log.Debug("list state",
		logger.F("from", e.state.String()),
		logger.F("to", to.String()),
		logger.F("items", e.items.len()),
	)
	e.state = to
}

func (e *listEditor) display() error {
	if err := e.p.ch.WriteLine(terminal.Styled(terminal.StyleTitle, e.title)); err != nil {
		return err
	}

	if e.items.len() == 0 {
		if err := e.p.ch.WriteLine(terminal.Styled(terminal.StylePlain, emptyListLine)); err != nil {
			return err
		}
	}
	for i := 0; i < e.items.len(); i++ {
		line := fmt.Sprintf("  %d. %s", i+1, e.items.at(i))
		if err := e.p.ch.WriteLine(terminal.Styled(terminal.StylePlain, line)); err != nil {
			return err
		}
	}

	e.transition(stateAwaitingTopCommand)
	return nil
}

func (e *listEditor) topCommand() error {
	rule := topCommandRule{count: e.items.len()}
	answer, err := e.p.Ask(Question{
		Message:     topCommandMessage,
		Completions: []string{"a", "c"},
		Rule:        validate.Custom(rule.check),
	})
	if err != nil {
		return err
	}

	cmd, _ := rule.parse(answer)
	switch cmd.kind {
	case commandAdd:
		value, err := e.p.Ask(Question{Message: e.itemPrompt})
		if err != nil {
			return err
		}
		if value != "" {
			e.items.append(value)
		}
		e.transition(stateDisplaying)
	case commandSelect:
		e.selected = cmd.index
		e.transition(stateAwaitingItemCommand)
	case commandContinue:
		e.transition(stateTerminated)
	}
	return nil
}

func (e *listEditor) itemCommand() error {
	answer, err := e.p.Ask(Question{
		Message:     fmt.Sprintf(itemCommandMessage, e.selected),
		Default:     "l",
		Completions: []string{"e", "d", "l"},
		Rule:        validate.Custom(checkItemCommand),
	})
	if err != nil {
		return err
	}

	i := e.selected - 1
	cmd, _ := parseItemCommand(answer)
	switch cmd.kind {
	case commandEdit:
		value, err := e.p.Ask(Question{Message: e.itemPrompt, Default: e.items.at(i)})
		if err != nil {
			return err
		}
		if value != "" {
			e.items.replace(i, value)
		}
	case commandDelete:
		e.items.remove(i)
	case commandBack:
	}

	e.selected = 0
	e.transition(stateDisplaying)
	return nil
}

// topCommandRule accepts an item number in 1..count, "a" or "c".
// It is rebuilt from the live length before every top-level prompt.
type topCommandRule struct {
	count int
}

func (r topCommandRule) parse(text string) (command, *validate.Failure) {
	switch strings.ToLower(text) {
	case "a":
		return command{kind: commandAdd}, nil
	case "c":
		return command{kind: commandContinue}, nil
	}

	if validate.Integer().Check(text).OK() {
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > r.count {
			return command{}, &validate.Failure{Kind: validate.OutOfRangeIndex, Message: unknownItemNumber}
		}
		return command{kind: commandSelect, index: n}, nil
	}

	return command{}, &validate.Failure{Kind: validate.UnknownToken, Message: unknownCommand}
}

func (r topCommandRule) check(text string) validate.Result {
	if _, failure := r.parse(text); failure != nil {
		return validate.Result{Failure: failure}
	}
	return validate.Accept(text)
}

func parseItemCommand(text string) (command, *validate.Failure) {
	switch strings.ToLower(text) {
	case "e":
		return command{kind: commandEdit}, nil
	case "d":
		return command{kind: commandDelete}, nil
	case "l":
		return command{kind: commandBack}, nil
	default:
		return command{}, &validate.Failure{Kind: validate.UnknownToken, Message: unknownCommand}
	}
}

func checkItemCommand(text string) validate.Result {
	if _, failure := parseItemCommand(text); failure != nil {
		return validate.Result{Failure: failure}
	}
	return validate.Accept(text)
}
