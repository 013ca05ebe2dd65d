package input

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/simonhull/firebird-suite/warbler/logger"
	"github.com/simonhull/firebird-suite/warbler/terminal"
	"github.com/simonhull/firebird-suite/warbler/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func runList(t *testing.T, initial []string, answers ...string) ([]string, *terminal.Script) {
	t.Helper()
	script := terminal.NewScript(answers...)
	got, err := New(script, nil).List("Hosts", "Host", initial)
	require.NoError(t, err, "transcript: %s", script.Output())
	assert.Zero(t, script.Remaining(), "every scripted answer should be used")
	return got, script
}

func TestList_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		answers []string
		want    []string
	}{
		{
			name:    "add two then delete the first",
			answers: []string{"a", "first", "a", "second", "1", "d", "c"},
			want:    []string{"second"},
		},
		{
			name:    "add then edit round trip",
			answers: []string{"a", "X", "1", "e", "Y", "c"},
			want:    []string{"Y"},
		},
		{
			name:    "continue immediately",
			initial: []string{"a", "b"},
			answers: []string{"c"},
			want:    []string{"a", "b"},
		},
		{
			name:    "empty add is ignored",
			answers: []string{"a", "   ", "c"},
			want:    []string{},
		},
		{
			name:    "empty edit keeps value",
			initial: []string{"keep"},
			answers: []string{"1", "e", "  ", "c"},
			want:    []string{"keep"},
		},
		{
			name:    "back to list does not mutate",
			initial: []string{"a", "b"},
			answers: []string{"2", "l", "1", "", "c"},
			want:    []string{"a", "b"},
		},
		{
			name:    "delete shifts later items down",
			initial: []string{"a", "b", "c", "d"},
			answers: []string{"2", "d", "2", "e", "C", "c"},
			want:    []string{"a", "C", "d"},
		},
		{
			name:    "delete last item",
			initial: []string{"a", "b"},
			answers: []string{"2", "d", "c"},
			want:    []string{"a"},
		},
		{
			name:    "range follows additions",
			initial: []string{"a"},
			answers: []string{"a", "b", "2", "e", "B", "c"},
			want:    []string{"a", "B"},
		},
		{
			name:    "commands are case insensitive",
			answers: []string{"A", "x", "1", "D", "C"},
			want:    []string{},
		},
		{
			name:    "item values are trimmed",
			answers: []string{"a", "  spaced  ", "c"},
			want:    []string{"spaced"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := runList(t, tt.initial, tt.answers...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_Rendering(t *testing.T) {
	_, script := runList(t, nil, "a", "localhost", "c")

	assert.Equal(t, []string{
		"Hosts",
		"  (no items)",
		"Item number, (a)dd or (c)ontinue",
		"Host",
		"Hosts",
		"  1. localhost",
		"Item number, (a)dd or (c)ontinue",
	}, script.Lines)
}

func TestList_ItemCommandPrompt(t *testing.T) {
	_, script := runList(t, []string{"a", "b"}, "2", "e", "", "c")

	assert.Equal(t, 1, script.Count("Item 2: (e)dit, (d)elete or back to the (l)ist [l]"))
	assert.Equal(t, 1, script.Count("Host [b]"), "edit offers the current value as default")
}

func TestList_EmptyListRejectsNumbers(t *testing.T) {
	got, script := runList(t, nil, "1", "0", "c")

	assert.Empty(t, got)
	assert.Equal(t, 2, script.Count(unknownItemNumber))
	assert.Equal(t, 1, script.Count("Hosts"), "retries must not redraw the list")
	assert.Equal(t, 3, script.Count(topCommandMessage))
}

func TestList_UnknownCommands(t *testing.T) {
	got, script := runList(t, []string{"a"}, "x", "-1", "1.5", "1", "z", "l", "c")

	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 4, script.Count(unknownCommand), "transcript: %s", script.Output())
	assert.Equal(t, 2, script.Count("Hosts"))
}

func TestList_DoesNotModifyInitial(t *testing.T) {
	initial := []string{"a", "b", "c"}

	got, _ := runList(t, initial, "1", "d", "1", "e", "x", "a", "d", "c")

	assert.Equal(t, []string{"x", "c", "d"}, got)
	assert.Equal(t, []string{"a", "b", "c"}, initial)
}

func TestList_TerminatesOnlyOnContinue(t *testing.T) {
	script := terminal.NewScript("a", "one", "1", "l", "1", "e", "two")

	got, err := New(script, nil).List("Hosts", "Host", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF), "without c the loop keeps asking")
	assert.Nil(t, got)
}

func TestList_TooManyInvalidCommands(t *testing.T) {
	answers := make([]string, DefaultMaxAttempts)
	for i := range answers {
		answers[i] = "nope"
	}
	script := terminal.NewScript(answers...)

	got, err := New(script, nil).List("Hosts", "Host", []string{"a"})
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Nil(t, got)
}

func TestList_LogsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	script := terminal.NewScript("1", "d", "c")

	p := New(script, &Options{Logger: logger.NewFromZap(zap.New(core))})
	_, err := p.List("Hosts", "Host", []string{"a"})
	require.NoError(t, err)

	var transitions []string
	for _, entry := range logs.FilterMessage("list state").All() {
		fields := entry.ContextMap()
		assert.Equal(t, "Hosts", fields["list"])
		transitions = append(transitions, fmt.Sprintf("%s>%s", fields["from"], fields["to"]))
	}
	assert.Equal(t, []string{
		"displaying>awaiting-top-command",
		"awaiting-top-command>awaiting-item-command",
		"awaiting-item-command>displaying",
		"displaying>awaiting-top-command",
		"awaiting-top-command>terminated",
	}, transitions)
}

func TestTopCommandRule_AcceptsExactlyLiveRange(t *testing.T) {
	for count := 0; count <= 3; count++ {
		rule := topCommandRule{count: count}
		for n := 0; n <= 5; n++ {
			token := strconv.Itoa(n)
			res := rule.check(token)
			if n >= 1 && n <= count {
				assert.True(t, res.OK(), "count=%d token=%s", count, token)
				continue
			}
			require.False(t, res.OK(), "count=%d token=%s", count, token)
			assert.Equal(t, validate.OutOfRangeIndex, res.Failure.Kind)
			assert.Equal(t, unknownItemNumber, res.Failure.Message)
		}

		assert.True(t, rule.check("a").OK())
		assert.True(t, rule.check("c").OK())
	}
}

func TestTopCommandRule_Parse(t *testing.T) {
	rule := topCommandRule{count: 12}

	cmd, failure := rule.parse("12")
	require.Nil(t, failure)
	assert.Equal(t, command{kind: commandSelect, index: 12}, cmd)

	cmd, failure = rule.parse("007")
	require.Nil(t, failure)
	assert.Equal(t, 7, cmd.index)

	_, failure = rule.parse("99999999999999999999")
	require.NotNil(t, failure)
	assert.Equal(t, validate.OutOfRangeIndex, failure.Kind)

	_, failure = rule.parse("add")
	require.NotNil(t, failure)
	assert.Equal(t, validate.UnknownToken, failure.Kind)
}

func TestParseItemCommand(t *testing.T) {
	tests := []struct {
		text string
		want commandKind
	}{
		{"e", commandEdit},
		{"E", commandEdit},
		{"d", commandDelete},
		{"l", commandBack},
	}
	for _, tt := range tests {
		cmd, failure := parseItemCommand(tt.text)
		require.Nil(t, failure, tt.text)
		assert.Equal(t, tt.want, cmd.kind, tt.text)
	}

	for _, bad := range []string{"", "x", "edit", "1"} {
		assert.False(t, checkItemCommand(bad).OK(), bad)
	}
}

func TestListState_String(t *testing.T) {
	assert.Equal(t, "displaying", stateDisplaying.String())
	assert.Equal(t, "terminated", stateTerminated.String())
	assert.Equal(t, "unknown", listState(9).String())
}

func TestItems(t *testing.T) {
	initial := []string{"a", "b", "c"}
	l := newItems(initial)

	l.append("d")
	l.replace(0, "A")
	l.remove(1)

	assert.Equal(t, 3, l.len())
	assert.Equal(t, "c", l.at(1))
	assert.Equal(t, []string{"A", "c", "d"}, l.snapshot())
	assert.Equal(t, []string{"a", "b", "c"}, initial)

	snap := l.snapshot()
	snap[0] = "changed"
	assert.Equal(t, "A", l.at(0))

	assert.Equal(t, []string{}, newItems(nil).snapshot())
}
