package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) Add(_ context.Context, a []string) error      { return f.record("add", a) }
func (f *fakeExec) Edit(_ context.Context, a []string) error     { return f.record("edit", a) }
func (f *fakeExec) Delete(_ context.Context, a []string) error   { return f.record("delete", a) }
func (f *fakeExec) List(_ context.Context, a []string) error     { return f.record("list", a) }
func (f *fakeExec) Show(_ context.Context, a []string) error     { return f.record("show", a) }
func (f *fakeExec) Search(_ context.Context, a []string) error   { return f.record("search", a) }
func (f *fakeExec) Filter(_ context.Context, a []string) error   { return f.record("filter", a) }
func (f *fakeExec) Stats(_ context.Context, a []string) error    { return f.record("stats", a) }
func (f *fakeExec) Upcoming(_ context.Context, a []string) error { return f.record("upcoming", a) }
func (f *fakeExec) Overdue(_ context.Context, a []string) error  { return f.record("overdue", a) }
func (f *fakeExec) Export(_ context.Context, a []string) error   { return f.record("export", a) }
func (f *fakeExec) Import(_ context.Context, a []string) error   { return f.record("import", a) }
func (f *fakeExec) PDF(_ context.Context, a []string) error      { return f.record("pdf", a) }
func (f *fakeExec) Name(_ context.Context, a []string) error     { return f.record("name", a) }
func (f *fakeExec) Theme(_ context.Context, a []string) error    { return f.record("theme", a) }
func (f *fakeExec) Lang(_ context.Context, a []string) error     { return f.record("lang", a) }
func (f *fakeExec) Clear(_ context.Context, a []string) error    { return f.record("clear", a) }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	var out bytes.Buffer

	input := strings.NewReader(strings.Join([]string{
		"help",
		"add",
		"edit id-1",
		"delete id-2",
		"l",
		"list",
		"show id-3",
		"search brake pads",
		"filter oil-change",
		"stats",
		"upcoming",
		"overdue",
		"export",
		"import backup.car",
		"pdf",
		"name My Car",
		"theme dark",
		"lang ar",
		"clear",
		"",
		"foobar",
		"exit",
		"add",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "Civic" }, bufio.NewReader(input), &out)

	assert.Equal(t, []string{
		"add", "edit", "delete", "list", "list", "show", "search", "filter", "stats",
		"upcoming", "overdue", "export", "import", "pdf", "name", "theme", "lang", "clear",
	}, exec.calls)
	assert.Equal(t, []string{"brake", "pads"}, exec.args[6])
	assert.Equal(t, []string{"My", "Car"}, exec.args[14])

	s := out.String()
	assert.Contains(t, s, "Available commands:")
	assert.Contains(t, s, "carcare (Civic)> ")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("stats")), &out)

	assert.Equal(t, []string{"stats"}, exec.calls)
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	var out bytes.Buffer

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("stats\noverdue\nquit\n")), &out)

	assert.Equal(t, []string{"stats", "overdue"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out.String(), "Error: boom"))
}

func TestRunREPL_EOFFromHandlerEndsLoop(t *testing.T) {
	var out bytes.Buffer

	exec := &fakeExec{err: io.EOF}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("add\nstats\n")), &out)

	assert.Equal(t, []string{"add"}, exec.calls)
}

func TestRunREPL_CancelledContext(t *testing.T) {
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("stats\n")), &out)

	assert.Empty(t, exec.calls)
}
