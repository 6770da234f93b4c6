package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const helpText = `Available commands:
  add                  add a maintenance entry
  edit [id]            change an entry
  delete [id]          delete an entry
  (l)ist               list entries matching the current search and filter
  show [id]            show one entry in full
  search [term]        set the search term (no term clears it)
  filter [type|all]    set the category filter
  stats                show totals and the last service
  upcoming             entries with a future next-due date
  overdue              entries whose next-due date has passed
  export               write a .car backup to the export directory
  import [file]        restore a .car or .json backup
  pdf                  write a PDF report to the export directory
  name [car name]      rename the car
  theme [light|dark|system]
  lang [en|ar|system]
  clear                delete all data
  exit | quit          leave the program`

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Upcoming(ctx context.Context, args []string) error
	Overdue(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	PDF(ctx context.Context, args []string) error
	Name(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Lang(ctx context.Context, args []string) error
	Clear(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to a. Prompts, help and handler errors are written to w. The loop exits on
// end of input, on context cancellation, or when the user types "exit" or
// "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	say := func(args ...any) { fmt.Fprintln(w, args...) }

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "carcare (%s)> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			say()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cmdErr error
		switch cmd {
		case "help", "?":
			say(helpText)
		case "add":
			cmdErr = a.Add(ctx, args)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "delete", "rm":
			cmdErr = a.Delete(ctx, args)
		case "l", "list":
			cmdErr = a.List(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "search":
			cmdErr = a.Search(ctx, args)
		case "filter":
			cmdErr = a.Filter(ctx, args)
		case "stats":
			cmdErr = a.Stats(ctx, args)
		case "upcoming":
			cmdErr = a.Upcoming(ctx, args)
		case "overdue":
			cmdErr = a.Overdue(ctx, args)
		case "export":
			cmdErr = a.Export(ctx, args)
		case "import":
			cmdErr = a.Import(ctx, args)
		case "pdf":
			cmdErr = a.PDF(ctx, args)
		case "name":
			cmdErr = a.Name(ctx, args)
		case "theme":
			cmdErr = a.Theme(ctx, args)
		case "lang":
			cmdErr = a.Lang(ctx, args)
		case "clear":
			cmdErr = a.Clear(ctx, args)
		case "exit", "quit":
			say("Bye!")
			return
		default:
			say("Unknown command:", cmd)
		}

		if cmdErr != nil {
			if errors.Is(cmdErr, io.EOF) {
				say()
				return
			}
			say("Error:", cmdErr)
		}
	}
}
