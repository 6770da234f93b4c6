// Package cli provides the interactive CarCare command-line front end.
//
// It greets a first-time user, asks for the car name, shows a one-line
// maintenance reminder and then runs a REPL over the LogService.
//
// Key features:
//   - Add / Edit / Delete / Show entries
//   - List with a search term and a category filter
//   - Statistics, upcoming and overdue work
//   - Export / Import of .car documents and a PDF report
//   - Car name, theme and language settings
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
