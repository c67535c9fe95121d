package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddRecord(ctx context.Context) error
	Records(ctx context.Context) error
	DeleteRecord(ctx context.Context) error
	Trends(ctx context.Context) error
	Recommend(ctx context.Context) error
	Recommendations(ctx context.Context) error
	Accept(ctx context.Context) error
	AddReminder(ctx context.Context) error
	Reminders(ctx context.Context) error
	DeleteReminder(ctx context.Context) error
	Export(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: addrecord, records, delrecord, trends, recommend, recommendations, accept, " +
		"addreminder, reminders, delreminder, export, logout, exit"
)

// runREPL reads commands from scanner until EOF, "exit" or "quit". Command
// errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "mk %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}
		if cmd == "help" {
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}
			continue
		}

		fn, needsLogin, ok := lookup(a, cmd)
		if !ok {
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}
		if needsLogin && !a.isLoggedIn() {
			fmt.Fprintln(w, "Please login first")
			continue
		}
		if err := fn(ctx); err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}

func lookup(a execIface, cmd string) (fn func(context.Context) error, needsLogin bool, ok bool) {
	switch cmd {
	case "register":
		return a.Register, false, true
	case "login":
		return a.Login, false, true
	case "logout":
		return a.Logout, true, true
	case "addrecord":
		return a.AddRecord, true, true
	case "records":
		return a.Records, true, true
	case "delrecord":
		return a.DeleteRecord, true, true
	case "trends":
		return a.Trends, true, true
	case "recommend":
		return a.Recommend, true, true
	case "recommendations":
		return a.Recommendations, true, true
	case "accept":
		return a.Accept, true, true
	case "addreminder":
		return a.AddReminder, true, true
	case "reminders":
		return a.Reminders, true, true
	case "delreminder":
		return a.DeleteReminder, true, true
	case "export":
		return a.Export, true, true
	}
	return nil, false, false
}
