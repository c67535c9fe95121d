// Package cli provides the interactive moodkeeper command-line client.
//
// It wires configuration, the gRPC client and a REPL. A background watcher
// pings the server and shows whether it is reachable in the prompt.
//
// Commands cover the account (register, login, logout), health records
// (addrecord, records, delrecord, trends), recommendations (recommend,
// recommendations, accept), reminders (addreminder, reminders, delreminder)
// and export, which downloads a JSON dump of the user's records.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
