package xlsplit

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
)

// Command is an editor action with an enablement flag that the host
// re-derives on every selection or document change.
type Command interface {
	Name() string
	// Refresh recomputes the enabled flag from the current document state
	// and returns it.
	Refresh() bool
	IsEnabled() bool
	Execute() error
}

// CommandListener is notified around every command execution.
type CommandListener interface {
	// BeforeExecute is called before the command runs. Return false to
	// cancel the execution; the registry then returns nil.
	BeforeExecute(cmd Command) bool

	// AfterExecute is called after the command ran with its result.
	AfterExecute(cmd Command, err error)
}

// CommandRegistry maps command names to commands. At most one Execute runs at
// a time; an overlapping call, from a running command or another goroutine,
// fails with ErrReentrantExecute instead of waiting. Register, RefreshAll and
// AddListener are not synchronized.
type CommandRegistry struct {
	commands  map[string]Command
	listeners []CommandListener
	logger    *slog.Logger

	exec sync.Mutex // held for the duration of one Execute
}

// NewCommandRegistry creates an empty registry. A nil logger discards output.
func NewCommandRegistry(logger *slog.Logger) *CommandRegistry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CommandRegistry{
		commands: make(map[string]Command),
		logger:   logger,
	}
}

// Register adds a command under its own name, replacing any previous one.
func (r *CommandRegistry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// AddListener adds a listener notified around each execution.
func (r *CommandRegistry) AddListener(l CommandListener) {
	r.listeners = append(r.listeners, l)
}

// Get returns the command registered under name.
func (r *CommandRegistry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the registered command names in sorted order.
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RefreshAll refreshes every registered command.
func (r *CommandRegistry) RefreshAll() {
	for _, name := range r.Names() {
		enabled := r.commands[name].Refresh()
		r.logger.Debug("command refreshed", "command", name, "enabled", enabled)
	}
}

// Execute runs the named command. The command must have been refreshed as
// enabled. It returns ErrReentrantExecute without running anything while
// another Execute is in progress.
func (r *CommandRegistry) Execute(name string) error {
	cmd, ok := r.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if !cmd.IsEnabled() {
		return fmt.Errorf("execute %s: %w", name, ErrCommandDisabled)
	}
	if !r.exec.TryLock() {
		return fmt.Errorf("execute %s: %w", name, ErrReentrantExecute)
	}
	defer r.exec.Unlock()

	for _, l := range r.listeners {
		if !l.BeforeExecute(cmd) {
			r.logger.Debug("command cancelled by listener", "command", name)
			return nil
		}
	}

	err := cmd.Execute()
	for _, l := range r.listeners {
		l.AfterExecute(cmd, err)
	}
	if err != nil {
		r.logger.Warn("command failed", "command", name, "error", err)
		return err
	}
	r.logger.Debug("command executed", "command", name)
	return nil
}
