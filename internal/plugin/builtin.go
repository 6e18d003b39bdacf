package plugin

import "context"

// Built-in host capability names.
const (
	NameFS     = "fs"
	NameDialog = "dialog"
	NameShell  = "shell"
)

// hostPlugin is the shared shape of the built-ins. The capabilities
// themselves live in the host runtime; the backend only tracks
// registration and lifecycle.
type hostPlugin struct {
	name string
}

func (p hostPlugin) Name() string                 { return p.name }
func (p hostPlugin) Init(_ context.Context) error { return nil }
func (p hostPlugin) Close() error                 { return nil }

// NewFS returns the filesystem access plugin.
func NewFS() Plugin { return hostPlugin{name: NameFS} }

// NewDialog returns the native dialogs plugin.
func NewDialog() Plugin { return hostPlugin{name: NameDialog} }

// NewShell returns the shell execution plugin.
func NewShell() Plugin { return hostPlugin{name: NameShell} }

// RegisterBuiltins registers the three host plugins the ESAF frontend
// expects: fs, dialog, shell.
func RegisterBuiltins(s *Set) error {
	for _, p := range []Plugin{NewFS(), NewDialog(), NewShell()} {
		if err := s.Register(p); err != nil {
			return err
		}
	}
	return nil
}
