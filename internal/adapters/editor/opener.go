package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"storefront/internal/ports"
)

// Opener runs the user's editor on a file
type Opener struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	look   func(string) (string, error)
}

// Ensure Opener implements ports.FileEditor
var _ ports.FileEditor = (*Opener)(nil)

// NewOpener creates an opener attached to the process terminal
func NewOpener() *Opener {
	return &Opener{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
		look:   exec.LookPath,
	}
}

// Edit opens path and waits for the editor to exit
func (o *Opener) Edit(ctx context.Context, path string) error {
	cmd, err := o.Command(ctx, path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}
	return nil
}

// Command returns the editor process for path without starting it
func (o *Opener) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr
	return cmd, nil
}

// findEditor prefers $EDITOR, then $VISUAL, then the first common editor on PATH
func (o *Opener) findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := o.getenv(env); editor != "" {
			return editor
		}
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := o.look(editor); err == nil {
			return path
		}
	}
	return ""
}
