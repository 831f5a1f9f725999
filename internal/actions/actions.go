// Package actions covers the operations the browser offers on scan results:
// copying text to the system clipboard and jumping into an editor at a line.
// The scanner never modifies content; edits happen in the user's own editor.
package actions

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct{}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		fmt.Println(text)
		return nil
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Actions bundles the side-effecting operations behind swappable
// implementations so the TUI can be tested without touching the system.
type Actions struct {
	clipboard Clipboard
	editor    string
}

// New creates Actions using the system clipboard and $EDITOR (falling back
// to vi).
func New() *Actions {
	return &Actions{
		clipboard: &systemClipboard{},
		editor:    defaultEditor(),
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (a *Actions) WithClipboard(c Clipboard) *Actions {
	a.clipboard = c
	return a
}

// WithEditor overrides the editor command.
func (a *Actions) WithEditor(editor string) *Actions {
	if editor != "" {
		a.editor = editor
	}
	return a
}

// Copy places text on the clipboard.
func (a *Actions) Copy(text string) error {
	return a.clipboard.Copy(text)
}

// OpenEditor launches the editor on path positioned at line, inheriting the
// terminal. The +line convention is understood by vi, vim, nvim, nano,
// emacs, and micro.
func (a *Actions) OpenEditor(path string, line int) error {
	args := []string{}
	if line > 0 {
		args = append(args, fmt.Sprintf("+%d", line))
	}
	args = append(args, path)

	cmd := exec.Command(a.editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	return cmd.Run()
}

// EditorCommand returns the editor invocation for the given target without
// running it, for display in help lines.
func (a *Actions) EditorCommand(path string, line int) string {
	if line > 0 {
		return fmt.Sprintf("%s +%d %s", a.editor, line, path)
	}
	return fmt.Sprintf("%s %s", a.editor, path)
}

func defaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return "vi"
}
