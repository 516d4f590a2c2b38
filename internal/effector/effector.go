package effector

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Effector performs the destructive filesystem actions of a transition.
// Injecting it keeps the transition logic testable and allows a dry-run
// variant for unprivileged invocations.
type Effector interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// FileWriter writes to the real filesystem.
type FileWriter struct{}

func (FileWriter) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (FileWriter) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// DryRun reports each action instead of performing it. Used when the
// invoking user lacks the privilege to touch device files.
type DryRun struct {
	Out io.Writer
}

func (d DryRun) MkdirAll(_ string, _ fs.FileMode) error {
	return nil
}

func (d DryRun) WriteFile(path string, data []byte, _ fs.FileMode) error {
	_, err := fmt.Fprintf(d.out(), "DRY-RUN: would write %q to '%s'\n", strings.TrimSuffix(string(data), "\n"), path)
	return err
}

func (d DryRun) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}
