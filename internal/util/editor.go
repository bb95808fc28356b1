package util

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nakachan-ing/taskflow-cli/internal/model"
)

func OpenEditor(filePath string, config model.Config) error {
	c := exec.Command(config.Editor, filePath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open editor (%s): %w", filePath, err)
	}
	return nil
}

// ComposeInEditor opens the configured editor on a scratch file seeded
// with initial and returns what the user saved. Tasks are not files on
// disk, so descriptions are composed through a temp file.
func ComposeInEditor(initial string, config model.Config) (string, error) {
	scratch := filepath.Join(os.TempDir(), fmt.Sprintf("taskflow-%d.md", os.Getpid()))
	if err := os.WriteFile(scratch, []byte(initial), 0644); err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer os.Remove(scratch)

	if err := OpenEditor(scratch, config); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(scratch)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}
	return string(edited), nil
}
