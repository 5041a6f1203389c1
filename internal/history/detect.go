package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/absurdtty/ttymood/internal/errors"
)

// DetectShell guesses the shell kind from the SHELL environment variable.
func DetectShell() ShellKind {
	shell := os.Getenv("SHELL")
	switch {
	case strings.Contains(shell, "zsh"):
		return ShellZsh
	case strings.Contains(shell, "fish"):
		return ShellFish
	case strings.Contains(shell, "bash"):
		return ShellBash
	}
	return ShellUnknown
}

// DefaultPath returns the conventional history file location for a shell
// kind, checking that it exists. ZDOTDIR is honored for zsh.
func DefaultPath(kind ShellKind) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewSourceUnreadable("~", err)
	}

	var candidates []string
	switch kind {
	case ShellZsh:
		candidates = []string{filepath.Join(home, ".zsh_history")}
		if zdot := os.Getenv("ZDOTDIR"); zdot != "" {
			candidates = append(candidates, filepath.Join(zdot, ".zsh_history"))
		}
	case ShellBash:
		candidates = []string{filepath.Join(home, ".bash_history")}
	case ShellFish:
		candidates = []string{filepath.Join(home, ".local", "share", "fish", "fish_history")}
	case ShellHistdb:
		candidates = []string{filepath.Join(home, ".histdb", "zsh-history.db")}
	default:
		return "", errors.NewInvalidRequest(
			"could not detect shell history; use --history and --shell to specify the source")
	}

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", errors.NewSourceUnreadable(candidates[0],
		fmt.Errorf("no history file found for shell %s", kind))
}
