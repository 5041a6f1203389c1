// Package ops implements the operations shared by the CLI and the MCP
// server: generate, show, signals, and render.
package ops

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/errors"
	"github.com/absurdtty/ttymood/internal/history"
)

// ParseRange converts an analysis window like "7d", "2w", or a plain
// day count into a duration. Zero or negative counts are rejected.
func ParseRange(s string) (time.Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.NewInvalidRequest("range must not be empty")
	}

	unit := time.Duration(24) * time.Hour
	digits := s
	switch {
	case strings.HasSuffix(s, "d"):
		digits = strings.TrimSuffix(s, "d")
	case strings.HasSuffix(s, "w"):
		digits = strings.TrimSuffix(s, "w")
		unit *= 7
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, errors.NewInvalidRequest(
			fmt.Sprintf("invalid range %q (use a day count like 7, 7d, or 2w)", s))
	}
	return time.Duration(n) * unit, nil
}

// resolveHistory picks the shell kind and history path from explicit
// input, the config, and autodetection, in that order.
func resolveHistory(cfg *config.Config, shellArg, pathArg string) (history.ShellKind, string, error) {
	shellName := shellArg
	if shellName == "" {
		shellName = cfg.Shell
	}

	var kind history.ShellKind
	if shellName != "" {
		var err error
		kind, err = history.ParseShellKind(shellName)
		if err != nil {
			return history.ShellUnknown, "", err
		}
	} else {
		kind = history.DetectShell()
	}

	path := pathArg
	if path == "" {
		path = cfg.HistoryFile
	}
	if path == "" {
		var err error
		path, err = history.DefaultPath(kind)
		if err != nil {
			return history.ShellUnknown, "", err
		}
	}
	return kind, path, nil
}

// resolveMoodPath honors an explicit path before falling back to the
// configured signature location.
func resolveMoodPath(cfg *config.Config, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	path, err := cfg.ResolveMoodFile()
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return path, nil
}
