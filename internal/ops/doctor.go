package ops

import (
	"context"
	"os"
	"path/filepath"

	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/errors"
	"github.com/absurdtty/ttymood/internal/history"
	"github.com/absurdtty/ttymood/internal/signature"
)

// DoctorCheck is one environment check result.
type DoctorCheck struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// DoctorOutput contains the result of the Doctor operation.
type DoctorOutput struct {
	Checks  []DoctorCheck `json:"checks"`
	Healthy bool          `json:"healthy"`
}

// Doctor validates the environment: shell detection, history readability,
// data directory writability, and signature parseability. It reports
// rather than fails; the only errors are internal ones.
func Doctor(ctx context.Context, cfg *config.Config) (*DoctorOutput, error) {
	out := &DoctorOutput{Healthy: true}
	add := func(name string, ok bool, detail string) {
		out.Checks = append(out.Checks, DoctorCheck{Name: name, OK: ok, Detail: detail})
		if !ok {
			out.Healthy = false
		}
	}

	kind, histPath, err := resolveHistory(cfg, "", "")
	if err != nil {
		add("shell detection", false, err.Error())
	} else {
		add("shell detection", true, string(kind))
		if _, err := history.Load(histPath, kind); err != nil {
			add("history source", false, err.Error())
		} else {
			add("history source", true, histPath)
		}
	}

	moodPath, err := cfg.ResolveMoodFile()
	if err != nil {
		add("data directory", false, err.Error())
		return out, nil
	}
	dir := filepath.Dir(moodPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		add("data directory", false, err.Error())
	} else if probe, err := os.CreateTemp(dir, ".doctor-*"); err != nil {
		add("data directory", false, err.Error())
	} else {
		probe.Close()
		os.Remove(probe.Name())
		add("data directory", true, dir)
	}

	switch _, err := signature.Load(moodPath); {
	case err == nil:
		add("mood signature", true, moodPath)
	case errors.Is(err, errors.ErrNotFound):
		add("mood signature", true, "none on file yet (run generate)")
	default:
		add("mood signature", false, err.Error())
	}

	return out, nil
}
