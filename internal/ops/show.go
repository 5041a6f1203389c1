package ops

import (
	"context"

	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/signature"
)

// ShowInput contains parameters for the Show operation.
type ShowInput struct {
	Path string // optional, default: configured mood file
}

// ShowOutput contains the result of the Show operation.
type ShowOutput struct {
	Doc  *signature.Document
	Path string
}

// Show loads the persisted signature. Missing or incompatible files
// surface as not-found and schema-mismatch errors for the caller to
// present.
func Show(ctx context.Context, cfg *config.Config, input ShowInput) (*ShowOutput, error) {
	path, err := resolveMoodPath(cfg, input.Path)
	if err != nil {
		return nil, err
	}
	doc, err := signature.Load(path)
	if err != nil {
		return nil, err
	}
	return &ShowOutput{Doc: doc, Path: path}, nil
}
