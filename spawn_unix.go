//go:build linux || darwin

package ptyhost

import (
	"context"

	"github.com/corvid-systems/ptyhost/internal/unixpty"
)

func spawnPlatform(ctx context.Context, opts SpawnOptions) (Conn, error) {
	uopts := unixpty.Options{
		App:                 opts.App,
		Cwd:                 opts.Cwd,
		Cols:                opts.Cols,
		Rows:                opts.Rows,
		Argv:                opts.CommandLine,
		Environment:         opts.Environment,
		VerbatimCommandLine: opts.VerbatimCommandLine,
		Name:                opts.Name,
	}
	return unixpty.Spawn(ctx, uopts)
}
