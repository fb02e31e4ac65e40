//go:build windows

package ptyhost

import (
	"context"

	"github.com/corvid-systems/ptyhost/internal/winpty"
)

func spawnPlatform(ctx context.Context, opts SpawnOptions) (Conn, error) {
	wopts := winpty.Options{
		App:                 opts.App,
		Cwd:                 opts.Cwd,
		Cols:                opts.Cols,
		Rows:                opts.Rows,
		Argv:                opts.CommandLine,
		Environment:         opts.Environment,
		VerbatimCommandLine: opts.VerbatimCommandLine,
		Name:                opts.Name,
	}
	return winpty.Spawn(ctx, wopts)
}
