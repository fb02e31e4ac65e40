//go:build windows

// Package winpty is the Windows PTY provider: it composes a ConPTY pseudo
// console with a Job Object so the child (and anything it spawns) dies
// when the connection is closed, the same guarantee a Unix process group
// gives internal/unixpty's Connection.Kill.
package winpty

// Options mirrors the public ptyhost.SpawnOptions. Kept separate (rather
// than importing the root package) to avoid an import cycle: ptyhost
// depends on winpty to implement spawnPlatform, so winpty can't depend
// back on ptyhost for a shared type.
type Options struct {
	App                 string
	Cwd                 string
	Cols                uint16
	Rows                uint16
	Argv                []string
	Environment         map[string]string
	VerbatimCommandLine bool
	Name                string
}
