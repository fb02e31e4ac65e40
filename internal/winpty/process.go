//go:build windows

package winpty

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/corvid-systems/ptyhost/internal/winenv"
)

// procThreadAttributePseudoconsole is PROC_THREAD_ATTRIBUTE_PSEUDOCONSOLE,
// not exported by x/sys/windows.
const procThreadAttributePseudoconsole = 0x00020016

// startProcess launches opts.App attached to pc via the
// PROC_THREAD_ATTRIBUTE_PSEUDOCONSOLE attribute, using the standard
// InitializeProcThreadAttributeList/UpdateProcThreadAttribute/
// DeleteProcThreadAttributeList sequence Microsoft's ConPTY sample code
// documents, but through x/sys/windows's NewProcThreadAttributeList
// container instead of raw syscall.Call plumbing.
func startProcess(opts Options, pc *pseudoConsole) (windows.Handle, uint32, error) {
	appPath, err := resolveApp(opts)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve app: %w", err)
	}

	cmdLine := winenv.BuildCommandLine(appPath, opts.Argv, opts.VerbatimCommandLine)
	cmdLinePtr, err := windows.UTF16PtrFromString(cmdLine)
	if err != nil {
		return 0, 0, fmt.Errorf("UTF16PtrFromString command line: %w", err)
	}

	var cwdPtr *uint16
	if opts.Cwd != "" {
		cwdPtr, err = windows.UTF16PtrFromString(opts.Cwd)
		if err != nil {
			return 0, 0, fmt.Errorf("UTF16PtrFromString cwd: %w", err)
		}
	}

	envBlock := childEnvironmentBlock(opts.Environment)

	attrList, err := windows.NewProcThreadAttributeList(1)
	if err != nil {
		return 0, 0, fmt.Errorf("NewProcThreadAttributeList: %w", err)
	}
	defer attrList.Delete()

	// lpValue must be the HPCON value itself, not a pointer to it: this
	// attribute is the one documented exception where Windows reads the
	// handle out of the pointer slot directly.
	if err := attrList.Update(
		procThreadAttributePseudoconsole,
		unsafe.Pointer(pc.handle),
		unsafe.Sizeof(pc.handle),
	); err != nil {
		return 0, 0, fmt.Errorf("UpdateProcThreadAttribute: %w", err)
	}

	si := &windows.StartupInfoEx{
		ProcThreadAttributeList: attrList.List(),
	}
	si.Cb = uint32(unsafe.Sizeof(*si))

	var pi windows.ProcessInformation
	err = windows.CreateProcess(
		nil,
		cmdLinePtr,
		nil,
		nil,
		false,
		windows.EXTENDED_STARTUPINFO_PRESENT|windows.CREATE_UNICODE_ENVIRONMENT,
		envBlockPtr(envBlock),
		cwdPtr,
		&si.StartupInfo,
		&pi,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("CreateProcess: %w", err)
	}

	windows.CloseHandle(pi.Thread)
	return pi.Process, pi.ProcessId, nil
}

func resolveApp(opts Options) (string, error) {
	pathEnv := map[string]string{}
	if v, ok := opts.Environment["PATH"]; ok {
		pathEnv["PATH"] = v
	}
	if v, ok := opts.Environment["Path"]; ok {
		pathEnv["Path"] = v
	}
	return winenv.ResolveExecutable(opts.App, opts.Cwd, pathEnv, os.Getenv, os.Stat)
}

// childEnvironmentBlock defaults TERM the same way the Unix side does: most
// console programs consult it regardless of host OS, and ConPTY itself
// understands the same xterm-256color escape sequences as a real Unix PTY.
func childEnvironmentBlock(overrides map[string]string) []uint16 {
	merged := winenv.MergeEnvironment(os.Environ(), overrides)
	if merged["TERM"] == "" {
		merged["TERM"] = "xterm-256color"
	}
	return winenv.BuildEnvironmentBlock(merged)
}

func envBlockPtr(block []uint16) *uint16 {
	if len(block) == 0 {
		return nil
	}
	return &block[0]
}
