//go:build windows

package winpty

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// The ConPTY entry points aren't wrapped by golang.org/x/sys/windows (unlike
// the Job Object and process-creation APIs below), so they're resolved the
// same way the rest of the package resolves unwrapped kernel32 exports:
// windows.NewLazySystemDLL + NewProc, mirroring
// internal/sessionbroker/detector_windows.go's wtsapi32 usage.
var (
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procCreatePseudoConsole = kernel32.NewProc("CreatePseudoConsole")
	procResizePseudoConsole = kernel32.NewProc("ResizePseudoConsole")
	procClosePseudoConsole  = kernel32.NewProc("ClosePseudoConsole")
)

// pseudoConsole wraps an HPCON handle.
type pseudoConsole struct {
	handle uintptr
}

func coord(cols, rows uint16) uintptr {
	return uintptr(cols) | (uintptr(rows) << 16)
}

// findCreatePseudoConsole is a seam for tests; production code always uses
// procCreatePseudoConsole.Find.
var findCreatePseudoConsole = procCreatePseudoConsole.Find

// checkPseudoConsoleSupported reports whether CreatePseudoConsole resolved
// in kernel32.dll. LazyProc.Call would otherwise panic via Addr() on a
// pre-1809 Windows host that lacks the export; Find is the documented way
// to probe a LazyProc without triggering that panic.
func checkPseudoConsoleSupported() error {
	return findCreatePseudoConsole()
}

// createPseudoConsole calls CreatePseudoConsole with pipe ends the caller
// owns: ptyIn is the read end the console consumes as its input, ptyOut is
// the write end it produces output on. Callers must check
// checkPseudoConsoleSupported before calling this.
func createPseudoConsole(cols, rows uint16, ptyIn, ptyOut windows.Handle) (*pseudoConsole, error) {
	var handle uintptr
	r1, _, _ := procCreatePseudoConsole.Call(
		coord(cols, rows),
		uintptr(ptyIn),
		uintptr(ptyOut),
		0,
		uintptr(unsafe.Pointer(&handle)),
	)
	if r1 != 0 {
		return nil, fmt.Errorf("CreatePseudoConsole: HRESULT 0x%08x", r1)
	}
	return &pseudoConsole{handle: handle}, nil
}

func (p *pseudoConsole) resize(cols, rows uint16) error {
	r1, _, _ := procResizePseudoConsole.Call(p.handle, coord(cols, rows))
	if r1 != 0 {
		return fmt.Errorf("ResizePseudoConsole: HRESULT 0x%08x", r1)
	}
	return nil
}

func (p *pseudoConsole) close() {
	procClosePseudoConsole.Call(p.handle)
}
