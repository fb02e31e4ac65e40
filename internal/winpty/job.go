//go:build windows

package winpty

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// job is a Job Object configured with JOB_OBJECT_LIMIT_KILL_ON_JOB_CLOSE:
// closing the handle terminates every process assigned to it, which is
// how Connection.Close reaches grandchildren ConPTY's child spawns (e.g. a
// shell's own children) the way a Unix process-group signal does for
// internal/unixpty.
type job struct {
	handle windows.Handle
}

func newJob() (*job, error) {
	handle, err := windows.CreateJobObject(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("CreateJobObject: %w", err)
	}

	info := windows.JOBOBJECT_EXTENDED_LIMIT_INFORMATION{
		BasicLimitInformation: windows.JOBOBJECT_BASIC_LIMIT_INFORMATION{
			LimitFlags: windows.JOB_OBJECT_LIMIT_KILL_ON_JOB_CLOSE,
		},
	}

	_, err = windows.SetInformationJobObject(
		handle,
		windows.JobObjectExtendedLimitInformation,
		uintptr(unsafe.Pointer(&info)),
		uint32(unsafe.Sizeof(info)),
	)
	if err != nil {
		windows.CloseHandle(handle)
		return nil, fmt.Errorf("SetInformationJobObject: %w", err)
	}

	return &job{handle: handle}, nil
}

func (j *job) assign(process windows.Handle) error {
	if err := windows.AssignProcessToJobObject(j.handle, process); err != nil {
		return fmt.Errorf("AssignProcessToJobObject: %w", err)
	}
	return nil
}

// close terminates every process still assigned to the job.
func (j *job) close() {
	windows.CloseHandle(j.handle)
}
