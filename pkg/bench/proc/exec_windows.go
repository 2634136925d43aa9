//go:build windows

package proc

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// detach configures the command so the setter runs outside our console
// session and never pops its own window.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
}

// KillByName walks the process list and terminates every process whose image
// name matches, case-insensitively. Matching by name is deliberate: it also
// converges stray instances left behind by a previous crashed run.
func (systemExecer) KillByName(name string) (int, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, fmt.Errorf("enumerating processes: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	killed := 0
	for err = windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		if !strings.EqualFold(windows.UTF16ToString(entry.ExeFile[:]), name) {
			continue
		}

		handle, openErr := windows.OpenProcess(windows.PROCESS_TERMINATE, false, entry.ProcessID)
		if openErr != nil {
			continue // already gone or inaccessible
		}
		if termErr := windows.TerminateProcess(handle, 1); termErr == nil {
			killed++
		}
		windows.CloseHandle(handle)
	}

	if !errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return killed, fmt.Errorf("walking process list: %w", err)
	}
	return killed, nil
}
