//go:build windows

package console

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

const utf8CodePage = 65001

var (
	dllKernel32            = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleOutputCP = dllKernel32.NewProc("SetConsoleOutputCP")
)

func prepare() error {
	if r0, _, err := procSetConsoleOutputCP.Call(uintptr(utf8CodePage)); r0 == 0 {
		return fmt.Errorf("cannot set console output code page: %w", err)
	}

	for _, ht := range []uint32{windows.STD_OUTPUT_HANDLE, windows.STD_ERROR_HANDLE} {
		if err := configureHandle(ht); err != nil {
			return err
		}
	}

	return nil
}

func configureHandle(ht uint32) error {
	handle, err := windows.GetStdHandle(ht)
	if err != nil {
		return fmt.Errorf("cannot get std handle %d: %w", ht, err)
	}

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		// Redirected; nothing to configure.
		return nil
	}

	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING |
		windows.ENABLE_WRAP_AT_EOL_OUTPUT |
		windows.ENABLE_PROCESSED_OUTPUT
	if err := windows.SetConsoleMode(handle, mode); err != nil {
		return fmt.Errorf("cannot enable virtual terminal processing on std handle %d: %w", ht, err)
	}

	return nil
}
