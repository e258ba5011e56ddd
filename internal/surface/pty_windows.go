//go:build windows

package surface

import "syscall"

func unixSysProcAttr() *syscall.SysProcAttr {
	return nil
}
