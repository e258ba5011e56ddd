//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package surface

import "syscall"

func unixSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true, Setctty: true, Ctty: 0}
}
