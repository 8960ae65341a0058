//go:build windows

package wol

import (
	"net"

	"golang.org/x/sys/windows"
)

func enableBroadcast(conn *net.UDPConn) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return err
	}
	var soErr error
	if err := raw.Control(func(fd uintptr) {
		soErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_BROADCAST, 1)
	}); err != nil {
		return err
	}
	return soErr
}
