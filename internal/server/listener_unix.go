//go:build linux || darwin

package server

import (
	"errors"
	"net"
	"os"
	"strconv"
)

// sdListenFdsStart is the first file descriptor passed by systemd.
const sdListenFdsStart = 3

// GetListener returns the TCP listener for addr. When SOCKET_ACTIVATION=1 it
// instead adopts the socket handed over by systemd (LISTEN_FDS/LISTEN_PID).
func GetListener(addr string) (net.Listener, error) {
	if os.Getenv("SOCKET_ACTIVATION") != "1" {
		return net.Listen("tcp", addr)
	}
	if ln := activationListener(); ln != nil {
		return ln, nil
	}
	return nil, errors.New("socket activation requested but no valid LISTEN_FDS")
}

func activationListener() net.Listener {
	if os.Getenv("LISTEN_FDS") != "1" {
		return nil
	}
	pid, err := strconv.Atoi(os.Getenv("LISTEN_PID"))
	if err != nil || pid != os.Getpid() {
		return nil
	}
	f := os.NewFile(uintptr(sdListenFdsStart), "listener")
	if f == nil {
		return nil
	}
	ln, err := net.FileListener(f)
	if err != nil {
		return nil
	}
	return ln
}
