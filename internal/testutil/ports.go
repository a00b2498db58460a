// Package testutil holds helpers shared by tests that start servers or capture logs.
package testutil

import (
	"net"
	"strconv"
	"sync"
	"testing"
)

var (
	portsMu   sync.Mutex
	portsSeen = make(map[int]struct{})
)

// GetRandomPort asks the kernel for a free loopback port. A port is handed out at most
// once per test binary, so parallel tests do not race for the same address.
func GetRandomPort(t *testing.T) int {
	t.Helper()

	portsMu.Lock()
	defer portsMu.Unlock()

	for {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to reserve a port: %v", err)
		}
		port := l.Addr().(*net.TCPAddr).Port
		if err := l.Close(); err != nil {
			t.Fatalf("failed to release port %d: %v", port, err)
		}
		if _, taken := portsSeen[port]; taken {
			continue
		}
		portsSeen[port] = struct{}{}
		return port
	}
}

// GetRandomListeningPort returns a "localhost:PORT" address that was free a moment ago,
// ready to pass to a server's listen option.
func GetRandomListeningPort(t *testing.T) string {
	t.Helper()
	return net.JoinHostPort("localhost", strconv.Itoa(GetRandomPort(t)))
}
