package config

import (
	"fmt"
	"strconv"
)

const (
	MinPort = 0
	MaxPort = 65535
)

// ParsePort parses a decimal TCP port. Zero is accepted and lets the kernel
// pick a free port.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", s, err)
	}
	if port < MinPort || port > MaxPort {
		return 0, fmt.Errorf("port %d out of range %d-%d", port, MinPort, MaxPort)
	}

	return port, nil
}
