package config

import (
	"net"
	"strconv"
	"time"
)

// Server holds the listener settings shared by every binary. Port is not
// read from the environment; it always comes from the command line.
type Server struct {
	Host            string        `mapstructure:"host" default:""`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" default:"120s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
	LookupTimeout   time.Duration `mapstructure:"lookup_timeout" default:"2s"`
}

func (s *Server) Addr(port int) string {
	return net.JoinHostPort(s.Host, strconv.Itoa(port))
}
