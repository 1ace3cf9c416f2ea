package configs

import (
	"strconv"
	"time"
)

// HTTP defines configuration for the API server.
type HTTP struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `env:"HOST" envDefault:""`
	// Port is the TCP port the server listens on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading a whole request including the body.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address in host:port form.
func (c HTTP) Addr() string {
	return c.Host + ":" + strconv.Itoa(int(c.Port))
}
