package env

import (
	"net"
	"os"

	"slot_backend/internal/config"
)

const (
	httpHostName = "HTTP_HOST"
	httpPortName = "HTTP_PORT"

	// Same default port as the original game server.
	defaultHTTPPort = "3001"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostName)

	port := os.Getenv(httpPortName)
	if port == "" {
		// PORT is what most hosting platforms inject.
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultHTTPPort
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
