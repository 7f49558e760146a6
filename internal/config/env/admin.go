package env

import (
	"os"

	"slot_backend/internal/config"
)

const (
	adminSecretName = "ADMIN_SECRET"
)

type adminConfig struct {
	secret string
}

// NewAdminConfig reads the shared secret gating the admin endpoints. An
// empty secret disables them entirely.
func NewAdminConfig() (config.AdminConfig, error) {
	return &adminConfig{
		secret: os.Getenv(adminSecretName),
	}, nil
}

func (cfg *adminConfig) Secret() string {
	return cfg.secret
}
