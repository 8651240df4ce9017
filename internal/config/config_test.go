package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("INVITATION_TTL", "")

	cfg := Load()

	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, 7*24*time.Hour, cfg.InvitationTTL)
	require.Equal(t, "8080", cfg.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("INVITATION_TTL", "48h")
	t.Setenv("JWT_TTL", "not-a-duration")

	cfg := Load()

	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, 48*time.Hour, cfg.InvitationTTL)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL)
}
