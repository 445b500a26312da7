package http

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/raydent/raydent_backend/config"
)

// The server composition must resolve every constructor dependency,
// workers included, without starting any of them.
func TestModulesGraphResolves(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, fx.ValidateApp(Modules(cfg)...))
}
