package fx_test

import (
	"testing"

	fxmodules "gamelog-tracker/internal/fx"
	"gamelog-tracker/internal/server"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	err := fx.ValidateApp(
		fxmodules.Module,
		fx.Invoke(func(*server.Server) {}),
	)
	require.NoError(t, err)
}
