package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/sentry-lab/logger"
)

func TestFXModule_ProvidesTracerClient(t *testing.T) {
	t.Parallel()
	var client *TracerClient
	var tr Tracer

	app := fxtest.New(t,
		FXModule,
		fx.Supply(logger.NewNopLoggerClient()),
		fx.Provide(func() Config {
			return Config{ServiceName: "fx-test", AppEnv: "test"}
		}),
		fx.Populate(&client, &tr),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, client)
	assert.Same(t, client, tr)
}

func TestRegisterTracerLifecycle_Shutdown(t *testing.T) {
	t.Parallel()
	client, err := NewClient(Config{ServiceName: "shutdown-test", AppEnv: "test"})
	require.NoError(t, err)

	app := fxtest.New(t,
		fx.Supply(logger.NewNopLoggerClient()),
		fx.Provide(func() *TracerClient { return client }),
		fx.Invoke(RegisterTracerLifecycle),
	)

	app.RequireStart()
	assert.NotPanics(t, func() { app.RequireStop() })
}

func TestRegisterTracerLifecycle_NilProvider(t *testing.T) {
	t.Parallel()
	client := &TracerClient{}

	app := fxtest.New(t,
		fx.Supply(logger.NewNopLoggerClient()),
		fx.Provide(func() *TracerClient { return client }),
		fx.Invoke(RegisterTracerLifecycle),
	)

	app.RequireStart()
	assert.NotPanics(t, func() { app.RequireStop() })
}
