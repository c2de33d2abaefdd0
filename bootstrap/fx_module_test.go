package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/sentry-lab/config"
	"github.com/aalemi-dev/sentry-lab/hooks"
	"github.com/aalemi-dev/sentry-lab/logger"
	"github.com/aalemi-dev/sentry-lab/metrics"
	"github.com/aalemi-dev/sentry-lab/monitor"
)

func TestFXModule_Provides(t *testing.T) {
	t.Parallel()
	var (
		i      *Integration
		h      *hooks.Hooks
		client monitor.Client
	)

	app := fxtest.New(t,
		FXModule,
		fx.Supply(validOptions(), logger.NewNopLoggerClient()),
		fx.Populate(&i, &h, &client),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, i)
	assert.True(t, i.Enabled())
	assert.Same(t, i.Hooks(), h)
	assert.IsType(t, &monitor.SentryClient{}, client)
}

func TestFXModule_DisabledOptionsStillStart(t *testing.T) {
	t.Parallel()
	var i *Integration

	app := fxtest.New(t,
		FXModule,
		fx.Supply(config.Default(), logger.NewNopLoggerClient()),
		fx.Populate(&i),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.False(t, i.Enabled())
}

func TestFXModule_UsesMetricsObserver(t *testing.T) {
	t.Parallel()
	var (
		i *Integration
		m *metrics.Metrics
	)

	app := fxtest.New(t,
		FXModule,
		metrics.FXModule,
		fx.Supply(
			validOptions(),
			logger.NewNopLoggerClient(),
			metrics.Config{
				ServiceName:               "fx-test",
				SystemMetricsAddress:      metrics.Ptr(""),
				ApplicationMetricsAddress: metrics.Ptr(""),
			},
		),
		fx.Populate(&i, &m),
	)
	app.RequireStart()
	app.RequireStop()

	families, err := m.ApplicationRegistry.Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "monitoring_operations_total")
	assert.Contains(t, names, "monitoring_flush_incomplete")
}
