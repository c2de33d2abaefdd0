package bootstrap

import (
	"context"
	"time"

	"github.com/aalemi-dev/sentry-lab/observability"
)

// flush drains the backend within FlushTimeout, or less when ctx expires
// sooner. An incomplete flush is logged; it never fails shutdown.
func (i *Integration) flush(ctx context.Context) error {
	timeout := flushTimeout(ctx)

	start := time.Now()
	completed := i.client.Flush(timeout)
	observability.Notify(i.observer, observability.OperationContext{
		Component: component,
		Operation: "flush",
		Duration:  time.Since(start),
		Metadata:  map[string]interface{}{"completed": completed},
	})
	if !completed {
		i.logger.WarnWithContext(ctx, "monitoring flush did not complete", nil, map[string]interface{}{
			"timeout": timeout.String(),
		})
	}

	if i.shutdown != nil {
		if err := i.shutdown(ctx); err != nil {
			i.logger.WarnWithContext(ctx, "monitoring backend shutdown failed", err)
		}
	}
	return nil
}

func flushTimeout(ctx context.Context) time.Duration {
	timeout := FlushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = max(left, 0)
		}
	}
	return timeout
}
