package temporal

import (
	"context"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/interceptor"
)

// NewSentryActivityInterceptor creates a new Sentry activity interceptor
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &SentryActivityInterceptor{
		WorkerInterceptorBase: interceptor.WorkerInterceptorBase{},
	}
}

// SentryActivityInterceptor gives every activity execution its own Sentry
// hub so breadcrumbs from concurrent launch activities do not interleave
type SentryActivityInterceptor struct {
	interceptor.WorkerInterceptorBase
}

// InterceptActivity wraps activity execution to inject Sentry hub
func (s *SentryActivityInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	return &sentryActivityInboundInterceptor{
		ActivityInboundInterceptorBase: interceptor.ActivityInboundInterceptorBase{
			Next: next,
		},
	}
}

type sentryActivityInboundInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

// ExecuteActivity attaches a cloned hub to the activity context so the
// ...Ctx logger helpers pick it up
func (s *sentryActivityInboundInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	hub := sentry.CurrentHub().Clone()
	ctx = sentry.SetHubOnContext(ctx, hub)
	return s.Next.ExecuteActivity(ctx, in)
}
