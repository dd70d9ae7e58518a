package villain

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/supervillain/internal/platform/errors"
	"github.com/louisbranch/supervillain/internal/platform/timeouts"
)

const (
	instrumentationName = "github.com/louisbranch/supervillain/internal/villain"
	planSpanName        = "villain.come_up_with_plan"
	planGoal            = "To take over the world!"
)

// DefaultPlanner is used by SuperVillain.ComeUpWithPlan and PlanAsync.
var DefaultPlanner = NewPlanner()

// PlanResult is the outcome of an asynchronous plan.
type PlanResult struct {
	Plan string
	Err  error
}

// Planner turns villains into plans after a fixed delay.
// A Planner is safe for concurrent use.
type Planner struct {
	delay  time.Duration
	tracer trace.Tracer
}

// Option configures a Planner.
type Option func(*Planner)

// WithDelay sets how long plotting takes. Negative delays are treated as zero.
func WithDelay(delay time.Duration) Option {
	return func(p *Planner) {
		if delay < 0 {
			delay = 0
		}
		p.delay = delay
	}
}

// WithTracerProvider records plan spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Planner) {
		if tp != nil {
			p.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// NewPlanner creates a Planner that waits timeouts.PlanDelay unless
// configured otherwise.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		delay:  timeouts.PlanDelay,
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Delay reports how long Plan waits before answering.
func (p *Planner) Delay() time.Duration {
	return p.delay
}

// Plan waits for the planner's delay and then describes v's plan.
//
// The villain is copied on entry, so renaming it while the plan is pending
// does not change the result. If ctx ends first, Plan returns a
// VILLAIN_PLAN_CANCELLED error wrapping ctx.Err().
func (p *Planner) Plan(ctx context.Context, v SuperVillain) (string, error) {
	ctx, span := p.tracer.Start(ctx, planSpanName, trace.WithAttributes(
		attribute.String("villain.first_name", v.FirstName),
		attribute.String("villain.last_name", v.LastName),
		attribute.Int64("villain.plan_delay_ms", p.delay.Milliseconds()),
	))
	defer span.End()

	if err := p.wait(ctx); err != nil {
		err = apperrors.WrapWithMetadata(
			apperrors.CodeVillainPlanCancelled,
			fmt.Sprintf("plan for %s cancelled", v.FullName()),
			map[string]string{"Villain": v.FullName()},
			err,
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "plan cancelled")
		return "", err
	}

	return fmt.Sprintf("%s %s is coming up with a plan %s", v.FirstName, v.LastName, planGoal), nil
}

// PlanAsync runs Plan in its own goroutine. The returned channel receives
// exactly one result and is then closed.
func (p *Planner) PlanAsync(ctx context.Context, v SuperVillain) <-chan PlanResult {
	out := make(chan PlanResult, 1)
	go func() {
		defer close(out)
		plan, err := p.Plan(ctx, v)
		out <- PlanResult{Plan: plan, Err: err}
	}()
	return out
}

func (p *Planner) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ComeUpWithPlan waits one second and then describes the villain's plan.
func (v SuperVillain) ComeUpWithPlan(ctx context.Context) (string, error) {
	return DefaultPlanner.Plan(ctx, v)
}

// PlanAsync is the asynchronous form of ComeUpWithPlan.
func (v SuperVillain) PlanAsync(ctx context.Context) <-chan PlanResult {
	return DefaultPlanner.PlanAsync(ctx, v)
}
