package villain

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "github.com/louisbranch/supervillain/internal/platform/errors"
	"github.com/louisbranch/supervillain/internal/platform/timeouts"
)

const expectedPlan = "Ahmed Ahmed is coming up with a plan To take over the world!"

func newRecordingPlanner(t *testing.T, delay time.Duration) (*Planner, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})
	return NewPlanner(WithDelay(delay), WithTracerProvider(tp)), recorder
}

func TestNewPlannerDefaults(t *testing.T) {
	if got := NewPlanner().Delay(); got != timeouts.PlanDelay {
		t.Fatalf("default delay = %s, want %s", got, timeouts.PlanDelay)
	}
	if got := NewPlanner(WithDelay(-time.Second)).Delay(); got != 0 {
		t.Fatalf("negative delay = %s, want 0", got)
	}
}

func TestPlan(t *testing.T) {
	planner, _ := newRecordingPlanner(t, 0)

	plan, err := planner.Plan(context.Background(), newTestVillain())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan != expectedPlan {
		t.Fatalf("plan = %q, want %q", plan, expectedPlan)
	}
}

func TestPlanWaitsForDelay(t *testing.T) {
	const delay = 20 * time.Millisecond
	planner, _ := newRecordingPlanner(t, delay)

	start := time.Now()
	if _, err := planner.Plan(context.Background(), newTestVillain()); err != nil {
		t.Fatalf("plan: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("plan returned after %s, want at least %s", elapsed, delay)
	}
}

func TestComeUpWithPlanUsesDefaultDelay(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the full plan delay")
	}

	start := time.Now()
	plan, err := newTestVillain().ComeUpWithPlan(context.Background())
	if err != nil {
		t.Fatalf("come up with plan: %v", err)
	}
	if plan != expectedPlan {
		t.Fatalf("plan = %q, want %q", plan, expectedPlan)
	}
	if elapsed := time.Since(start); elapsed < timeouts.PlanDelay {
		t.Fatalf("plan returned after %s, want at least %s", elapsed, timeouts.PlanDelay)
	}
}

func TestPlanCancelled(t *testing.T) {
	planner, recorder := newRecordingPlanner(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan, err := planner.Plan(ctx, newTestVillain())
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if plan != "" {
		t.Fatalf("plan = %q, want empty", plan)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled in chain", err)
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeVillainPlanCancelled {
		t.Fatalf("error code = %s, want %s", code, apperrors.CodeVillainPlanCancelled)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Fatalf("span status = %v, want error", spans[0].Status().Code)
	}
}

func TestPlanCancelledWithZeroDelay(t *testing.T) {
	planner, _ := newRecordingPlanner(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := planner.Plan(ctx, newTestVillain()); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestPlanDeadlineExceeded(t *testing.T) {
	planner, _ := newRecordingPlanner(t, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := planner.Plan(ctx, newTestVillain()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestPlanRecordsSpan(t *testing.T) {
	planner, recorder := newRecordingPlanner(t, 0)

	if _, err := planner.Plan(context.Background(), newTestVillain()); err != nil {
		t.Fatalf("plan: %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != planSpanName {
		t.Fatalf("span name = %q, want %q", span.Name(), planSpanName)
	}
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if got := attrs["villain.first_name"].AsString(); got != firstName {
		t.Fatalf("first name attribute = %q, want %q", got, firstName)
	}
	if got := attrs["villain.last_name"].AsString(); got != lastName {
		t.Fatalf("last name attribute = %q, want %q", got, lastName)
	}
	if span.Status().Code == codes.Error {
		t.Fatal("expected successful span status")
	}
}

func TestPlanCapturesNameAtInvocation(t *testing.T) {
	planner, _ := newRecordingPlanner(t, 20*time.Millisecond)
	v := newTestVillain()

	results := planner.PlanAsync(context.Background(), v)
	if err := v.SetFullName("Lex Luthor"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	result := <-results
	if result.Err != nil {
		t.Fatalf("plan: %v", result.Err)
	}
	if result.Plan != expectedPlan {
		t.Fatalf("plan = %q, want %q", result.Plan, expectedPlan)
	}
}

func TestPlanAsyncDeliversOneResult(t *testing.T) {
	planner, _ := newRecordingPlanner(t, 0)

	results := planner.PlanAsync(context.Background(), newTestVillain())
	first, ok := <-results
	if !ok {
		t.Fatal("expected a result")
	}
	if first.Plan != expectedPlan {
		t.Fatalf("plan = %q, want %q", first.Plan, expectedPlan)
	}
	if _, ok := <-results; ok {
		t.Fatal("expected channel to be closed after one result")
	}
}

func TestPlansRunConcurrently(t *testing.T) {
	const (
		delay    = 50 * time.Millisecond
		villains = 8
	)
	planner, _ := newRecordingPlanner(t, delay)

	var wg sync.WaitGroup
	errs := make(chan error, villains)
	start := time.Now()
	for i := 0; i < villains; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := planner.Plan(context.Background(), newTestVillain()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("plan: %v", err)
	}
	if elapsed := time.Since(start); elapsed >= villains*delay {
		t.Fatalf("plans took %s, expected them to overlap", elapsed)
	}
}
