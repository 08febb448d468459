package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordUpdateStep verifies the step counter is labelled by outcome.
func TestRecordUpdateStep(t *testing.T) {
	okBefore := testutil.ToFloat64(UpdateStepsTotal.WithLabelValues("clone", "ok"))
	errBefore := testutil.ToFloat64(UpdateStepsTotal.WithLabelValues("clone", "error"))

	RecordUpdateStep("clone", nil, 250*time.Millisecond)
	RecordUpdateStep("clone", errors.New("exit status 128"), time.Second)

	okAfter := testutil.ToFloat64(UpdateStepsTotal.WithLabelValues("clone", "ok"))
	errAfter := testutil.ToFloat64(UpdateStepsTotal.WithLabelValues("clone", "error"))

	if okAfter-okBefore != 1 {
		t.Errorf("ok counter delta = %v, want 1", okAfter-okBefore)
	}
	if errAfter-errBefore != 1 {
		t.Errorf("error counter delta = %v, want 1", errAfter-errBefore)
	}
}

// TestRecordRepositoryOp verifies repository ops increment the right series.
func TestRecordRepositoryOp(t *testing.T) {
	before := testutil.ToFloat64(RepositoryOpsTotal.WithLabelValues("read", "ok"))

	RecordRepositoryOp("read", nil, time.Millisecond)
	RecordRepositoryOp("read", nil, time.Millisecond)

	after := testutil.ToFloat64(RepositoryOpsTotal.WithLabelValues("read", "ok"))
	if after-before != 2 {
		t.Errorf("read ok counter delta = %v, want 2", after-before)
	}
}

// TestRegistry_GathersWithoutError ensures nothing registered collides.
func TestRegistry_GathersWithoutError(t *testing.T) {
	if _, err := Registry().Gather(); err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
}
