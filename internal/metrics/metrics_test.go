package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSchedule(t *testing.T) {
	before := testutil.ToFloat64(SchedulesComputed.WithLabelValues("annuity", StatusOK))
	ObserveSchedule("annuity", StatusOK, 0.002)
	after := testutil.ToFloat64(SchedulesComputed.WithLabelValues("annuity", StatusOK))
	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}

	beforeUnknown := testutil.ToFloat64(SchedulesComputed.WithLabelValues("unknown", StatusInvalid))
	ObserveSchedule("", StatusInvalid, 0)
	afterUnknown := testutil.ToFloat64(SchedulesComputed.WithLabelValues("unknown", StatusInvalid))
	if afterUnknown-beforeUnknown != 1 {
		t.Errorf("expected unknown counter to increase by 1, got %v", afterUnknown-beforeUnknown)
	}
}
