package defaults

import (
	"testing"
	"time"
)

func TestCollectorDefaultsAreSane(t *testing.T) {
	if SampleInterval <= 0 {
		t.Error("SampleInterval must be positive")
	}
	if CollectionDuration < time.Duration(MinCollectionHours*float64(time.Hour)) {
		t.Error("default collection duration must cover the minimum window")
	}
	if QueryTimeout >= SampleInterval {
		t.Error("a single query timeout must fit inside the sample interval")
	}
}

func TestServerTimeoutOrdering(t *testing.T) {
	if ServerReadTimeout >= ServerIdleTimeout {
		t.Error("read timeout should be shorter than idle timeout")
	}
	if ServerShutdownTimeout <= 0 {
		t.Error("shutdown timeout must be positive")
	}
}
