package inorder

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
)

const (
	verificationsMetric        = "verifications"
	verificationFailuresMetric = "verification-failures"
	consumedRunLengthMetric    = "consumed-run-length"
)

func getOrRegisterHistogram(name string, r metrics.Registry) metrics.Histogram {
	return r.GetOrRegister(name, func() metrics.Histogram {
		return metrics.NewHistogram(metrics.NewExpDecaySample(1028, 0.015))
	}).(metrics.Histogram)
}

func getMetricNameForKind(name string, kind FailureKind) string {
	return fmt.Sprintf("%s-for-kind-%s", name, kind)
}

func getOrRegisterKindMeter(name string, kind FailureKind, r metrics.Registry) metrics.Meter {
	return metrics.GetOrRegisterMeter(getMetricNameForKind(name, kind), r)
}

// verificationMetrics is the set of metrics a StrictSession updates.
type verificationMetrics struct {
	registry          metrics.Registry
	verifications     metrics.Meter
	failures          metrics.Meter
	consumedRunLength metrics.Histogram
}

func newVerificationMetrics(r metrics.Registry) *verificationMetrics {
	return &verificationMetrics{
		registry:          r,
		verifications:     metrics.GetOrRegisterMeter(verificationsMetric, r),
		failures:          metrics.GetOrRegisterMeter(verificationFailuresMetric, r),
		consumedRunLength: getOrRegisterHistogram(consumedRunLengthMetric, r),
	}
}

func (m *verificationMetrics) succeeded(consumed int) {
	m.verifications.Mark(1)
	m.consumedRunLength.Update(int64(consumed))
}

func (m *verificationMetrics) failed(kind FailureKind) {
	m.verifications.Mark(1)
	m.failures.Mark(1)
	getOrRegisterKindMeter(verificationFailuresMetric, kind, m.registry).Mark(1)
}
