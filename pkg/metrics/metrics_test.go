package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	convey.Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()

		convey.Convey("When creating a manager with options", func() {
			m := NewManager(
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithPrometheusRegistry(registry),
			)

			convey.Convey("Then it should be configured", func() {
				convey.So(m, convey.ShouldNotBeNil)
				convey.So(m.namespace, convey.ShouldEqual, "testns")
				convey.So(m.subsystem, convey.ShouldEqual, "testsub")
				convey.So(m.histogramBuckets, convey.ShouldResemble, []float64{1, 5, 10})
			})

			convey.Convey("And its metrics should be gatherable", func() {
				families, err := registry.Gather()
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(families), convey.ShouldBeGreaterThan, 0)
			})
		})

		convey.Convey("When creating a manager with empty options", func() {
			m := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			convey.Convey("Then defaults should be kept", func() {
				convey.So(m.namespace, convey.ShouldEqual, "archetype")
				convey.So(m.subsystem, convey.ShouldEqual, "quiz")
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	convey.Convey("Given the global manager", t, func() {
		convey.Convey("When recording metrics through the helpers", func() {
			RecordClassification("dove", "semantic")
			RecordUnmappedTrait()
			RecordScoringLatency(1.5)
			RecordSubmissionSaved()
			RecordSubmissionFailed()
			RecordEmailSent()
			RecordEmailFailed()
			RecordEmailDeduplicated()
			UpdateQueueSize(3)
			UpdateQueueCapacity(100)
			UpdateQueueUtilization(0.03)
			RecordQueueEnqueue()
			RecordQueueDequeue()
			RecordQueueEnqueueError()
			UpdateWorkerCount(4)
			RecordWorkerProcessingLatency(2.0)
			RecordWorkerError()
			UpdateTotalSessions(42)
			RecordHTTPRequest("classify", "POST", "200")
			RecordHTTPRequestDuration("classify", "POST", "200", 3.5)
			RecordErrorByComponent("queue", "closed")
			UpdateSystemMemoryUsage(1024)
			UpdateSystemGoroutineCount(10)
			RecordSystemGCPauseTime(0.1)

			convey.Convey("Then the registry should expose them", func() {
				families, err := GetRegistry().Gather()
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(families), convey.ShouldBeGreaterThan, 10)
			})
		})
	})
}
