package queue

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ethoslab/archetype/internal/domain/types"
)

func TestEnqueueDequeue(t *testing.T) {
	ctx := context.Background()

	Convey("Given a queue with room", t, func() {
		q := NewInMemoryQueue(WithCapacity(4))

		Convey("When enqueuing a submission", func() {
			ok := q.Enqueue(ctx, Submission{SessionID: "sess-1", Archetype: types.Dove})

			Convey("Then it is accepted and buffered", func() {
				So(ok, ShouldBeTrue)
				So(q.Len(ctx), ShouldEqual, 1)
			})

			Convey("Then a consumer receives it", func() {
				out := q.Dequeue(ctx)
				select {
				case sub := <-out:
					So(sub.SessionID, ShouldEqual, "sess-1")
				case <-time.After(time.Second):
					t.Fatal("timed out waiting for submission")
				}
			})
		})
	})
}

func TestBackpressure(t *testing.T) {
	ctx := context.Background()

	Convey("Given a queue at capacity", t, func() {
		q := NewInMemoryQueue(WithCapacity(2))
		So(q.Enqueue(ctx, Submission{SessionID: "a"}), ShouldBeTrue)
		So(q.Enqueue(ctx, Submission{SessionID: "b"}), ShouldBeTrue)

		Convey("When one more submission arrives", func() {
			ok := q.Enqueue(ctx, Submission{SessionID: "c"})

			Convey("Then it is rejected without blocking", func() {
				So(ok, ShouldBeFalse)
				So(q.Len(ctx), ShouldEqual, 2)
			})
		})
	})
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	Convey("Given a queue with buffered submissions", t, func() {
		q := NewInMemoryQueue(WithCapacity(4))
		So(q.Enqueue(ctx, Submission{SessionID: "a"}), ShouldBeTrue)

		Convey("When the queue is closed", func() {
			So(q.Close(), ShouldBeNil)

			Convey("Then new submissions are rejected", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, Submission{SessionID: "b"}), ShouldBeFalse)
			})

			Convey("Then buffered submissions still drain", func() {
				out := q.Dequeue(ctx)
				sub, ok := <-out
				So(ok, ShouldBeTrue)
				So(sub.SessionID, ShouldEqual, "a")

				_, ok = <-out
				So(ok, ShouldBeFalse)
			})

			Convey("Then closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})
		})
	})
}
