package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/ethoslab/archetype/internal/domain/types"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, WithKeyPrefix("test"))
}

func TestRedisStoreSave(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	Convey("Given an empty Redis store", t, func() {
		Convey("When saving and re-saving a session", func() {
			So(store.Save(ctx, types.ResultRecord{SessionID: "sess-1", CohortID: "c", Archetype: types.Dove}), ShouldBeNil)
			So(store.Save(ctx, types.ResultRecord{SessionID: "sess-2", CohortID: "c", Archetype: types.Owl}), ShouldBeNil)
			So(store.Save(ctx, types.ResultRecord{SessionID: "sess-1", CohortID: "c", Archetype: types.Shark}), ShouldBeNil)

			Convey("Then the upsert overwrites without duplicating", func() {
				rec, err := store.Get(ctx, "sess-1")
				So(err, ShouldBeNil)
				So(rec.Archetype, ShouldEqual, types.Shark)

				total, err := store.TotalSessions(ctx)
				So(err, ShouldBeNil)
				So(total, ShouldEqual, 2)
			})

			Convey("Then arrival order survives the upsert", func() {
				n, err := store.SessionNumber(ctx, "sess-1")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)

				n, err = store.SessionNumber(ctx, "sess-2")
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})

			Convey("Then cohort tallies follow the archetype change", func() {
				stats, err := store.CohortStats(ctx, "c")
				So(err, ShouldBeNil)
				So(stats.TotalParticipants, ShouldEqual, 2)

				byArchetype := make(map[types.Archetype]types.Distribution)
				for _, d := range stats.Distributions {
					byArchetype[d.Archetype] = d
				}
				So(byArchetype[types.Dove].Count, ShouldEqual, 0)
				So(byArchetype[types.Shark].Count, ShouldEqual, 1)
				So(byArchetype[types.Owl].Count, ShouldEqual, 1)
			})
		})
	})
}

func TestRedisStoreAttachEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	Convey("Given a Redis store with one result", t, func() {
		So(store.Save(ctx, types.ResultRecord{SessionID: "sess-1", Archetype: types.Peacock}), ShouldBeNil)

		Convey("When attaching an email", func() {
			So(store.AttachEmail(ctx, "sess-1", "taker@example.com"), ShouldBeNil)

			Convey("Then the stored record carries it", func() {
				rec, err := store.Get(ctx, "sess-1")
				So(err, ShouldBeNil)
				So(rec.Email, ShouldEqual, "taker@example.com")
				So(rec.Archetype, ShouldEqual, types.Peacock)
			})
		})

		Convey("When attaching to an unknown session", func() {
			So(store.AttachEmail(ctx, "missing", "x@y.z"), ShouldEqual, ErrNotFound)
		})
	})
}

func TestRedisStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	Convey("Given an empty Redis store", t, func() {
		Convey("When reading unknown sessions", func() {
			_, err := store.Get(ctx, "missing")
			So(err, ShouldEqual, ErrNotFound)

			_, err = store.SessionNumber(ctx, "missing")
			So(err, ShouldEqual, ErrNotFound)
		})

		Convey("When counting", func() {
			So(store.Count(ctx), ShouldEqual, 0)

			total, err := store.TotalSessions(ctx)
			So(err, ShouldBeNil)
			So(total, ShouldEqual, 0)
		})
	})
}
