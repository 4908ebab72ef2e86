package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ethoslab/archetype/internal/domain/types"
)

func TestBrevoSendReport(t *testing.T) {
	ctx := context.Background()

	Convey("Given a Brevo mailer pointed at a test server", t, func() {
		var (
			gotKey  string
			gotBody brevoMessage
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("api-key")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		mailer := NewBrevoMailer("secret-key",
			WithEndpoint(srv.URL),
			WithSender("Quiz Reports", "reports@example.com"),
		)

		Convey("When sending a report", func() {
			err := mailer.SendReport(ctx, Report{
				To:        "taker@example.com",
				SessionID: "sess-1",
				Archetype: types.Owl,
			})

			Convey("Then the API call carries the key, recipient and profile", func() {
				So(err, ShouldBeNil)
				So(gotKey, ShouldEqual, "secret-key")
				So(gotBody.Sender.Email, ShouldEqual, "reports@example.com")
				So(gotBody.To, ShouldHaveLength, 1)
				So(gotBody.To[0].Email, ShouldEqual, "taker@example.com")
				So(gotBody.Subject, ShouldContainSubstring, "Owl")
				So(gotBody.HTMLContent, ShouldContainSubstring, "The Methodical Perfectionist")
				So(gotBody.HTMLContent, ShouldContainSubstring, "Strengths")
			})
		})

		Convey("When the report has no recipient", func() {
			err := mailer.SendReport(ctx, Report{Archetype: types.Dove})

			Convey("Then it fails before any API call", func() {
				So(errors.Is(err, ErrMissingRecipient), ShouldBeTrue)
			})
		})

		Convey("When the archetype is not in the catalog", func() {
			err := mailer.SendReport(ctx, Report{To: "a@b.c", Archetype: "tiger"})

			So(errors.Is(err, ErrUnknownArchetype), ShouldBeTrue)
		})
	})

	Convey("Given an API that rejects the message", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"invalid key"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		mailer := NewBrevoMailer("bad-key", WithEndpoint(srv.URL))

		Convey("When sending a report", func() {
			err := mailer.SendReport(ctx, Report{To: "a@b.c", Archetype: types.Shark})

			Convey("Then the delivery error surfaces", func() {
				So(errors.Is(err, ErrDeliveryFailed), ShouldBeTrue)
			})
		})
	})
}

func TestNoopMailer(t *testing.T) {
	Convey("Given the noop mailer", t, func() {
		So(NoopMailer{}.SendReport(context.Background(), Report{}), ShouldBeNil)
	})
}
