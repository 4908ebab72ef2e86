package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ethoslab/archetype/internal/domain/model"
	"github.com/ethoslab/archetype/internal/domain/types"
)

// stubDeps implements Dependencies with canned behavior per test.
type stubDeps struct {
	classifyFn    func(ctx context.Context, sessionID string, traits []string) (Classification, error)
	saveResultFn  func(ctx context.Context, sub model.Submission) error
	submitFn      func(ctx context.Context, sub model.Submission) (string, error)
	attachEmailFn func(ctx context.Context, sessionID, email string) error
	resultFn      func(ctx context.Context, sessionID string) (types.ResultRecord, error)
	cohortFn      func(ctx context.Context, cohortID string) (types.CohortStats, error)
	quizStatsFn   func(ctx context.Context, sessionID string) (types.QuizStats, error)
}

func (s *stubDeps) Classify(ctx context.Context, sessionID string, traits []string) (Classification, error) {
	return s.classifyFn(ctx, sessionID, traits)
}

func (s *stubDeps) SaveResult(ctx context.Context, sub model.Submission) error {
	return s.saveResultFn(ctx, sub)
}

func (s *stubDeps) Submit(ctx context.Context, sub model.Submission) (string, error) {
	return s.submitFn(ctx, sub)
}

func (s *stubDeps) AttachEmail(ctx context.Context, sessionID, email string) error {
	return s.attachEmailFn(ctx, sessionID, email)
}

func (s *stubDeps) Result(ctx context.Context, sessionID string) (types.ResultRecord, error) {
	return s.resultFn(ctx, sessionID)
}

func (s *stubDeps) CohortStats(ctx context.Context, cohortID string) (types.CohortStats, error) {
	return s.cohortFn(ctx, cohortID)
}

func (s *stubDeps) QuizStats(ctx context.Context, sessionID string) (types.QuizStats, error) {
	return s.quizStatsFn(ctx, sessionID)
}

var errNotFoundStub = errors.New("session not found")

type stubStats struct{}

func (stubStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newTestMux(deps *stubDeps) *http.ServeMux {
	mux := http.NewServeMux()
	NewServer(deps, stubStats{}).Register(context.Background(), mux)
	return mux
}

func doJSON(mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleClassify(t *testing.T) {
	Convey("Given the classify endpoint", t, func() {
		deps := &stubDeps{
			classifyFn: func(ctx context.Context, sessionID string, traits []string) (Classification, error) {
				return Classification{
					SessionID: "sess-1",
					Archetype: types.Owl,
					Scores:    types.Scores{types.Owl: 3},
					Breakdown: types.Breakdown{types.Owl: 100},
					Strategy:  "semantic",
				}, nil
			},
		}
		mux := newTestMux(deps)

		Convey("When posting a trait list", func() {
			rec := doJSON(mux, http.MethodPost, "/classify", map[string]any{
				"traits": []string{"logical", "thorough"},
			})

			Convey("Then the classification comes back", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got Classification
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got.Archetype, ShouldEqual, types.Owl)
				So(got.SessionID, ShouldEqual, "sess-1")
			})
		})

		Convey("When posting answered questions", func() {
			rec := doJSON(mux, http.MethodPost, "/classify", map[string]any{
				"responses": []map[string]any{
					{"question_id": 1, "selected_option": "logical"},
				},
			})

			So(rec.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When posting an empty body", func() {
			rec := doJSON(mux, http.MethodPost, "/classify", map[string]any{})

			Convey("Then the request is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When using the wrong method", func() {
			rec := doJSON(mux, http.MethodGet, "/classify", nil)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHandleSubmit(t *testing.T) {
	Convey("Given the submit endpoint", t, func() {
		var submitted model.Submission
		deps := &stubDeps{
			classifyFn: func(ctx context.Context, sessionID string, traits []string) (Classification, error) {
				return Classification{SessionID: "sess-9", Archetype: types.Dove}, nil
			},
			submitFn: func(ctx context.Context, sub model.Submission) (string, error) {
				submitted = sub
				return sub.SessionID, nil
			},
		}
		mux := newTestMux(deps)

		Convey("When submitting responses with an email", func() {
			rec := doJSON(mux, http.MethodPost, "/submit", map[string]any{
				"email":     "taker@example.com",
				"cohort_id": "team-x",
				"responses": []map[string]any{
					{"question_id": 1, "selected_option": "patient"},
					{"question_id": 2, "selected_option": "supportive"},
				},
			})

			Convey("Then the submission is accepted with its classification", func() {
				So(rec.Code, ShouldEqual, http.StatusAccepted)
				var got submitResponse
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got.Status, ShouldEqual, "accepted")
				So(got.Classification.Archetype, ShouldEqual, types.Dove)
			})

			Convey("Then the queued submission carries the computed archetype", func() {
				So(submitted.SessionID, ShouldEqual, "sess-9")
				So(submitted.Archetype, ShouldEqual, types.Dove)
				So(submitted.Email, ShouldEqual, "taker@example.com")
				So(submitted.CohortID, ShouldEqual, "team-x")
				So(submitted.Traits, ShouldResemble, []string{"patient", "supportive"})
			})
		})

		Convey("When the queue pushes back", func() {
			deps.submitFn = func(ctx context.Context, sub model.Submission) (string, error) {
				return "", ErrBackpressure
			}
			rec := doJSON(mux, http.MethodPost, "/submit", map[string]any{
				"traits": []string{"patient"},
			})

			Convey("Then the caller sees 429", func() {
				So(rec.Code, ShouldEqual, http.StatusTooManyRequests)
			})
		})

		Convey("When no answers are sent", func() {
			rec := doJSON(mux, http.MethodPost, "/submit", map[string]any{})
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestHandleResults(t *testing.T) {
	Convey("Given the results endpoints", t, func() {
		stored := map[string]types.ResultRecord{
			"sess-1": {SessionID: "sess-1", Archetype: types.Shark},
		}
		deps := &stubDeps{
			saveResultFn: func(ctx context.Context, sub model.Submission) error {
				stored[sub.SessionID] = sub.Record()
				return nil
			},
			attachEmailFn: func(ctx context.Context, sessionID, email string) error {
				rec, ok := stored[sessionID]
				if !ok {
					return errNotFoundStub
				}
				rec.Email = email
				stored[sessionID] = rec
				return nil
			},
			resultFn: func(ctx context.Context, sessionID string) (types.ResultRecord, error) {
				rec, ok := stored[sessionID]
				if !ok {
					return types.ResultRecord{}, errNotFoundStub
				}
				return rec, nil
			},
		}
		mux := newTestMux(deps)

		Convey("When saving a result", func() {
			rec := doJSON(mux, http.MethodPost, "/results", map[string]any{
				"session_id": "sess-2",
				"archetype":  "peacock",
				"traits":     []string{"Talkative"},
			})

			Convey("Then it lands in the store", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(stored["sess-2"].Archetype, ShouldEqual, types.Peacock)
			})
		})

		Convey("When saving without an archetype", func() {
			rec := doJSON(mux, http.MethodPost, "/results", map[string]any{
				"session_id": "sess-3",
			})
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When attaching an email", func() {
			rec := doJSON(mux, http.MethodPost, "/results/email", map[string]any{
				"session_id": "sess-1",
				"email":      "taker@example.com",
			})

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(stored["sess-1"].Email, ShouldEqual, "taker@example.com")
		})

		Convey("When attaching to an unknown session", func() {
			rec := doJSON(mux, http.MethodPost, "/results/email", map[string]any{
				"session_id": "ghost",
				"email":      "x@y.z",
			})
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When fetching a stored result", func() {
			rec := doJSON(mux, http.MethodGet, "/results/sess-1", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			var got types.ResultRecord
			So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
			So(got.Archetype, ShouldEqual, types.Shark)
		})

		Convey("When fetching an unknown result", func() {
			rec := doJSON(mux, http.MethodGet, "/results/ghost", nil)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHandleCohortAndStats(t *testing.T) {
	Convey("Given the cohort and stats endpoints", t, func() {
		deps := &stubDeps{
			cohortFn: func(ctx context.Context, cohortID string) (types.CohortStats, error) {
				return types.CohortStats{
					CohortID:          cohortID,
					TotalParticipants: 4,
					Distributions: []types.Distribution{
						{Archetype: types.Dove, Count: 3, Percentage: 75},
						{Archetype: types.Shark, Count: 1, Percentage: 25},
					},
				}, nil
			},
			quizStatsFn: func(ctx context.Context, sessionID string) (types.QuizStats, error) {
				return types.QuizStats{TotalQuizTakers: 12, QuizTakerNumber: 7, SessionID: sessionID}, nil
			},
		}
		mux := newTestMux(deps)

		Convey("When fetching cohort stats", func() {
			rec := doJSON(mux, http.MethodGet, "/cohorts/team-x", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			var got types.CohortStats
			So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
			So(got.CohortID, ShouldEqual, "team-x")
			So(got.TotalParticipants, ShouldEqual, 4)
		})

		Convey("When the cohort path is empty", func() {
			rec := doJSON(mux, http.MethodGet, "/cohorts/", nil)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When fetching quiz stats with a session", func() {
			rec := doJSON(mux, http.MethodGet, "/quiz-stats?session_id=sess-7", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			var got types.QuizStats
			So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
			So(got.QuizTakerNumber, ShouldEqual, 7)
			So(got.SessionID, ShouldEqual, "sess-7")
		})

		Convey("When fetching service stats", func() {
			rec := doJSON(mux, http.MethodGet, "/stats", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "started")
		})
	})
}

func TestHandleCatalog(t *testing.T) {
	Convey("Given the catalog endpoints", t, func() {
		mux := newTestMux(&stubDeps{})

		Convey("When listing archetypes", func() {
			rec := doJSON(mux, http.MethodGet, "/archetypes", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			var got []archetypeView
			So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
			So(got, ShouldHaveLength, 4)
			So(got[0].ID, ShouldEqual, types.Dove)
		})

		Convey("When fetching one archetype", func() {
			rec := doJSON(mux, http.MethodGet, "/archetypes/owl", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			var got archetypeView
			So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
			So(got.Title, ShouldEqual, "The Methodical Perfectionist")
		})

		Convey("When fetching an unknown archetype", func() {
			rec := doJSON(mux, http.MethodGet, "/archetypes/tiger", nil)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When listing questions", func() {
			rec := doJSON(mux, http.MethodGet, "/questions", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "patient")
		})

		Convey("When listing selectable traits", func() {
			rec := doJSON(mux, http.MethodGet, "/traits", nil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "Persistent")
		})
	})
}

func TestHandleHealth(t *testing.T) {
	Convey("Given the health endpoint", t, func() {
		mux := newTestMux(&stubDeps{})

		Convey("When probing it", func() {
			rec := doJSON(mux, http.MethodGet, "/healthz", nil)

			Convey("Then the metrics registry is served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}
