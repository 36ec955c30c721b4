package middleware

import (
	"net/http"
	"testing"

	"github.com/preston-bernstein/sports-data-service/internal/testutil"
)

func TestRecoverWritesFailureEnvelope(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	rr := testutil.Serve(Recover(logger)(next), http.MethodGet, "/api/NBA/schedules", nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body struct {
		OK    bool    `json:"ok"`
		Data  any     `json:"data"`
		Error *string `json:"error"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if body.OK || body.Data != nil || body.Error == nil || *body.Error != "panic: kaboom" {
		t.Fatalf("unexpected envelope %+v", body)
	}
	if buf.Len() == 0 {
		t.Fatal("expected panic to be logged")
	}
}

func TestRecoverPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := testutil.Serve(Recover(nil)(next), http.MethodGet, "/api", nil)

	testutil.AssertStatus(t, rr, http.StatusNoContent)
}
