package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "spamjar/internal/platform/errors"
)

func scoringServer(t *testing.T, h func(w http.ResponseWriter, in remoteRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var in remoteRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h(w, in)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemote_Score(t *testing.T) {
	srv := scoringServer(t, func(w http.ResponseWriter, in remoteRequest) {
		out := remoteResponse{}
		for _, s := range in.Texts {
			p := 0.1
			if s == "Buy cheap products now!" {
				p = 0.93
			}
			out.Probabilities = append(out.Probabilities, p)
		}
		_ = json.NewEncoder(w).Encode(out)
	})

	rem, err := NewRemote(RemoteOptions{URL: srv.URL, Timeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	c := New(KindRemote, rem, DefaultThreshold, "")
	if spam, err := c.IsSpam(context.Background(), "Buy cheap products now!"); err != nil || !spam {
		t.Fatalf("expected spam, got %v %v", spam, err)
	}
	ps, err := rem.Score(context.Background(), []string{"a", "b"})
	if err != nil || len(ps) != 2 {
		t.Fatalf("batch: %v %v", ps, err)
	}
}

func TestRemote_Failures(t *testing.T) {
	cases := []struct {
		name string
		h    func(w http.ResponseWriter, in remoteRequest)
		code perr.ErrorCode
	}{
		{"server error", func(w http.ResponseWriter, _ remoteRequest) { w.WriteHeader(http.StatusBadGateway) }, perr.ErrorCodeUnavailable},
		{"client error", func(w http.ResponseWriter, _ remoteRequest) { w.WriteHeader(http.StatusBadRequest) }, perr.ErrorCodeUnknown},
		{"bad json", func(w http.ResponseWriter, _ remoteRequest) { _, _ = w.Write([]byte("{")) }, perr.ErrorCodeUnknown},
		{"wrong count", func(w http.ResponseWriter, _ remoteRequest) {
			_ = json.NewEncoder(w).Encode(remoteResponse{Probabilities: []float64{0.1, 0.2}})
		}, perr.ErrorCodeUnknown},
		{"out of range", func(w http.ResponseWriter, _ remoteRequest) {
			_ = json.NewEncoder(w).Encode(remoteResponse{Probabilities: []float64{1.5}})
		}, perr.ErrorCodeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := scoringServer(t, tc.h)
			rem, _ := NewRemote(RemoteOptions{URL: srv.URL})
			_, err := rem.SpamProbability(context.Background(), "x")
			if err == nil || perr.CodeOf(err) != tc.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), tc.code, err)
			}
		})
	}
}

func TestRemote_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rem, _ := NewRemote(RemoteOptions{URL: url, Timeout: time.Second})
	if _, err := rem.SpamProbability(context.Background(), "x"); perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if _, err := NewRemote(RemoteOptions{}); err == nil {
		t.Fatal("missing url should fail")
	}
}
