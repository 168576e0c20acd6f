package classifier

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	perr "spamjar/internal/platform/errors"
)

func TestClassifier_ThresholdIsStrict(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		p    float64
		want bool
	}{
		{0, false},
		{0.5, false},
		{0.5000001, true},
		{1, true},
	}
	for _, tc := range cases {
		c := New(KindModel, ScorerFunc(func(context.Context, string) (float64, error) { return tc.p, nil }), DefaultThreshold, "")
		got, err := c.IsSpam(ctx, "x")
		if err != nil {
			t.Fatalf("p=%v: %v", tc.p, err)
		}
		if got != tc.want {
			t.Fatalf("p=%v: IsSpam = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestClassifier_ErrorsAndRange(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	c := New(KindRemote, ScorerFunc(func(context.Context, string) (float64, error) { return 0, boom }), 0.5, "")
	if _, err := c.IsSpam(ctx, "x"); !errors.Is(err, boom) {
		t.Fatalf("expected scorer error, got %v", err)
	}

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		c := New(KindRemote, ScorerFunc(func(context.Context, string) (float64, error) { return p, nil }), 0.5, "")
		if _, err := c.IsSpam(ctx, "x"); perr.CodeOf(err) != perr.ErrorCodeUnknown || err == nil {
			t.Fatalf("p=%v should be rejected, got %v", p, err)
		}
	}
}

func TestNew_InvalidThresholdFallsBack(t *testing.T) {
	for _, th := range []float64{-1, 2, math.NaN()} {
		if got := New(KindConstant, Constant(false), th, "").Info().Threshold; got != DefaultThreshold {
			t.Fatalf("threshold %v -> %v", th, got)
		}
	}
	info := New(KindLength, Length{MaxLen: 3}, 0.7, "max_len=3").Info()
	if info.Kind != KindLength || info.Threshold != 0.7 || info.Detail != "max_len=3" {
		t.Fatalf("info = %+v", info)
	}
}

func TestConstantAndLength(t *testing.T) {
	ctx := context.Background()

	if spam, _ := New(KindConstant, Constant(false), 0.5, "").IsSpam(ctx, "Buy cheap products now!"); spam {
		t.Fatal("constant false must never flag")
	}
	if spam, _ := New(KindConstant, Constant(true), 0.5, "").IsSpam(ctx, "hi"); !spam {
		t.Fatal("constant true must always flag")
	}

	l := New(KindLength, Length{MaxLen: 5}, 0.5, "")
	for text, want := range map[string]bool{
		"hello":                  false,
		"  hello  ":              false,
		"hello!":                 true,
		"h\u00e9llo":             false,
		strings.Repeat("a", 201): true,
	} {
		if got, _ := l.IsSpam(ctx, text); got != want {
			t.Fatalf("Length(5) %q = %v, want %v", text, got, want)
		}
	}
}
