package store

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"permission", status.Error(codes.PermissionDenied, "rules reject"), ErrPermissionDenied},
		{"quota", status.Error(codes.ResourceExhausted, "free tier spent"), ErrQuotaExceeded},
		{"unavailable", status.Error(codes.Unavailable, "transport closing"), ErrConnection},
		{"plain error", errors.New("dial tcp: timeout"), ErrConnection},
	}

	for _, tc := range cases {
		got := Classify(tc.err)
		if !errors.Is(got, tc.want) {
			t.Errorf("%s: Classify(%v) = %v, want %v", tc.name, tc.err, got, tc.want)
		}
	}
}

func TestClassify_NilPassesThrough(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestClassify_KeepsOriginalMessage(t *testing.T) {
	got := Classify(status.Error(codes.PermissionDenied, "rules reject write"))
	if got == nil || !errors.Is(got, ErrPermissionDenied) {
		t.Fatalf("unexpected classification: %v", got)
	}
	if want := "rules reject write"; !strings.Contains(got.Error(), want) {
		t.Fatalf("expected %q inside %q", want, got.Error())
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{Classify(status.Error(codes.PermissionDenied, "x")), http.StatusForbidden},
		{Classify(status.Error(codes.ResourceExhausted, "x")), http.StatusTooManyRequests},
		{Classify(errors.New("x")), http.StatusBadGateway},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
