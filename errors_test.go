package slack

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "invalid argument",
			err:  invalidArgument("text, attachments, or blocks is required"),
			want: "invalid argument: text, attachments, or blocks is required",
		},
		{
			name: "http request failed without cause",
			err:  httpRequestFailed("chat.postMessage returned status 500 Internal Server Error", nil),
			want: "http request failed: chat.postMessage returned status 500 Internal Server Error",
		},
		{
			name: "http request failed with cause",
			err:  httpRequestFailed("chat.delete request failed", errors.New("connection refused")),
			want: "http request failed: chat.delete request failed: connection refused",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := httpRequestFailed("request failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is() should find the cause")
	}

	if invalidArgument("nope").Unwrap() != nil {
		t.Fatal("Unwrap() should be nil without a cause")
	}
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	invalid := invalidArgument("bad input")
	failed := httpRequestFailed("boom", nil)

	if !IsInvalidArgument(invalid) {
		t.Fatal("IsInvalidArgument() = false for invalid argument error")
	}
	if IsHTTPRequestFailed(invalid) {
		t.Fatal("IsHTTPRequestFailed() = true for invalid argument error")
	}
	if !IsHTTPRequestFailed(failed) {
		t.Fatal("IsHTTPRequestFailed() = false for http failure")
	}
	if IsInvalidArgument(failed) {
		t.Fatal("IsInvalidArgument() = true for http failure")
	}

	if IsInvalidArgument(nil) || IsHTTPRequestFailed(nil) {
		t.Fatal("predicates should be false for nil")
	}
	if IsInvalidArgument(errors.New("plain")) {
		t.Fatal("IsInvalidArgument() = true for a plain error")
	}
}

func TestKindPredicatesThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("posting announcement: %w", invalidArgument("bad input"))
	if !IsInvalidArgument(wrapped) {
		t.Fatal("IsInvalidArgument() should see through fmt.Errorf wrapping")
	}
}
