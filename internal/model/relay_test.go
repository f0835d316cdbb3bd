package model

import (
	"net/http"
	"testing"
)

func TestUpstreamResponse_StatusText(t *testing.T) {
	tests := []struct {
		name string
		resp UpstreamResponse
		want string
	}{
		{
			name: "standard status line",
			resp: UpstreamResponse{StatusCode: 404, Status: "404 Not Found"},
			want: "Not Found",
		},
		{
			name: "non-standard phrase preserved",
			resp: UpstreamResponse{StatusCode: 503, Status: "503 Be Right Back"},
			want: "Be Right Back",
		},
		{
			name: "missing phrase falls back to standard text",
			resp: UpstreamResponse{StatusCode: http.StatusForbidden, Status: "403"},
			want: "Forbidden",
		},
		{
			name: "unknown code with empty status",
			resp: UpstreamResponse{StatusCode: 599, Status: ""},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.StatusText(); got != tt.want {
				t.Errorf("StatusText() = %q, want %q", got, tt.want)
			}
		})
	}
}
