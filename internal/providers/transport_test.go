package providers

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", "https://default.example.com"},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := NormalizeBaseURL(c.input, "https://default.example.com/"); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestNewHTTPClientDefaultsTimeout(t *testing.T) {
	client := NewHTTPClient(0)
	if client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, client.Timeout)
	}
	if client.Transport == nil {
		t.Fatal("expected instrumented transport")
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}
