package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tripdeck/tripdeck/internal/core/models"
	"github.com/tripdeck/tripdeck/internal/core/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := session.NewStore(t.TempDir())
	return New(srv.URL, 5*time.Second, store), store
}

func TestLoginTokenExtraction(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantToken string
		wantErr   bool
	}{
		{"accessToken field", `{"accessToken":"abc"}`, "abc", false},
		{"token field", `{"token":"def"}`, "def", false},
		{"snake_case field", `{"access_token":"ghi"}`, "ghi", false},
		{"jwt field", `{"jwt":"jkl"}`, "jkl", false},
		{"accessToken preferred over token", `{"token":"second","accessToken":"first"}`, "first", false},
		{"no recognized field", `{"user":"someone"}`, "", true},
		{"empty token value", `{"accessToken":""}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.response))
			}))

			token, err := client.Login(context.Background(), "a@b.c", "pw")
			if tt.wantErr {
				if err == nil {
					t.Fatal("Login() error = nil, want error")
				}
				apiErr, ok := err.(*Error)
				if !ok || apiErr.Kind != KindInvalidResponse {
					t.Errorf("Login() error = %v, want KindInvalidResponse", err)
				}
				// A failed extraction must not touch the session store.
				if store.Present() {
					t.Error("session store mutated by failed login")
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("Login() = %q, want %q", token, tt.wantToken)
			}
		})
	}
}

func TestBearerHeader(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"content":[]}`))
	})

	t.Run("token present", func(t *testing.T) {
		client, store := newTestClient(t, handler)
		if err := store.Set("tok-123"); err != nil {
			t.Fatal(err)
		}
		if _, err := client.Trips(context.Background()); err != nil {
			t.Fatal(err)
		}
		if gotAuth != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
		}
	})

	t.Run("token absent", func(t *testing.T) {
		client, _ := newTestClient(t, handler)
		if _, err := client.Trips(context.Background()); err != nil {
			t.Fatal(err)
		}
		if gotAuth != "" {
			t.Errorf("Authorization = %q, want empty", gotAuth)
		}
	})
}

func TestRequestIDHeader(t *testing.T) {
	var got string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"content":[]}`))
	}))

	if _, err := client.Trips(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("request went out without an X-Request-Id")
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		k       Kind
	}{
		{"field errors", 400, `{"fieldErrors":[{"defaultMessage":"title must not be blank"}]}`, "title must not be blank", KindBadRequest},
		{"errors array", 400, `{"errors":[{"message":"amount invalid"}]}`, "amount invalid", KindBadRequest},
		{"message key", 500, `{"message":"boom"}`, "boom", KindServer},
		{"error key", 400, `{"error":"bad input"}`, "bad input", KindBadRequest},
		{"detail key", 404, `{"detail":"no such trip"}`, "no such trip", KindNotFound},
		{"bare string body", 400, `"just text"`, "just text", KindBadRequest},
		{"401 fallback", 401, `{}`, "Unauthorized", KindUnauthorized},
		{"403 fallback", 403, `{}`, "Forbidden", KindForbidden},
		{"404 fallback", 404, `{}`, "Not found", KindNotFound},
		{"opaque fallback", 418, `<html>`, "Request failed", KindBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.Trips(context.Background())
			if err == nil {
				t.Fatal("Trips() error = nil, want error")
			}
			apiErr, ok := err.(*Error)
			if !ok {
				t.Fatalf("Trips() error = %T, want *Error", err)
			}
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
			if apiErr.Kind != tt.k {
				t.Errorf("Kind = %v, want %v", apiErr.Kind, tt.k)
			}
		})
	}
}

func TestTripsUnwrapsPage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"content":[{"id":1,"title":"Lisbon"},{"id":2,"title":"Tokyo"}],
			"totalElements":2,"totalPages":1,"number":0,"size":20
		}`))
	}))

	trips, err := client.Trips(context.Background())
	if err != nil {
		t.Fatalf("Trips() error = %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("Trips() returned %d trips, want 2", len(trips))
	}
	if trips[0].Title != "Lisbon" || trips[1].ID != 2 {
		t.Errorf("Trips() decoded %+v", trips)
	}
}

func TestBudgetAbsent(t *testing.T) {
	t.Run("404", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		b, err := client.Budget(context.Background(), 1)
		if err != nil {
			t.Fatalf("Budget() error = %v", err)
		}
		if b != nil {
			t.Errorf("Budget() = %+v, want nil", b)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		b, err := client.Budget(context.Background(), 1)
		if err != nil {
			t.Fatalf("Budget() error = %v", err)
		}
		if b != nil {
			t.Errorf("Budget() = %+v, want nil", b)
		}
	})

	t.Run("present", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":7,"tripId":1,"total":2500,"currency":"EUR"}`))
		}))
		b, err := client.Budget(context.Background(), 1)
		if err != nil {
			t.Fatalf("Budget() error = %v", err)
		}
		if b == nil || b.Total != 2500 {
			t.Errorf("Budget() = %+v, want total 2500", b)
		}
	})
}

func TestUpsertBudgetUsesPut(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"id":1,"tripId":4,"total":900}`))
	}))

	_, err := client.UpsertBudget(context.Background(), 4, models.BudgetUpsertRequest{Total: 900})
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPut || gotPath != "/budgets/trip/4" {
		t.Errorf("request was %s %s, want PUT /budgets/trip/4", gotMethod, gotPath)
	}
}

func TestMalformedPayloadIsServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": [`))
	}))

	_, err := client.Trips(context.Background())
	apiErr, ok := err.(*Error)
	if !ok || apiErr.Kind != KindServer {
		t.Errorf("Trips() error = %v, want KindServer", err)
	}
}
