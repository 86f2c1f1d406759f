package petapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawsitive/internal/adapters/petapi"
)

func TestListPets_SendsAuthHeadersAndParsesEnvelope(t *testing.T) {
	var gotAuth, gotKey string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("X-Api-Key")

		if r.URL.Path != "/pets" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "12" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "pet-1", "name": "Buddy", "species": "dog"},
				{"id": "pet-2", "name": "Misha", "species": "cat"},
			},
			"meta": map[string]any{
				"isFirstPage": false,
				"isLastPage":  true,
				"currentPage": 2,
				"pageCount":   2,
				"totalCount":  14,
			},
		})
	}))
	defer ts.Close()

	c := petapi.NewClient(petapi.Config{
		BaseURL:     ts.URL,
		APIKey:      "key-123",
		BearerToken: "token-abc",
	})

	page, err := c.ListPets(context.Background(), 2, 12)
	if err != nil {
		t.Fatalf("list pets: %v", err)
	}

	if gotAuth != "Bearer token-abc" {
		t.Fatalf("missing bearer header, got %q", gotAuth)
	}
	if gotKey != "key-123" {
		t.Fatalf("missing api key header, got %q", gotKey)
	}

	if len(page.Pets) != 2 || page.Pets[0].ID != "pet-1" {
		t.Fatalf("unexpected pets: %+v", page.Pets)
	}
	if page.Meta == nil || page.Meta.TotalCount != 14 || !page.Meta.IsLastPage {
		t.Fatalf("unexpected meta: %+v", page.Meta)
	}
}

func TestErrorMapping(t *testing.T) {
	status := http.StatusUnauthorized

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", status)
	}))
	defer ts.Close()

	c := petapi.NewClient(petapi.Config{BaseURL: ts.URL})

	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, petapi.ErrUnauthorized},
		{http.StatusForbidden, petapi.ErrUnauthorized},
		{http.StatusNotFound, petapi.ErrNotFound},
		{http.StatusConflict, petapi.ErrConflict},
		{http.StatusBadGateway, petapi.ErrUpstream},
	}

	for _, tc := range cases {
		status = tc.status
		_, err := c.GetPet(context.Background(), "pet-1")
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
	}
}

func TestLogin_RejectsEmptyAccount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer ts.Close()

	c := petapi.NewClient(petapi.Config{BaseURL: ts.URL})

	if _, err := c.Login(context.Background(), "a@b.c", "pw"); !errors.Is(err, petapi.ErrUpstream) {
		t.Fatalf("expected upstream error for empty account, got %v", err)
	}
}

func TestNotConfigured(t *testing.T) {
	c := petapi.NewClient(petapi.Config{})

	if _, err := c.ListPets(context.Background(), 1, 12); !errors.Is(err, petapi.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
