package account_test

import (
	"context"
	"testing"

	mem "pawsitive/internal/adapters/storage/memory"
	"pawsitive/internal/domain/account"
)

func TestRecordSearch_MostRecentFirst(t *testing.T) {
	svc := account.NewService(mem.NewAccountRepo())
	ctx := context.Background()

	for _, term := range []string{"dog", "cat", "bunny"} {
		if err := svc.RecordSearch(ctx, "user-1", term); err != nil {
			t.Fatalf("record %q: %v", term, err)
		}
	}

	got, err := svc.RecentSearches(ctx, "user-1")
	if err != nil {
		t.Fatalf("recent searches: %v", err)
	}

	want := []string{"bunny", "cat", "dog"}
	assertTerms(t, got, want)
}

func TestRecordSearch_DedupesAndPromotes(t *testing.T) {
	svc := account.NewService(mem.NewAccountRepo())
	ctx := context.Background()

	for _, term := range []string{"dog", "cat", "Dog"} {
		if err := svc.RecordSearch(ctx, "user-1", term); err != nil {
			t.Fatalf("record %q: %v", term, err)
		}
	}

	got, _ := svc.RecentSearches(ctx, "user-1")
	assertTerms(t, got, []string{"Dog", "cat"})
}

func TestRecordSearch_CapsAtFive(t *testing.T) {
	svc := account.NewService(mem.NewAccountRepo())
	ctx := context.Background()

	for _, term := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		if err := svc.RecordSearch(ctx, "user-1", term); err != nil {
			t.Fatalf("record %q: %v", term, err)
		}
	}

	got, _ := svc.RecentSearches(ctx, "user-1")
	assertTerms(t, got, []string{"g", "f", "e", "d", "c"})
}

func TestRecordSearch_IgnoresEmptyTerm(t *testing.T) {
	svc := account.NewService(mem.NewAccountRepo())
	ctx := context.Background()

	if err := svc.RecordSearch(ctx, "user-1", "   "); err != nil {
		t.Fatalf("record empty: %v", err)
	}

	got, _ := svc.RecentSearches(ctx, "user-1")
	if len(got) != 0 {
		t.Fatalf("expected no searches recorded, got %v", got)
	}
}

func TestPreferences_RoundTrip(t *testing.T) {
	svc := account.NewService(mem.NewAccountRepo())
	ctx := context.Background()

	if err := svc.SavePreferences(ctx, "user-1", "prefers calm senior cats"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.Preferences(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "prefers calm senior cats" {
		t.Fatalf("preferences mismatch: %q", got)
	}
}

func assertTerms(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
