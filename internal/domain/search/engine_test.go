package search

import (
	"testing"

	pets "pawsitive/internal/domain/pets/model"
)

func pet(id, name, breed, description string) pets.Pet {
	return pets.Pet{
		ID:          id,
		Name:        name,
		Breed:       breed,
		Age:         3,
		Size:        pets.SizeMedium,
		Color:       "brown",
		Description: description,
	}
}

func TestRank_EmptyQueryIsNoop(t *testing.T) {
	e := NewEngine()
	candidates := []pets.Pet{
		pet("1", "Buddy", "labrador", "very friendly"),
		pet("2", "Misha", "siamese", "calm lap cat"),
	}

	for _, q := range []string{"", "   ", "\t"} {
		out, active := e.Rank(q, candidates)
		if active {
			t.Fatalf("query %q: expected no active search", q)
		}
		if len(out) != len(candidates) {
			t.Fatalf("query %q: expected full set, got %d", q, len(out))
		}
		for i, r := range out {
			if r.Pet.ID != candidates[i].ID {
				t.Fatalf("query %q: order changed at %d", q, i)
			}
			if r.Score != 0 {
				t.Fatalf("query %q: expected score 0, got %f", q, r.Score)
			}
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	e := NewEngine()
	candidates := []pets.Pet{
		pet("1", "Buddy", "labrador", "an affectionate and social dog"),
		pet("2", "Luna", "mixed hound", "playful puppy, loves walks"),
		pet("3", "Misha", "siamese", "calm lap cat"),
	}

	first, _ := e.Rank("friendly dog", candidates)
	second, _ := e.Rank("friendly dog", candidates)

	if len(first) != len(second) {
		t.Fatalf("result sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Pet.ID != second[i].Pet.ID || first[i].Score != second[i].Score {
			t.Fatalf("non-deterministic ranking at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRank_ExactNameBeatsFuzzy(t *testing.T) {
	e := NewEngine()

	exact := pet("exact", "Buddy", "labrador", "a good boy")
	fuzzy := pet("fuzzy", "Budy", "labrador", "a good boy")

	out, _ := e.Rank("buddy", []pets.Pet{fuzzy, exact})

	if len(out) < 2 {
		t.Fatalf("expected both records to match, got %d", len(out))
	}
	if out[0].Pet.ID != "exact" {
		t.Fatalf("expected exact name match first, got %q", out[0].Pet.ID)
	}
	if out[0].Score <= out[1].Score {
		t.Fatalf("exact match must score strictly higher: %f vs %f", out[0].Score, out[1].Score)
	}
}

func TestRank_SynonymExpansionIsSymmetric(t *testing.T) {
	e := NewEngine()
	candidates := []pets.Pet{
		pet("1", "Rex", "german shepherd dog", "loyal companion"),
		pet("2", "Misha", "siamese", "calm lap cat"),
	}

	byDog, _ := e.Rank("dog", candidates)
	byPuppy, _ := e.Rank("puppy", candidates)

	if !containsID(byDog, "1") {
		t.Fatal(`searching "dog" should match the shepherd`)
	}
	if !containsID(byPuppy, "1") {
		t.Fatal(`searching "puppy" should match every record "dog" matches via name/breed/description`)
	}
	if containsID(byPuppy, "2") {
		t.Fatal(`searching "puppy" should not match the cat`)
	}
}

func TestRank_ToleratesMisspelling(t *testing.T) {
	e := NewEngine()
	candidates := []pets.Pet{
		pet("1", "Buddy", "labrador", "very friendly with kids"),
		pet("2", "Misha", "siamese", "shy around strangers"),
	}

	out, active := e.Rank("frendly", candidates)
	if !active {
		t.Fatal("expected active search")
	}
	if !containsID(out, "1") {
		t.Fatal(`"frendly" should fuzzy-match "friendly"`)
	}
	if containsID(out, "2") {
		t.Fatal("unrelated record should be excluded")
	}
}

func TestRank_NoMatchesYieldsEmptyList(t *testing.T) {
	e := NewEngine()
	candidates := []pets.Pet{
		pet("1", "Buddy", "labrador", "very friendly"),
	}

	out, active := e.Rank("xylophone", candidates)
	if !active {
		t.Fatal("expected active search")
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestRank_MatchedFieldsReported(t *testing.T) {
	e := NewEngine()

	out, _ := e.Rank("labrador", []pets.Pet{
		pet("1", "Buddy", "labrador retriever", "a labrador through and through"),
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}

	fields := out[0].MatchedFields
	if !containsString(fields, "breed") || !containsString(fields, "description") {
		t.Fatalf("expected breed and description among matched fields, got %v", fields)
	}
	if containsString(fields, "name") {
		t.Fatalf("name did not match but was reported: %v", fields)
	}
}

func TestRank_AgeFieldIsSearchable(t *testing.T) {
	e := NewEngine()

	young := pet("young", "Luna", "mixed", "sweet girl")
	young.Age = 2

	out, _ := e.Rank("2 years old", []pets.Pet{young})
	if len(out) != 1 {
		t.Fatalf("expected age text to match, got %d results", len(out))
	}
	if !containsString(out[0].MatchedFields, "age") {
		t.Fatalf("expected age among matched fields, got %v", out[0].MatchedFields)
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"dog", "", 3},
		{"", "dog", 3},
		{"dog", "dog", 0},
		{"kitten", "sitting", 3},
		{"frendly", "friendly", 1},
	}

	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func containsID(results []Result, id string) bool {
	for _, r := range results {
		if r.Pet.ID == id {
			return true
		}
	}
	return false
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
