package session

import (
	"strings"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("test-secret")

	p := c.New("user-1", "user@example.com", RoleUser)

	raw, err := c.Encode(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if raw == "" {
		t.Fatal("encode: empty cookie value")
	}

	got, ok := c.Decode(raw)
	if !ok {
		t.Fatal("decode: expected valid session")
	}
	if got.UserID != "user-1" || got.Email != "user@example.com" || got.Role != RoleUser {
		t.Fatalf("decode: claims mismatch: %+v", got)
	}
	if !got.ExpiresAt.Equal(p.ExpiresAt) {
		t.Fatalf("decode: expiry mismatch: %v vs %v", got.ExpiresAt, p.ExpiresAt)
	}
}

func TestCodec_RejectsTamperedPayload(t *testing.T) {
	c := NewCodec("test-secret")

	raw, err := c.Encode(c.New("user-1", "user@example.com", RoleUser))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Cambiar un byte del body invalida la firma.
	tampered := "A" + raw[1:]
	if _, ok := c.Decode(tampered); ok {
		t.Fatal("decode: accepted tampered cookie")
	}
}

func TestCodec_RejectsWrongSecret(t *testing.T) {
	a := NewCodec("secret-a")
	b := NewCodec("secret-b")

	raw, err := a.Encode(a.New("user-1", "user@example.com", RoleAdmin))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, ok := b.Decode(raw); ok {
		t.Fatal("decode: accepted cookie signed with another secret")
	}
}

func TestCodec_RejectsExpired(t *testing.T) {
	base := time.Now()
	c := NewCodecAt("test-secret", func() time.Time { return base })

	raw, err := c.Encode(c.New("user-1", "user@example.com", RoleUser))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Reloj adelantado más allá del TTL.
	late := NewCodecAt("test-secret", func() time.Time { return base.Add(TTL + time.Minute) })
	if _, ok := late.Decode(raw); ok {
		t.Fatal("decode: accepted expired session")
	}
}

func TestCodec_RejectsGarbage(t *testing.T) {
	c := NewCodec("test-secret")

	cases := []string{
		"",
		"   ",
		"no-dot-here",
		"!!!.!!!",
		strings.Repeat("a", 200),
		"eyJmb28iOiJiYXIifQ.invalid-signature",
	}

	for _, raw := range cases {
		if _, ok := c.Decode(raw); ok {
			t.Fatalf("decode: accepted garbage %q", raw)
		}
	}
}

func TestCodec_RejectsMissingUserID(t *testing.T) {
	c := NewCodec("test-secret")

	raw, err := c.Encode(Payload{
		Email:     "user@example.com",
		Role:      RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, ok := c.Decode(raw); ok {
		t.Fatal("decode: accepted session without user id")
	}
}
