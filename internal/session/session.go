package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const (
	CookieName = "session"

	// TTL de la sesión (igual que el contrato original: 7 días).
	TTL = 7 * 24 * time.Hour

	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Payload son los claims que viajan dentro de la cookie.
// No hay storage server-side: la cookie ES la sesión.
type Payload struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Codec codifica/decodifica el payload firmado con HMAC-SHA256.
// Formato: base64url(json) + "." + base64url(hmac).
// El esquema viejo (secreto concatenado en claro dentro del base64) era
// forjable; la firma lo reemplaza manteniendo el mismo contrato externo:
// string opaco, mismos claims, mismo expiry.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// NewCodecAt permite fijar el reloj (tests de expiración).
func NewCodecAt(secret string, now func() time.Time) *Codec {
	c := NewCodec(secret)
	if now != nil {
		c.now = now
	}
	return c
}

func (c *Codec) Encode(p Payload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b) + "." + c.sign(b), nil
}

// Decode valida y parsea una cookie. Cualquier falla (formato, firma,
// json, claims vacíos, expiry vencido) se trata igual que "sin sesión":
// fail-closed, el caller no distingue el motivo.
func (c *Codec) Decode(raw string) (Payload, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Payload{}, false
	}

	dot := strings.LastIndex(raw, ".")
	if dot < 0 {
		return Payload{}, false
	}

	body, err := base64.RawURLEncoding.DecodeString(raw[:dot])
	if err != nil {
		return Payload{}, false
	}

	if !hmac.Equal([]byte(raw[dot+1:]), []byte(c.sign(body))) {
		return Payload{}, false
	}

	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Payload{}, false
	}

	if strings.TrimSpace(p.UserID) == "" {
		return Payload{}, false
	}
	if !p.ExpiresAt.After(c.now()) {
		return Payload{}, false
	}

	return p, true
}

func (c *Codec) sign(body []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(body)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// New arma un payload fresco con expiry a TTL.
func (c *Codec) New(userID, email, role string) Payload {
	return Payload{
		UserID:    userID,
		Email:     email,
		Role:      role,
		ExpiresAt: c.now().Add(TTL),
	}
}

// SetCookie escribe la cookie de sesión.
// Secure solo en producción; SameSite Lax igual que el front original.
func SetCookie(w http.ResponseWriter, value string, expires time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
}

// ClearCookie borra la sesión (logout o cookie inválida).
func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// FromRequest lee y decodifica la cookie del request.
func FromRequest(r *http.Request, c *Codec) (Payload, bool) {
	ck, err := r.Cookie(CookieName)
	if err != nil {
		return Payload{}, false
	}
	return c.Decode(ck.Value)
}

// IsAdmin ayuda a los handlers con el check de rol.
func IsAdmin(p Payload) bool {
	return p.Role == RoleAdmin
}
