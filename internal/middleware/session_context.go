package middleware

import (
	"context"
	"net/http"

	"pawsitive/internal/platform/logger"
	"pawsitive/internal/session"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionContext:
// - Decodifica la cookie en cada request y setea los claims en el context.
// - Sin cache en memoria: cada navegación re-decodifica.
// - Si no hay cookie o no valida, el request sigue como anónimo;
//   guard/handlers deciden si cortan. Fallas de decode solo se loguean
//   a debug (diagnóstico), nunca llegan al usuario.
func SessionContext(codec *session.Codec, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ck, err := r.Cookie(session.CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := codec.Decode(ck.Value)
			if !ok {
				if log != nil {
					log.Debug("session decode failed", map[string]any{"path": r.URL.Path})
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (session.Payload, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return session.Payload{}, false
	}
	p, ok := v.(session.Payload)
	return p, ok
}
