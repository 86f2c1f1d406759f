package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	mem "pawsitive/internal/adapters/storage/memory"
	pg "pawsitive/internal/adapters/storage/postgres"

	"pawsitive/internal/adapters/petapi"
	"pawsitive/internal/config"
	"pawsitive/internal/domain/account"
	"pawsitive/internal/domain/auth"
	"pawsitive/internal/domain/favorites"
	"pawsitive/internal/domain/pets"
	"pawsitive/internal/domain/search"
	"pawsitive/internal/middleware"
	"pawsitive/internal/pages"
	"pawsitive/internal/platform/logger"
	"pawsitive/internal/session"
)

type Options struct {
	Config config.Config
	Logger logger.Logger
	API    *petapi.Client

	// Opcional: si viene, usa Postgres para favoritos/preferencias.
	// Si no, intenta DB_DSN del config; si tampoco, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	codec := session.NewCodec(opts.Config.SessionSecret)
	secure := opts.Config.IsProduction()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	// La sesión se re-decodifica en cada request; no hay cache.
	r.Use(middleware.SessionContext(codec, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		favRepo     favorites.Repository
		accountRepo account.Repository
	)

	db := opts.DB
	if db == nil && opts.Config.DBDSN != "" {
		opened, err := pg.Open(opts.Config.DBDSN)
		if err != nil {
			log.Warn("postgres unavailable, falling back to memory", map[string]any{"err": err.Error()})
		} else {
			db = opened
		}
	}

	if db != nil {
		favRepo = pg.NewFavoritesRepo(db)
		accountRepo = pg.NewAccountRepo(db)
	} else {
		favRepo = mem.NewFavoritesRepo()
		accountRepo = mem.NewAccountRepo()
	}

	favSvc := favorites.NewService(favRepo)
	accountSvc := account.NewService(accountRepo)
	engine := search.NewEngine()

	// API interna consumida por el front. El guard no aplica acá:
	// estos endpoints responden status, no redirects.
	r.Route("/api", func(api chi.Router) {
		// Login/registro con límite por IP
		authLimiter := middleware.NewIPRateLimiter(10, time.Minute, 5, 10*time.Minute)

		api.Group(func(g chi.Router) {
			g.Use(middleware.RateLimit(authLimiter))
			auth.RegisterRoutes(g, auth.Deps{
				API:         opts.API,
				Codec:       codec,
				Log:         log,
				Secure:      secure,
				EmailDomain: opts.Config.EmailDomain,
			})
		})

		pets.RegisterRoutes(api, pets.Deps{
			API:      opts.API,
			Engine:   engine,
			Accounts: accountSvc,
			Log:      log,
		})

		favorites.RegisterRoutes(api, favSvc)
		account.RegisterRoutes(api, accountSvc)
	})

	// Páginas navegables, detrás del guard.
	r.Group(func(g chi.Router) {
		g.Use(middleware.Guard)
		pages.RegisterRoutes(g)
	})

	return r
}
