package router

import (
	"database/sql"
	"net/http"

	_ "petshop-registry/docs"
	mem "petshop-registry/internal/adapters/storage/memory"
	pg "petshop-registry/internal/adapters/storage/postgres"
	"petshop-registry/internal/domain/pets"
	"petshop-registry/internal/domain/petshops"
	"petshop-registry/internal/middleware"
	"petshop-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (tests)

	// Opcional: si viene, usa Postgres. Si no, in-memory (un store nuevo por router).
	DB *sql.DB

	// RequireUsername exige el header "username" en /pets.
	RequireUsername bool

	// Si está vacío se permite cualquier origen.
	CORSAllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderTaxID, middleware.HeaderUsername},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		shopRepo petshops.Repository
		petRepo  pets.Repository
	)

	if opts.DB != nil {
		shopRepo = pg.NewPetshopsRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		shopRepo = mem.NewPetshopRepo()
		petRepo = mem.NewPetRepo()
	}

	// Services por módulo
	shopsSvc := petshops.NewService(shopRepo)
	petsSvc := pets.NewService(petRepo)

	account := middleware.AccountContext(shopsSvc, middleware.AccountOptions{
		RequireUsername: opts.RequireUsername,
		Log:             log,
	})

	// Rutas por módulo
	petshops.RegisterRoutes(r, shopsSvc, log)
	pets.RegisterRoutes(r, petsSvc, account, log)

	return r
}
