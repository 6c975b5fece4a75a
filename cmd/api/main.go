package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mansionmarket-backend/internal/articles"
	"mansionmarket-backend/internal/auth"
	"mansionmarket-backend/internal/cache"
	"mansionmarket-backend/internal/config"
	"mansionmarket-backend/internal/dashboard"
	"mansionmarket-backend/internal/db"
	"mansionmarket-backend/internal/featured"
	"mansionmarket-backend/internal/inquiries"
	appmw "mansionmarket-backend/internal/middleware"
	"mansionmarket-backend/internal/notifications"
	"mansionmarket-backend/internal/properties"
	"mansionmarket-backend/internal/sections"
	"mansionmarket-backend/internal/storage"
	"mansionmarket-backend/internal/subscribers"
	"mansionmarket-backend/internal/transport"
	"mansionmarket-backend/internal/users"
	"mansionmarket-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("mongo connect failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := client.Disconnect(shutdownCtx); err != nil {
			log.Error("mongo disconnect failed", slog.String("error", err.Error()))
		}
	}()

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("mongo connected", slog.String("database", cfg.MongoDB))

	contentCache := buildCache(ctx, cfg, log)
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	var tokens *auth.Manager
	if cfg.JWTSecret != "" {
		tokens = &auth.Manager{
			Secret:    []byte(cfg.JWTSecret),
			AccessTTL: time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			Issuer:    "mansionmarket-backend",
		}
	} else {
		log.Warn("JWT_SECRET not set, auth endpoints disabled")
	}

	store, err := storage.NewDisk(cfg.UploadsDir)
	if err != nil {
		log.Error("uploads dir unavailable", slog.String("dir", cfg.UploadsDir), slog.String("error", err.Error()))
		os.Exit(1)
	}

	var notifier inquiries.Notifier
	if mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox); mailer != nil {
		notifier = mailer
	} else {
		log.Warn("brevo not configured, inquiry notifications disabled")
	}

	val := validation.New()

	userSvc := users.NewService(users.NewRepository(cols.Users))
	userHandler := users.NewHandler(userSvc, val, tokens, log)

	propertyRepo := properties.NewRepository(cols.Properties)
	propertySvc := properties.NewService(propertyRepo)
	propertyHandler := properties.NewHandler(propertySvc, val, store, log)

	featuredSvc := featured.NewService(featured.NewRepository(cols.FeaturedSets), propertyRepo)
	featuredHandler := featured.NewHandler(featuredSvc, log)

	dashboardHandler := dashboard.NewHandler(userSvc, propertySvc, log)

	bannerRepo := sections.NewBannerRepository(cols.Banners)
	promoRepo := sections.NewPromoRepository(cols.Promos)
	heroHandler := sections.NewBannerHandler(sections.NewBannerService(bannerRepo, sections.KeyHero), val, store, contentCache, cacheTTL, "Hero", log)
	magazineHandler := sections.NewBannerHandler(sections.NewBannerService(bannerRepo, sections.KeyMagazine), val, store, contentCache, cacheTTL, "Magazine", log)
	mansionHandler := sections.NewPromoHandler(sections.NewPromoService(promoRepo, sections.KeyMansion), val, contentCache, cacheTTL, "Mansion", log)
	penthouseHandler := sections.NewPromoHandler(sections.NewPromoService(promoRepo, sections.KeyPenthouse), val, contentCache, cacheTTL, "Penthouse", log)
	collectionHandler := sections.NewPromoHandler(sections.NewPromoService(promoRepo, sections.KeyCollection), val, contentCache, cacheTTL, "Collection", log)

	articleSvc := articles.NewService(articles.NewRepository(cols.Articles))
	articleHandler := articles.NewHandler(articleSvc, val, store, log)

	newsletterHandler := subscribers.NewNewsletterHandler(subscribers.NewNewsletterService(subscribers.NewNewsletterRepository(cols.Newsletter)), val, log)
	magazineEmailHandler := subscribers.NewMagazineEmailHandler(subscribers.NewMagazineEmailService(subscribers.NewMagazineEmailRepository(cols.MagazineEmails)), val, log)

	inquirySvc := inquiries.NewService(inquiries.NewRepository(cols.Inquiries))
	inquiryHandler := inquiries.NewHandler(inquirySvc, val, notifier, cfg.InquiryNotifyEmail, log)

	formLimiter := appmw.NewRateLimiter(cfg.RateLimitForms, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(appmw.RequestID())
	r.Use(appmw.Logger(log))
	r.Use(chimw.Recoverer)
	r.Use(appmw.CORS(cfg.FrontendOrigins))
	r.Use(chimw.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", userHandler.Signup)
		r.Post("/auth/login", userHandler.Login)

		r.With(appmw.RequireRole(tokens, users.RoleAdmin)).Get("/dashboard/admin", dashboardHandler.Admin)
		r.With(appmw.RequireRole(tokens, users.RoleSuperadmin)).Get("/dashboard/superadmin", dashboardHandler.Superadmin)

		r.Post("/hero", heroHandler.Create)
		r.Get("/hero", heroHandler.Current)
		r.Get("/heroes", heroHandler.List)
		r.Get("/hero/{id}", heroHandler.Get)
		r.Put("/hero/{id}", heroHandler.Update)
		r.Delete("/hero/{id}", heroHandler.Delete)

		r.Post("/magazine", magazineHandler.Create)
		r.Get("/magazine", magazineHandler.Current)
		r.Get("/magazines", magazineHandler.List)
		r.Get("/magazine/{id}", magazineHandler.Get)
		r.Put("/magazine/{id}", magazineHandler.Update)
		r.Delete("/magazine/{id}", magazineHandler.Delete)

		r.Post("/mansion", mansionHandler.Create)
		r.Get("/mansion", mansionHandler.Current)
		r.Get("/mansions", mansionHandler.List)
		r.Get("/mansion/featured", featuredHandler.Get(featured.FamilyMansion))
		r.Post("/mansion/featured", featuredHandler.Set(featured.FamilyMansion))
		r.Get("/mansion/{id}", mansionHandler.Get)
		r.Put("/mansion/{id}", mansionHandler.Update)
		r.Delete("/mansion/{id}", mansionHandler.Delete)

		r.Post("/penthouse", penthouseHandler.Create)
		r.Get("/penthouse", penthouseHandler.Current)
		r.Get("/penthouses", penthouseHandler.List)
		r.Get("/penthouse/featured", featuredHandler.Get(featured.FamilyPenthouse))
		r.Post("/penthouse/featured", featuredHandler.Set(featured.FamilyPenthouse))
		r.Get("/penthouse/{id}", penthouseHandler.Get)
		r.Put("/penthouse/{id}", penthouseHandler.Update)
		r.Delete("/penthouse/{id}", penthouseHandler.Delete)

		r.Post("/collectibles", collectionHandler.Create)
		r.Get("/collectibles", collectionHandler.Current)
		r.Get("/collections", collectionHandler.List)
		r.Get("/collectibles/featured", featuredHandler.Get(featured.FamilyCollectibles))
		r.Post("/collectibles/featured", featuredHandler.Set(featured.FamilyCollectibles))
		r.Get("/collectibles/{id}", collectionHandler.Get)
		r.Put("/collectibles/{id}", collectionHandler.Update)
		r.Delete("/collectibles/{id}", collectionHandler.Delete)

		r.Post("/featured", featuredHandler.Set(featured.FamilyGlobal))
		r.Get("/featured", featuredHandler.Get(featured.FamilyGlobal))

		r.Post("/propertyDetail", propertyHandler.Create)
		r.Get("/properties", propertyHandler.List)
		r.Get("/mansions/{reference}", propertyHandler.GetByReference)
		r.Get("/propertyDetail/{id}", propertyHandler.Get)
		r.Put("/propertyDetail/{id}", propertyHandler.Update)
		r.Delete("/propertyDetail/{id}", propertyHandler.Delete)

		r.Post("/magazineDetail", articleHandler.Create)
		r.Get("/magazineDetails", articleHandler.List)
		r.Get("/magazineDetail/slug/{slug}", articleHandler.GetBySlug)
		r.Get("/magazineDetail/{id}", articleHandler.Get)
		r.Put("/magazineDetail/{id}", articleHandler.Update)
		r.Delete("/magazineDetail/{id}", articleHandler.Delete)

		r.With(formLimiter.Middleware).Post("/newsletter", newsletterHandler.Create)
		r.Get("/newsletter", newsletterHandler.List)
		r.Get("/newsletter/{id}", newsletterHandler.Get)
		r.Put("/newsletter/{id}", newsletterHandler.Update)
		r.Delete("/newsletter/{id}", newsletterHandler.Delete)

		r.With(formLimiter.Middleware).Post("/magazineEmail", magazineEmailHandler.Create)
		r.Get("/magazineEmail", magazineEmailHandler.List)
		r.Get("/magazineEmail/{id}", magazineEmailHandler.Get)
		r.Put("/magazineEmail/{id}", magazineEmailHandler.Update)
		r.Delete("/magazineEmail/{id}", magazineEmailHandler.Delete)

		r.With(formLimiter.Middleware).Post("/inquiries", inquiryHandler.Create)
		r.Get("/inquiries", inquiryHandler.List)
		r.Get("/inquiries/{id}", inquiryHandler.Get)
		r.Put("/inquiries/{id}", inquiryHandler.Update)
		r.Delete("/inquiries/{id}", inquiryHandler.Delete)

		r.Get("/health", healthHandler(client))
	})

	fileServer := http.StripPrefix(storage.MountPath+"/", http.FileServer(http.Dir(store.Dir())))
	r.Get(storage.MountPath+"/*", fileServer.ServeHTTP)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", slog.String("error", err.Error()))
		}
	}
}

// buildCache returns the redis-backed cache when one is configured and
// reachable, otherwise a no-op so content reads fall through to Mongo.
func buildCache(ctx context.Context, cfg *config.Config, log *slog.Logger) cache.Cache {
	var redisCache *cache.RedisCache
	switch {
	case cfg.RedisURL != "":
		rc, err := cache.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			log.Warn("invalid REDIS_URL, caching disabled", slog.String("error", err.Error()))
			return cache.NewNoop()
		}
		redisCache = rc
	case cfg.RedisAddr != "":
		redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return cache.NewNoop()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable, caching disabled", slog.String("error", err.Error()))
		return cache.NewNoop()
	}

	log.Info("redis cache enabled")
	return redisCache
}

func healthHandler(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		overall := "ok"
		mongoStatus := "ok"
		status := http.StatusOK
		if err := client.Ping(ctx, nil); err != nil {
			overall = "degraded"
			mongoStatus = "unreachable"
			status = http.StatusServiceUnavailable
		}

		transport.WriteJSON(w, status, map[string]string{
			"status": overall,
			"mongo":  mongoStatus,
		})
	}
}
