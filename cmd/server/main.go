package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/progear-storefront/internal/auth"
	"github.com/iliyamo/progear-storefront/internal/catalog"
	"github.com/iliyamo/progear-storefront/internal/config"
	"github.com/iliyamo/progear-storefront/internal/database"
	"github.com/iliyamo/progear-storefront/internal/handler"
	"github.com/iliyamo/progear-storefront/internal/kvstore"
	"github.com/iliyamo/progear-storefront/internal/logging"
	"github.com/iliyamo/progear-storefront/internal/middleware"
	"github.com/iliyamo/progear-storefront/internal/queue"
	"github.com/iliyamo/progear-storefront/internal/repository"
	"github.com/iliyamo/progear-storefront/internal/router"
	"github.com/iliyamo/progear-storefront/internal/service"
	"github.com/iliyamo/progear-storefront/internal/view"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis serves the response cache and the login limiter, and the store
	// when STORE_BACKEND=redis. A nil client disables the first two.
	rdb := config.NewRedisClient()
	backend := openBackend(ctx, cfg, rdb, log)
	store := kvstore.New(backend, log)

	users := repository.NewUserRepo(store)
	sessions := repository.NewSessionRepo(store)
	products := repository.NewProductRepo(store)
	orders := repository.NewOrderRepo(store)
	carts := repository.NewCartRepo(store)
	wishlists := repository.NewWishlistRepo(store)
	reviews := repository.NewReviewRepo(store)
	settingsRepo := repository.NewSettingsRepo(store)

	var events queue.Publisher = queue.NopPublisher{}
	if cfg.EventsEnabled {
		events = queue.NewAMQPPublisher(cfg.AMQPURL, log)
		consumer := queue.NewConsumer(cfg.AMQPURL, "logs", log)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Error("queue: consumer stopped")
			}
		}()
	}

	authSvc := auth.NewService(users, sessions, auth.Config{BcryptCost: cfg.BcryptCost, SessionTTL: cfg.SessionTTL}, log)
	authSvc.Subscribe(func(_ context.Context, ev auth.Event) {
		log.WithFields(logrus.Fields{"event": string(ev.Kind), "user_id": ev.Session.UserID}).Info("auth: event")
	})
	authSvc.Subscribe(queue.RegistrationObserver(events, log))
	if _, err := authSvc.SeedAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("auth: could not seed admin")
	}

	feed := catalog.NewHTTPFeed(cfg.CatalogURL, &http.Client{Timeout: cfg.CatalogTimeout})
	cat := catalog.New(products, reviews, feed, log)
	cacheCfg := config.LoadCacheConfig()
	purge := func(ctx context.Context) error { return middleware.PurgeCache(ctx, cacheCfg, rdb) }
	cat.OnRefresh = purge
	go func() {
		if err := cat.EnsureFresh(ctx); err != nil {
			log.WithError(err).Warn("catalog: initial load failed")
		}
	}()

	cart := service.NewCart(carts, products, log)
	wishlist := service.NewWishlist(wishlists, products, log)
	ledger := service.NewLedger(orders, carts, products, users, events, log)
	reviewSvc := service.NewReviews(reviews, products, log)
	settings := service.NewSettings(settingsRepo, log)

	renderer, err := view.New(view.Deps{
		Catalog:  cat,
		Cart:     cart,
		Wishlist: wishlist,
		Orders:   ledger,
		Reviews:  reviewSvc,
		Settings: settings,
		Users:    users,
	})
	if err != nil {
		log.WithError(err).Fatal("view: templates failed to load")
	}
	nav := router.NewNavigator(renderer, log)

	productH := handler.NewProductHandler(cat, reviewSvc, settings, log)
	productH.OnCatalogChange = purge
	adminH := handler.NewAdminHandler(cat, ledger, settings, users, log)
	adminH.OnCatalogChange = purge

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"remote_ip":  v.RemoteIP,
			})
			if uid, ok := c.Get("user_id").(string); ok {
				entry = entry.WithField("user_id", uid)
			}
			if v.Error != nil {
				entry.WithError(v.Error).Error("http: request failed")
				return nil
			}
			entry.Info("http: request")
			return nil
		},
	}))

	router.RegisterRoutes(e, router.Handlers{
		Pages:    handler.NewPageHandler(nav, log),
		Health:   handler.NewHealthHandler(cat),
		Auth:     handler.NewAuthHandler(authSvc, settings, cfg.JWTSecret, log),
		Products: productH,
		Cart:     handler.NewCartHandler(cart, wishlist, settings, log),
		Orders:   handler.NewOrderHandler(ledger, settings, log),
		Settings: handler.NewSettingsHandler(settings, log),
		Admin:    adminH,
	}, router.Middleware{
		Session:   middleware.Session(cfg.JWTSecret, authSvc, log),
		Cache:     middleware.NewRedisCache(cacheCfg, rdb, log),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log),
	})

	addr := ":" + cfg.Port
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "store": cfg.StoreBackend}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
}

// openBackend picks the store backend named by cfg.StoreBackend. Redis and
// MySQL backends are required once selected, so failures stop the process.
func openBackend(ctx context.Context, cfg config.Config, rdb *redis.Client, log *logrus.Logger) kvstore.Backend {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		if rdb == nil {
			log.Fatal("store: STORE_BACKEND=redis but redis is unavailable")
		}
		return kvstore.NewRedisBackend(rdb, cfg.StorePrefix)
	case config.BackendMySQL:
		db, err := database.Open(ctx, cfg)
		if err != nil {
			log.WithError(err).Fatal("store: mysql unavailable")
		}
		b := kvstore.NewMySQLBackend(db)
		if err := b.EnsureSchema(ctx); err != nil {
			log.WithError(err).Fatal("store: could not create kv table")
		}
		return b
	}
	log.Warn("store: using in-memory backend, data is lost on restart")
	return kvstore.NewMemoryBackend()
}
