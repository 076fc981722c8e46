// Package http wires the HTTP surface: middleware, handlers and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	noteusecases "careline/internal/application/note/usecases"
	"careline/internal/application/ticket/usecases"
	"careline/internal/infrastructure/auth"
	"careline/internal/infrastructure/config"
	"careline/internal/infrastructure/ratelimit"
	"careline/internal/infrastructure/repository"
	"careline/internal/infrastructure/storage"
	notehandlers "careline/internal/interfaces/http/handlers/note"
	tickethandlers "careline/internal/interfaces/http/handlers/ticket"
	"careline/internal/interfaces/http/middleware"
	"careline/internal/interfaces/http/routes"
	"careline/internal/shared/db"
	"careline/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	ticketHandler   *tickethandlers.TicketHandler
	followUpHandler *tickethandlers.FollowUpHandler
	noteHandler     *notehandlers.NoteHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	fileStore, err := storage.NewLocalFileStore(cfg.Storage.MediaRoot, cfg.Storage.MaxUploadBytes, log)
	if err != nil {
		return nil, err
	}

	ticketRepo := repository.NewTicketRepository(database)
	followUpRepo := repository.NewFollowUpRepository(database)
	txMgr := db.NewTransactionManager(database)

	ticketHandler := tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(ticketRepo, fileStore, log),
		usecases.NewUpdateTicketUseCase(ticketRepo, fileStore, log),
		usecases.NewDeleteTicketUseCase(ticketRepo, followUpRepo, txMgr, fileStore, log),
		usecases.NewGetTicketUseCase(ticketRepo, log),
		usecases.NewListTicketsUseCase(ticketRepo, log),
		log,
	)

	followUpHandler := tickethandlers.NewFollowUpHandler(
		usecases.NewCreateFollowUpUseCase(ticketRepo, followUpRepo, txMgr, fileStore, log),
		usecases.NewUpdateFollowUpUseCase(followUpRepo, fileStore, log),
		usecases.NewDeleteFollowUpUseCase(followUpRepo, fileStore, log),
		usecases.NewListFollowUpsUseCase(ticketRepo, followUpRepo, log),
		log,
	)

	noteRepo := repository.NewNoteRepository(database)
	noteHandler := notehandlers.NewNoteHandler(
		noteusecases.NewCreateNoteUseCase(noteRepo, log),
		noteusecases.NewUpdateNoteUseCase(noteRepo, log),
		noteusecases.NewDeleteNoteUseCase(noteRepo, log),
		noteusecases.NewGetNoteUseCase(noteRepo, log),
		noteusecases.NewListNotesUseCase(noteRepo, log),
		log,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:          gin.New(),
		cfg:             cfg,
		logger:          log,
		ticketHandler:   ticketHandler,
		followUpHandler: followUpHandler,
		noteHandler:     noteHandler,
		authMiddleware:  authMiddleware,
	}, nil
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	if r.cfg.RateLimit.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     r.cfg.Redis.GetAddr(),
			Password: r.cfg.Redis.Password,
			DB:       r.cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisRateLimiter(client)
		r.engine.Use(middleware.RateLimit(limiter, r.cfg.RateLimit, r.logger))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:   r.ticketHandler,
		FollowUpHandler: r.followUpHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupNoteRoutes(r.engine, &routes.NoteRouteConfig{
		NoteHandler:    r.noteHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
