package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"browserkit/internal/config"
	"browserkit/internal/database"
	"browserkit/internal/logger"
)

// Journal — читающая часть репозитория журнала, нужная серверу.
type Journal interface {
	ListSessions(limit, offset int) ([]database.SessionRecord, error)
	GetSessionByID(id uint) (*database.SessionRecord, error)
	ListActions(sessionID uint) ([]database.ActionRecord, error)
}

type Server struct {
	cfg  *config.Cfg
	log  *logger.Zap
	repo Journal
}

func New(cfg *config.Cfg, log *logger.Zap, repo Journal) *Server {
	return &Server{
		cfg:  cfg,
		log:  log,
		repo: repo,
	}
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Простейший лог-мидлвар
	r.Use(func(c *gin.Context) {
		s.log.Info("HTTP",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Список сессий
	r.GET("/api/sessions", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		sessions, err := s.repo.ListSessions(limit, offset)
		if err != nil {
			s.log.Error("db list sessions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": sessions})
	})

	// Одна сессия
	r.GET("/api/sessions/:id", func(c *gin.Context) {
		id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
			return
		}
		session, err := s.repo.GetSessionByID(uint(id64))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, session)
	})

	// Действия внутри сессии
	r.GET("/api/sessions/:id/actions", func(c *gin.Context) {
		id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
			return
		}
		actions, err := s.repo.ListActions(uint(id64))
		if err != nil {
			s.log.Error("db list actions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"actions": actions})
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	s.log.Info("HTTP сервер запущен", zap.String("addr", s.cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
