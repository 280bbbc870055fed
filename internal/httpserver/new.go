package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"aquamon-api/pkg/discord"
	pkgKafka "aquamon-api/pkg/kafka"
	pkgLog "aquamon-api/pkg/log"
	pkgMinio "aquamon-api/pkg/minio"
	"aquamon-api/pkg/scope"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// HTTPServer wires the API service. New() only assembles and validates
// dependencies; Run() (in httpserver.go) starts serving.
type HTTPServer struct {
	gin  *gin.Engine
	l    pkgLog.Logger
	port int
	mode string

	db       *sql.DB
	redis    *goredis.Client
	cacheTTL time.Duration

	jwtMgr   scope.Manager
	producer *pkgKafka.Producer
	storage  pkgMinio.MinIO
	discord  discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	DB       *sql.DB
	Redis    *goredis.Client
	CacheTTL time.Duration

	JWTManager scope.Manager

	// Optional integrations; nil disables them.
	Producer *pkgKafka.Producer
	Storage  pkgMinio.MinIO
	Discord  discord.IDiscord
}

// New creates a new HTTPServer. It does not start any goroutines.
func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:      gin.New(),
		l:        l,
		port:     cfg.Port,
		mode:     cfg.Mode,
		db:       cfg.DB,
		redis:    cfg.Redis,
		cacheTTL: cfg.CacheTTL,
		jwtMgr:   cfg.JWTManager,
		producer: cfg.Producer,
		storage:  cfg.Storage,
		discord:  cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}

	return nil
}
