package httpserver

import (
	"aquamon-api/internal/middleware"

	activityHTTP "aquamon-api/internal/activity/delivery/http"
	activityPostgres "aquamon-api/internal/activity/repository/postgre"
	activityUC "aquamon-api/internal/activity/usecase"
	"aquamon-api/internal/alertlog"
	alertlogHTTP "aquamon-api/internal/alertlog/delivery/http"
	alertlogPostgres "aquamon-api/internal/alertlog/repository/postgre"
	alertlogUC "aquamon-api/internal/alertlog/usecase"
	districtHTTP "aquamon-api/internal/district/delivery/http"
	districtPostgres "aquamon-api/internal/district/repository/postgre"
	districtUC "aquamon-api/internal/district/usecase"
	metricsHTTP "aquamon-api/internal/metrics/delivery/http"
	metricsPostgres "aquamon-api/internal/metrics/repository/postgre"
	metricsUC "aquamon-api/internal/metrics/usecase"
	thresholdHTTP "aquamon-api/internal/threshold/delivery/http"
	thresholdRepo "aquamon-api/internal/threshold/repository"
	thresholdPostgres "aquamon-api/internal/threshold/repository/postgre"
	thresholdRedis "aquamon-api/internal/threshold/repository/redis"
	thresholdUC "aquamon-api/internal/threshold/usecase"
	userHTTP "aquamon-api/internal/user/delivery/http"
	userPostgres "aquamon-api/internal/user/repository/postgre"
	userUC "aquamon-api/internal/user/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.l, srv.jwtMgr)

	// Repositories
	userRepo := userPostgres.New(srv.l, srv.db)
	districtRepo := districtPostgres.New(srv.l, srv.db)
	thrRepo := thresholdPostgres.New(srv.l, srv.db)
	metricsRepo := metricsPostgres.New(srv.l, srv.db)
	alertlogRepo := alertlogPostgres.New(srv.l, srv.db)
	activityRepo := activityPostgres.New(srv.l, srv.db)

	// Usecases
	actUC := activityUC.New(srv.l, activityRepo)

	thrUC := thresholdUC.New(srv.l, thrRepo, srv.thresholdCache())

	var pub alertlog.Publisher
	if srv.producer != nil {
		pub = srv.producer
	}
	alertUC := alertlogUC.New(srv.l, alertlogRepo, actUC, pub, srv.storage)

	metUC := metricsUC.New(srv.l, metricsRepo, thrUC, alertUC, actUC)
	disUC := districtUC.New(srv.l, districtRepo)
	usrUC := userUC.New(srv.l, userRepo, srv.jwtMgr)

	// Handlers and routes
	v1 := srv.gin.Group(api)

	userHTTP.MapRoutes(v1.Group("/auth"), userHTTP.New(srv.l, usrUC), mw)
	districtHTTP.MapRoutes(v1.Group("/districts"), districtHTTP.New(srv.l, disUC), mw)
	thresholdHTTP.MapRoutes(v1.Group("/thresholds"), thresholdHTTP.New(srv.l, thrUC), mw)
	metricsHTTP.MapRoutes(v1.Group("/metrics"), metricsHTTP.New(srv.l, metUC), mw)

	alertHandler := alertlogHTTP.New(srv.l, alertUC)
	alertlogHTTP.MapAlertRoutes(v1.Group("/alerts"), alertHandler, mw)
	alertlogHTTP.MapReportRoutes(v1.Group("/reports"), alertHandler, mw)

	activityHTTP.MapRoutes(v1.Group("/activities"), activityHTTP.New(srv.l, actUC), mw)

	return nil
}

// thresholdCache returns the redis-backed setting cache, or nil when
// redis is not configured.
func (srv *HTTPServer) thresholdCache() thresholdRepo.Cache {
	if srv.redis == nil {
		return nil
	}
	return thresholdRedis.New(srv.l, srv.redis, srv.cacheTTL)
}
