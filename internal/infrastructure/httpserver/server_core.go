package httpserver

import (
	"time"

	"github.com/antonistheo/qrmenu/internal/core/ports"
	customMiddleware "github.com/antonistheo/qrmenu/internal/infrastructure/httpserver/middleware"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type ServerDeps struct {
	MenuService    ports.MenuService
	QRService      ports.QRService
	AssetService   ports.AssetService
	AuthService    ports.AdminAuthService
	HealthCheckers []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	menuSvc        ports.MenuService
	qrSvc          ports.QRService
	assetSvc       ports.AssetService
	authSvc        ports.AdminAuthService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		menuSvc:        deps.MenuService,
		qrSvc:          deps.QRService,
		assetSvc:       deps.AssetService,
		authSvc:        deps.AuthService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
