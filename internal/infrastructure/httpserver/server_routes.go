package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")
	api.POST("/auth/login", s.login)

	menu := api.Group("/menu")
	menu.GET("", s.getMenu)
	menu.GET("/categories", s.getCategories)
	menu.GET("/status", s.getMenuStatus)
	menu.POST("/reload", s.reloadMenu, s.middleware.Admin.RequireAdmin())

	qr := api.Group("/qr")
	qr.GET("", s.generateQR)
	qr.GET("/download", s.downloadQR)
	qr.GET("/link", s.qrLink)

	api.POST("/assets/install", s.installAssets, s.middleware.Admin.RequireAdmin())

	// Everything else is a shell asset request served through the offline cache.
	s.echo.GET("/*", s.serveAsset)
}
