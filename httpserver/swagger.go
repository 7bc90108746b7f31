package httpserver

import (
	_ "moviecatalog/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

//go:generate swag init --dir ../ --generalInfo cmd/httpserver/main.go --output ../docs

// RegisterSwaggerRoutes serves the swagger UI and the generated API document.
func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.DocExpansion("list"),
		echoSwagger.DeepLinking(true),
	))
}
