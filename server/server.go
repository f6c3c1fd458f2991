package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/soundcrate/go-music-server/albums"
	"github.com/soundcrate/go-music-server/auth"
	"github.com/soundcrate/go-music-server/internal/config"
	"github.com/soundcrate/go-music-server/playlists"
	"github.com/soundcrate/go-music-server/songs"
	"github.com/soundcrate/go-music-server/token"
	"github.com/soundcrate/go-music-server/users"
)

// Services holds every service the HTTP layer routes into.
type Services struct {
	Auth      *auth.Service
	Tokens    *token.Manager
	Users     *users.Service
	Albums    *albums.Service
	Songs     *songs.Service
	Playlists *playlists.Service
}

type Server struct {
	env      string // Environment (e.g., "DEV", "production")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	services Services
}

func New(config config.Config, services Services) (*Server, error) {
	if services.Auth == nil || services.Tokens == nil || services.Users == nil {
		return nil, fmt.Errorf("[server.New] auth, token and user services are required")
	}
	if services.Albums == nil || services.Songs == nil || services.Playlists == nil {
		return nil, fmt.Errorf("[server.New] catalog and playlist services are required")
	}

	s := &Server{
		mux:      http.NewServeMux(),
		config:   config,
		services: services,
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
