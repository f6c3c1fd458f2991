package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"gorm.io/gorm"

	"github.com/soundcrate/go-music-server/albums"
	"github.com/soundcrate/go-music-server/auth"
	"github.com/soundcrate/go-music-server/internal/config"
	"github.com/soundcrate/go-music-server/playlists"
	"github.com/soundcrate/go-music-server/postgres"
	"github.com/soundcrate/go-music-server/server"
	"github.com/soundcrate/go-music-server/songs"
	"github.com/soundcrate/go-music-server/token"
	"github.com/soundcrate/go-music-server/users"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	db, err := postgres.Connect(c.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("postgres.Connect: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("postgres.Migrate: %w", err)
	}

	// `server migrate` runs the schema migration and exits. Useful for CI
	// or manual database setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		log.Printf("migration completed\n")
		return nil
	}

	handler, err := buildServer(c, db)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: handler}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func buildServer(c config.Config, db *gorm.DB) (*server.Server, error) {
	userService := users.NewService(postgres.NewUserRepo(db))

	tokenManager := token.New(
		postgres.NewRefreshTokenRepo(db),
		token.NewHMACSigner(c.GetAccessTokenKey()),
		token.NewHMACSigner(c.GetRefreshTokenKey()),
		token.WithTokenAges(c.GetAccessTokenAge(), c.GetRefreshTokenAge()),
	)

	authService, err := auth.NewService(userService, tokenManager)
	if err != nil {
		return nil, err
	}

	songService := songs.NewService(postgres.NewSongRepo(db))
	playlistService := playlists.NewService(
		playlists.Repos{
			Playlists:      postgres.NewPlaylistRepo(db),
			Memberships:    postgres.NewMembershipRepo(db),
			Collaborations: postgres.NewCollaborationRepo(db),
			Activities:     postgres.NewActivityRepo(db),
		},
		songService,
		userService,
	)

	return server.New(c, server.Services{
		Auth:      authService,
		Tokens:    tokenManager,
		Users:     userService,
		Albums:    albums.NewService(postgres.NewAlbumRepo(db)),
		Songs:     songService,
		Playlists: playlistService,
	})
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
