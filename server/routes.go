package server

func (s *Server) initRoutes() {
	// Registration and token lifecycle
	s.RegisterRouteHandler("POST "+RouteUsers, ChainMiddleware(s.PostUserHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthentications, ChainMiddleware(s.PostAuthenticationHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteAuthentications, ChainMiddleware(s.PutAuthenticationHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAuthentications, ChainMiddleware(s.DeleteAuthenticationHandler(), s.APIMiddleware()...))

	// Public catalog
	s.RegisterRouteHandler("POST "+RouteAlbums, ChainMiddleware(s.PostAlbumHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAlbumID, ChainMiddleware(s.GetAlbumHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteAlbumID, ChainMiddleware(s.PutAlbumHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAlbumID, ChainMiddleware(s.DeleteAlbumHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteSongs, ChainMiddleware(s.PostSongHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSongs, ChainMiddleware(s.GetSongsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSongID, ChainMiddleware(s.GetSongHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteSongID, ChainMiddleware(s.PutSongHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteSongID, ChainMiddleware(s.DeleteSongHandler(), s.APIMiddleware()...))

	// Playlist routes require a valid access token
	s.RegisterRouteHandler("POST "+RoutePlaylists, ChainMiddleware(s.PostPlaylistHandler(), s.AuthAPIMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePlaylists, ChainMiddleware(s.GetPlaylistsHandler(), s.AuthAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RoutePlaylistID, ChainMiddleware(s.DeletePlaylistHandler(), s.AuthAPIMiddleware()...))

	s.RegisterRouteHandler("POST "+RoutePlaylistSongs, ChainMiddleware(s.PostPlaylistSongHandler(), s.AuthAPIMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePlaylistSongs, ChainMiddleware(s.GetPlaylistSongsHandler(), s.AuthAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RoutePlaylistSongs, ChainMiddleware(s.DeletePlaylistSongHandler(), s.AuthAPIMiddleware()...))

	s.RegisterRouteHandler("GET "+RoutePlaylistActivities, ChainMiddleware(s.GetPlaylistActivitiesHandler(), s.AuthAPIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteCollaborations, ChainMiddleware(s.PostCollaborationHandler(), s.AuthAPIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteCollaborations, ChainMiddleware(s.DeleteCollaborationHandler(), s.AuthAPIMiddleware()...))
}
