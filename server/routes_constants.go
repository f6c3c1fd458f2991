package server

const (
	RouteUsers           = "/users"
	RouteAuthentications = "/authentications"

	RouteAlbums  = "/albums"
	RouteAlbumID = "/albums/{id}"

	RouteSongs  = "/songs"
	RouteSongID = "/songs/{id}"

	RoutePlaylists          = "/playlists"
	RoutePlaylistID         = "/playlists/{id}"
	RoutePlaylistSongs      = "/playlists/{id}/songs"
	RoutePlaylistActivities = "/playlists/{id}/activities"

	RouteCollaborations = "/collaborations"
)
