package domain

const (
	CollectionUser = "users"
)
const (
	CollectionArtist = "artists"
)
const (
	CollectionArtistPost = "artist_posts"
)
const (
	CollectionTrack = "tracks"
)
const (
	CollectionPlaylist = "playlists"
)
const (
	CollectionInteraction = "interactions"
)
