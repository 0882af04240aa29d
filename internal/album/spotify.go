package album

import "regexp"

var (
	spotifyAlbumURLRe = regexp.MustCompile(`^https://open\.spotify\.com/album/[a-zA-Z0-9]{22}(\?.*)?$`)
	spotifyAlbumIDRe  = regexp.MustCompile(`/album/([a-zA-Z0-9]{22})`)
)

// IsValidSpotifyAlbumURL reports whether url is a Spotify album link such as
// https://open.spotify.com/album/{id} with an optional query string.
func IsValidSpotifyAlbumURL(url string) bool {
	return spotifyAlbumURLRe.MatchString(url)
}

// SpotifyAlbumID extracts the 22-character album id from a Spotify URL.
// Returns "" if none is found.
func SpotifyAlbumID(url string) string {
	m := spotifyAlbumIDRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
