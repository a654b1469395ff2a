// Package locale localizes user-facing API messages. The product launched in
// Korean; Korean stays the default when negotiation fails.
package locale

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.Korean, // default
	language.English,
}

var matcher = language.NewMatcher(supported)

const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeNotArtistAccount   = "NOT_ARTIST_ACCOUNT"
	CodeArtistExists       = "ARTIST_EXISTS"
	CodeNotArtist          = "NOT_ARTIST"
	CodeUnsupportedAudio   = "UNSUPPORTED_AUDIO"
	CodeServerError        = "SERVER_ERROR"
	CodePlaylistDeleted    = "PLAYLIST_DELETED"
)

var messages = map[string]map[language.Tag]string{
	CodeInvalidRequest: {
		language.Korean:  "잘못된 요청입니다",
		language.English: "invalid request",
	},
	CodeEmailTaken: {
		language.Korean:  "이미 존재하는 이메일입니다",
		language.English: "email is already registered",
	},
	CodeInvalidCredentials: {
		language.Korean:  "이메일 또는 비밀번호가 잘못되었습니다",
		language.English: "invalid email or password",
	},
	CodeUnauthorized: {
		language.Korean:  "로그인이 필요합니다",
		language.English: "authentication required",
	},
	CodeForbidden: {
		language.Korean:  "권한이 없습니다",
		language.English: "you do not have permission",
	},
	CodeNotFound: {
		language.Korean:  "찾을 수 없습니다",
		language.English: "not found",
	},
	CodeNotArtistAccount: {
		language.Korean:  "아티스트 계정이 아닙니다",
		language.English: "not an artist account",
	},
	CodeArtistExists: {
		language.Korean:  "이미 아티스트 프로필이 있습니다",
		language.English: "artist profile already exists",
	},
	CodeNotArtist: {
		language.Korean:  "아티스트만 곡을 업로드할 수 있습니다",
		language.English: "only artists can upload tracks",
	},
	CodeUnsupportedAudio: {
		language.Korean:  "지원하지 않는 오디오 형식입니다",
		language.English: "unsupported audio format",
	},
	CodeServerError: {
		language.Korean:  "서버 오류가 발생했습니다",
		language.English: "internal server error",
	},
	CodePlaylistDeleted: {
		language.Korean:  "플레이리스트가 삭제되었습니다",
		language.English: "playlist deleted",
	},
}

// FromAcceptLanguage negotiates a supported tag from the raw header value.
func FromAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// Message resolves a code for the given tag, falling back to Korean, then to
// the code itself for anything unregistered.
func Message(tag language.Tag, code string) string {
	byTag, ok := messages[code]
	if !ok {
		return code
	}
	if msg, ok := byTag[tag]; ok {
		return msg
	}
	return byTag[language.Korean]
}
