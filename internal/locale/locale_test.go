package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFromAcceptLanguage(t *testing.T) {
	assert.Equal(t, language.Korean, FromAcceptLanguage(""))
	assert.Equal(t, language.Korean, FromAcceptLanguage("ko-KR,ko;q=0.9"))
	assert.Equal(t, language.English, FromAcceptLanguage("en-US,en;q=0.9"))
	// Unsupported languages fall back to the default.
	assert.Equal(t, language.Korean, FromAcceptLanguage("fr-FR"))
	// English wins when preferred over Korean.
	assert.Equal(t, language.English, FromAcceptLanguage("en;q=0.9,ko;q=0.5"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "not found", Message(language.English, CodeNotFound))
	assert.Equal(t, "찾을 수 없습니다", Message(language.Korean, CodeNotFound))
	// Unregistered tags resolve to the Korean default.
	assert.Equal(t, "찾을 수 없습니다", Message(language.Japanese, CodeNotFound))
	// Unknown codes come back verbatim.
	assert.Equal(t, "SOMETHING_ELSE", Message(language.English, "SOMETHING_ELSE"))
}
