package controller

import (
	"errors"
	"net/http"

	"github.com/fanstage/fanstage/domain"
	"github.com/fanstage/fanstage/internal/locale"
	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse writes a uniform error envelope: {"error": {code, message}}.
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{"error": errorBody{Code: code, Message: message}})
}

// SuccessResponse wraps data under the given key, with a count for list
// payloads (pass a negative count to omit it).
func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	body := gin.H{key: data}
	if count >= 0 {
		body["count"] = count
	}
	ctx.JSON(http.StatusOK, body)
}

// domainStatus maps domain sentinel errors onto the HTTP taxonomy.
var domainStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, http.StatusNotFound, locale.CodeNotFound},
	{domain.ErrForbidden, http.StatusForbidden, locale.CodeForbidden},
	{domain.ErrUnauthorized, http.StatusUnauthorized, locale.CodeUnauthorized},
	{domain.ErrEmailTaken, http.StatusConflict, locale.CodeEmailTaken},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, locale.CodeInvalidCredentials},
	{domain.ErrNotArtistAccount, http.StatusForbidden, locale.CodeNotArtistAccount},
	{domain.ErrArtistExists, http.StatusConflict, locale.CodeArtistExists},
	{domain.ErrNotArtist, http.StatusForbidden, locale.CodeNotArtist},
	{domain.ErrUnsupportedAudio, http.StatusUnsupportedMediaType, locale.CodeUnsupportedAudio},
}

// DomainErrorResponse resolves a usecase error to its status and localized
// message. Unrecognized errors become opaque 500s.
func DomainErrorResponse(ctx *gin.Context, err error) {
	tag := locale.FromAcceptLanguage(ctx.GetHeader("Accept-Language"))
	for _, m := range domainStatus {
		if errors.Is(err, m.err) {
			ErrorResponse(ctx, m.status, m.code, locale.Message(tag, m.code))
			return
		}
	}
	ErrorResponse(ctx, http.StatusInternalServerError, locale.CodeServerError, locale.Message(tag, locale.CodeServerError))
}

// BadRequestResponse reports a binding or parameter failure.
func BadRequestResponse(ctx *gin.Context) {
	tag := locale.FromAcceptLanguage(ctx.GetHeader("Accept-Language"))
	ErrorResponse(ctx, http.StatusBadRequest, locale.CodeInvalidRequest, locale.Message(tag, locale.CodeInvalidRequest))
}
