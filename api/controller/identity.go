package controller

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authUserID reads the id set by the auth middleware. The second return is
// false when the request is anonymous or the stored id is malformed.
func authUserID(ctx *gin.Context) (primitive.ObjectID, bool) {
	hex := ctx.GetString("x-user-id")
	if hex == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// viewerID is authUserID for optional-auth endpoints: anonymous viewers get
// the zero ObjectID.
func viewerID(ctx *gin.Context) primitive.ObjectID {
	id, _ := authUserID(ctx)
	return id
}

// pathID parses an ObjectID path parameter.
func pathID(ctx *gin.Context, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(ctx.Param(name))
}
