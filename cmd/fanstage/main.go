package main

import (
	"net/http"
	"time"

	"github.com/fanstage/fanstage/api/route"
	"github.com/fanstage/fanstage/bootstrap"
	"github.com/gin-gonic/gin"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.DBName)
	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded audio is served straight from disk.
	engine.Static("/uploads", env.UploadDir)

	route.Setup(env, timeout, db, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		panic(err)
	}
}
