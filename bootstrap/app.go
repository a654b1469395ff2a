package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/fanstage/fanstage/mongo"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongo.EnsureIndexes(ctx, app.Mongo.Database(app.Env.DBName)); err != nil {
		log.Fatal("Index creation failed: ", err)
	}

	return *app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
