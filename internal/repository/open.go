package repository

import (
	"context"
	"database/sql"
	"fmt"

	"recipes_api/internal/config"
	"recipes_api/internal/repository/db"

	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepository wires the SQLite-backed stores.
func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Auth:    NewUserRepository(conn),
		Recipes: NewRecipeSQLite(conn),
	}
}

// NewMongoRepository wires the MongoDB-backed stores.
func NewMongoRepository(mdb *mongo.Database) *Repository {
	return &Repository{
		Auth:    NewUserMongo(mdb),
		Recipes: NewRecipeMongo(mdb),
	}
}

// Open connects to the backend selected by cfg.Driver. The returned func
// releases the connection.
func Open(ctx context.Context, cfg config.DB) (*Repository, func(context.Context) error, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, mdb, err := db.InitMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		return NewMongoRepository(mdb), client.Disconnect, nil

	case config.DriverSQLite, "":
		path := cfg.Path
		if path == "" {
			path = "recipes.db"
		}
		conn, err := db.InitSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func(context.Context) error { return conn.Close() }
		return NewRepository(conn), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
	}
}
