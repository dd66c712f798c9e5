// Package mongodb contains the concrete implementation of the persistence
// layer on top of the MongoDB document store.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"cityhub/config"
	"cityhub/internal/infra/persistence/model"
)

const connectTimeout = 10 * time.Second

// Params holds dependencies for the database handle, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New connects to the configured MongoDB deployment, verifies the connection,
// ensures the unique indexes and registers a shutdown hook.
func New(params Params) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(params.Ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	db := client.Database(params.Config.Mongo.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	params.Logger.Info("Connected to MongoDB",
		slog.String("database", params.Config.Mongo.Database),
	)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// ensureIndexes creates the unique-index backstops for the pre-insert
// uniqueness checks. The commerce indexes are partial over non-deleted
// documents: a soft-deleted commerce does not block reuse of its CIF or
// correo.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	notDeleted := bson.M{"deleted": false}

	comercios := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "CIF", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(notDeleted),
		},
		{
			Keys: bson.D{{Key: "correo", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(notDeleted),
		},
	}
	if _, err := db.Collection(model.CollectionComercios).Indexes().CreateMany(ctx, comercios); err != nil {
		return errors.Wrap(err, "failed to create comercios indexes")
	}

	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "correo", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(model.CollectionUsers).Indexes().CreateMany(ctx, users); err != nil {
		return errors.Wrap(err, "failed to create users indexes")
	}

	storage := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(model.CollectionStorage).Indexes().CreateMany(ctx, storage); err != nil {
		return errors.Wrap(err, "failed to create storage indexes")
	}

	return nil
}
