// Package mongostore implements the Reader port on top of MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/graziososalvare/shelterboard/internal/outcomes"
)

const (
	connectTimeout = 10 * time.Second
	queryTimeout   = 30 * time.Second
	insertTimeout  = 30 * time.Second
)

// Config carries the connection settings for the outcomes collection.
// Username and Password are optional; servers without auth ignore them.
type Config struct {
	URI        string
	Database   string
	Collection string
	Username   string
	Password   string
}

// Store reads and seeds animal-outcome documents.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	logger *zap.Logger
}

// Connect establishes a client by trying a fixed ordered list of
// credential shapes: no credentials, username only, then username plus
// password. A shape that fails to connect or ping is skipped. If every
// shape fails, one last bare connection attempt is made and its error
// is returned to the caller, which should treat it as fatal.
func Connect(ctx context.Context, cfg Config, logger *zap.Logger) (*Store, error) {
	var client *mongo.Client
	for _, shape := range credentialShapes(cfg) {
		c, err := tryConnect(ctx, shape.opts)
		if err != nil {
			logger.Debug("credential shape rejected",
				zap.String("shape", shape.name),
				zap.Error(err))
			continue
		}
		client = c
		logger.Info("connected to mongodb",
			zap.String("shape", shape.name),
			zap.String("database", cfg.Database),
			zap.String("collection", cfg.Collection))
		break
	}

	if client == nil {
		c, err := tryConnect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", cfg.URI, err)
		}
		client = c
	}

	return &Store{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		logger: logger,
	}, nil
}

type credentialShape struct {
	name string
	opts *options.ClientOptions
}

func credentialShapes(cfg Config) []credentialShape {
	shapes := []credentialShape{
		{name: "none", opts: options.Client().ApplyURI(cfg.URI)},
	}
	if cfg.Username != "" {
		shapes = append(shapes, credentialShape{
			name: "username",
			opts: options.Client().ApplyURI(cfg.URI).SetAuth(options.Credential{
				Username: cfg.Username,
			}),
		})
		shapes = append(shapes, credentialShape{
			name: "username+password",
			opts: options.Client().ApplyURI(cfg.URI).SetAuth(options.Credential{
				Username: cfg.Username,
				Password: cfg.Password,
			}),
		})
	}
	return shapes
}

func tryConnect(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}

// Read evaluates the filter against the collection.
func (s *Store) Read(ctx context.Context, f outcomes.Filter) ([]outcomes.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := s.coll.Find(ctx, toBSON(f))
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cursor.Close(ctx)

	var records []outcomes.Record
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		records = append(records, fromBSON(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	return records, nil
}

// Insert writes records in batches and returns the number inserted.
func (s *Store) Insert(ctx context.Context, records []outcomes.Record) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	docs := make([]any, len(records))
	for i, r := range records {
		docs[i] = bson.M(r)
	}
	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert batch: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// Close disconnects the underlying client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// toBSON translates a Filter into a MongoDB query document: AnyOf
// becomes $in, Contains a case-insensitive $regex, Equals a plain
// equality match.
func toBSON(f outcomes.Filter) bson.M {
	q := bson.M{}
	for field, cond := range f {
		switch {
		case len(cond.AnyOf) > 0:
			q[field] = bson.M{"$in": cond.AnyOf}
		case cond.Contains != "":
			q[field] = bson.M{"$regex": cond.Contains, "$options": "i"}
		default:
			q[field] = cond.Equals
		}
	}
	return q
}

// fromBSON converts a decoded document, stringifying ObjectID _id
// values so the table layer never sees driver types.
func fromBSON(doc bson.M) outcomes.Record {
	r := make(outcomes.Record, len(doc))
	for k, v := range doc {
		r[k] = v
	}
	if id, ok := r["_id"].(primitive.ObjectID); ok {
		r["_id"] = id.Hex()
	}
	return r
}
