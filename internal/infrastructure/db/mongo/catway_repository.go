package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/port-russell/marina-api/internal/core/domain"
)

const catwaysCollection = "catways"

// CatwayRepository implements ports.CatwayRepository using MongoDB.
type CatwayRepository struct {
	coll *mongo.Collection
}

func NewCatwayRepository(db *mongo.Database) *CatwayRepository {
	return &CatwayRepository{coll: db.Collection(catwaysCollection)}
}

type mongoCatway struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CatwayNumber int                `bson:"catway_number"`
	Type         string             `bson:"type"`
	CatwayState  string             `bson:"catway_state"`
	BoatName     string             `bson:"boat_name"`
}

func (mc *mongoCatway) toDomain() *domain.Catway {
	return &domain.Catway{
		ID:           mc.ID.Hex(),
		CatwayNumber: mc.CatwayNumber,
		Type:         domain.CatwayType(mc.Type),
		CatwayState:  mc.CatwayState,
		BoatName:     mc.BoatName,
	}
}

func (r *CatwayRepository) Create(ctx context.Context, catway *domain.Catway) (*domain.Catway, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCatway{
		CatwayNumber: catway.CatwayNumber,
		Type:         string(catway.Type),
		CatwayState:  catway.CatwayState,
		BoatName:     catway.BoatName,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.DuplicateKeyError{Field: "catway_number"}
		}
		return nil, fmt.Errorf("insert catway: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CatwayRepository) FindByID(ctx context.Context, id string) (*domain.Catway, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCatway
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatwayNotFound
		}
		return nil, fmt.Errorf("find catway: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CatwayRepository) FindAll(ctx context.Context) ([]*domain.Catway, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "catway_number", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list catways: %w", err)
	}
	defer cur.Close(ctx)

	var catways []*domain.Catway
	for cur.Next(ctx) {
		var mc mongoCatway
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode catway: %w", err)
		}
		catways = append(catways, mc.toDomain())
	}
	return catways, cur.Err()
}

func (r *CatwayRepository) Update(ctx context.Context, catway *domain.Catway) (*domain.Catway, error) {
	oid, err := parseObjectID(catway.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"catway_state": catway.CatwayState,
		"boat_name":    catway.BoatName,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update catway: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCatwayNotFound
	}
	return catway, nil
}

func (r *CatwayRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete catway: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCatwayNotFound
	}
	return nil
}

// EnsureIndexes creates the unique catway number index backing the
// uniqueness invariant.
func (r *CatwayRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "catway_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
