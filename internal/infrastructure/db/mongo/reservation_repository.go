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

const reservationsCollection = "reservations"

// ReservationRepository implements ports.ReservationRepository using MongoDB.
type ReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{coll: db.Collection(reservationsCollection)}
}

type mongoReservation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CatwayNumber int                `bson:"catway_number"`
	ClientName   string             `bson:"client_name"`
	BoatName     string             `bson:"boat_name"`
	CheckIn      time.Time          `bson:"check_in"`
	CheckOut     time.Time          `bson:"check_out"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (mr *mongoReservation) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:           mr.ID.Hex(),
		CatwayNumber: mr.CatwayNumber,
		ClientName:   mr.ClientName,
		BoatName:     mr.BoatName,
		CheckIn:      mr.CheckIn,
		CheckOut:     mr.CheckOut,
		CreatedAt:    mr.CreatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReservation{
		CatwayNumber: reservation.CatwayNumber,
		ClientName:   reservation.ClientName,
		BoatName:     reservation.BoatName,
		CheckIn:      reservation.CheckIn.UTC(),
		CheckOut:     reservation.CheckOut.UTC(),
		CreatedAt:    reservation.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoReservation
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *ReservationRepository) FindByCatwayNumber(ctx context.Context, catwayNumber int) ([]*domain.Reservation, error) {
	return r.find(ctx, bson.M{"catway_number": catwayNumber})
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*domain.Reservation, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReservationRepository) find(ctx context.Context, filter bson.M) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cur.Close(ctx)

	var reservations []*domain.Reservation
	for cur.Next(ctx) {
		var mr mongoReservation
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode reservation: %w", err)
		}
		reservations = append(reservations, mr.toDomain())
	}
	return reservations, cur.Err()
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup index for catway-scoped listings.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "catway_number", Value: 1}},
	})
	return err
}
