package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourly/internal/catalog"
)

const CollectionName = "bookings"

type bookingDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Phone        string             `bson:"phone"`
	Email        string             `bson:"email"`
	Age          string             `bson:"age"`
	Date         string             `bson:"date"`
	PackageName  string             `bson:"packageName"`
	Participants int                `bson:"participants"`
	AddOns       []string           `bson:"addOns"`
	TripTitle    string             `bson:"tripTitle"`
	Language     string             `bson:"language"`
	TotalPrice   float64            `bson:"totalPrice"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty"`
}

func toDocument(b *Booking) bookingDocument {
	addOns := []string(b.AddOns)
	if addOns == nil {
		addOns = []string{}
	}
	return bookingDocument{
		Name:         b.Name,
		Phone:        b.Phone,
		Email:        b.Email,
		Age:          b.Age,
		Date:         b.Date,
		PackageName:  b.PackageName,
		Participants: b.Participants,
		AddOns:       addOns,
		TripTitle:    b.TripTitle,
		Language:     string(b.Language),
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (d bookingDocument) toBooking() Booking {
	return Booking{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Phone:        d.Phone,
		Email:        d.Email,
		Age:          d.Age,
		Date:         d.Date,
		PackageName:  d.PackageName,
		Participants: d.Participants,
		AddOns:       d.AddOns,
		TripTitle:    d.TripTitle,
		Language:     catalog.Language(d.Language),
		TotalPrice:   d.TotalPrice,
		Status:       Status(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository stores bookings as documents keyed by ObjectID
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection(CollectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, booking *Booking) error {
	if booking.Status == "" {
		booking.Status = StatusPending
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	doc := toDocument(booking)
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	booking.ID = doc.ID.Hex()
	return nil
}

func (r *mongoRepository) List(ctx context.Context) ([]Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	bookings := make([]Booking, 0, len(docs))
	for _, doc := range docs {
		bookings = append(bookings, doc.toBooking())
	}
	return bookings, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	var doc bookingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	booking := doc.toBooking()
	return &booking, nil
}

func (r *mongoRepository) UpdateStatus(ctx context.Context, id string, status Status) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete booking: %w", err)
	}
	return result.DeletedCount > 0, nil
}
