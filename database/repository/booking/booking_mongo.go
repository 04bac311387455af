package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"legalsahyog/database"
	"legalsahyog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("booking repo: %v", err))
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var booking models.Booking
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.findMany(bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	return r.findMany(bson.M{"userId": userID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoBookingRepo) GetByProvider(providerID string) ([]models.Booking, error) {
	return r.findMany(bson.M{"providerId": providerID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoBookingRepo) GetByUserAndStatus(userID string, status models.BookingStatus) ([]models.Booking, error) {
	return r.findMany(bson.M{"userId": userID, "status": status}, nil)
}

func (r *MongoBookingRepo) GetByProviderAndStatus(providerID string, status models.BookingStatus) ([]models.Booking, error) {
	return r.findMany(bson.M{"providerId": providerID, "status": status}, nil)
}

func (r *MongoBookingRepo) GetActiveByProviderAndDate(providerID, date string) ([]models.Booking, error) {
	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"isActive":   true,
	}
	return r.findMany(filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

func (r *MongoBookingRepo) GetActiveByProviderDateStart(providerID, date, startTime string) ([]models.Booking, error) {
	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"startTime":  startTime,
		"isActive":   true,
	}
	return r.findMany(filter, nil)
}

func (r *MongoBookingRepo) GetRecent(limit int) ([]models.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.findMany(bson.M{}, opts)
}

func (r *MongoBookingRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

// Create inserts a booking document. The partial unique index over
// (providerId, date, startTime) for active bookings makes the conflict check
// and the insert a single serialized check-and-insert at the storage layer.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc, err := toDocument(booking)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateActiveSlot
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) UpdateStatus(id string, status models.BookingStatus, meetingLink string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"status":   status,
		"isActive": status == models.BookingPending || status == models.BookingConfirmed,
	}
	if meetingLink != "" {
		set["meetingLink"] = meetingLink
	}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

func (r *MongoBookingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

func (r *MongoBookingRepo) findMany(filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// toDocument marshals the booking together with the denormalized isActive
// flag the partial unique index is built on.
func toDocument(booking *models.Booking) (bson.M, error) {
	raw, err := bson.Marshal(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking document: %w", err)
	}
	doc["isActive"] = booking.IsActive()
	return doc, nil
}
