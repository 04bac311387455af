package providerRepo

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

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.Collection("providers")
	repo := &MongoProviderRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("provider repo: %v", err))
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var provider models.Provider
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var provider models.Provider
	filter := bson.M{"email": email}
	if err := r.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		return nil, fmt.Errorf("failed to fetch provider with email %s: %w", email, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) ExistsByEmail(email string) (bool, error) {
	return r.exists(bson.M{"email": email})
}

func (r *MongoProviderRepo) ExistsByBarCouncilNumber(number string) (bool, error) {
	return r.exists(bson.M{"barCouncilNumber": number})
}

func (r *MongoProviderRepo) exists(filter bson.M) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check provider existence: %w", err)
	}
	return n > 0, nil
}

func (r *MongoProviderRepo) GetAll() ([]models.Provider, error) {
	return r.findMany(bson.M{}, nil)
}

func (r *MongoProviderRepo) GetVerified() ([]models.Provider, error) {
	return r.findMany(bson.M{"isVerified": true, "isActive": true}, nil)
}

func (r *MongoProviderRepo) GetPendingVerification() ([]models.Provider, error) {
	return r.findMany(bson.M{"isVerified": false, "isActive": true}, nil)
}

func (r *MongoProviderRepo) GetByCity(city string) ([]models.Provider, error) {
	filter := bson.M{
		"city":       bson.M{"$regex": city, "$options": "i"},
		"isVerified": true,
		"isActive":   true,
	}
	return r.findMany(filter, nil)
}

func (r *MongoProviderRepo) GetByState(state string) ([]models.Provider, error) {
	filter := bson.M{
		"state":      bson.M{"$regex": state, "$options": "i"},
		"isVerified": true,
		"isActive":   true,
	}
	return r.findMany(filter, nil)
}

func (r *MongoProviderRepo) GetByPracticeArea(area string) ([]models.Provider, error) {
	filter := bson.M{
		"practiceArea": bson.M{"$regex": area, "$options": "i"},
		"isVerified":   true,
		"isActive":     true,
	}
	return r.findMany(filter, nil)
}

func (r *MongoProviderRepo) GetTopRated(limit int) ([]models.Provider, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))
	return r.findMany(bson.M{"isVerified": true, "isActive": true}, opts)
}

func (r *MongoProviderRepo) GetMostExperienced(limit int) ([]models.Provider, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "experienceYears", Value: -1}}).
		SetLimit(int64(limit))
	return r.findMany(bson.M{"isVerified": true, "isActive": true}, opts)
}

func (r *MongoProviderRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count providers: %w", err)
	}
	return n, nil
}

func (r *MongoProviderRepo) Create(provider *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) Update(provider *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": provider.ID}
	update := bson.M{"$set": provider}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", provider.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s not found", provider.ID)
	}
	return nil
}

func (r *MongoProviderRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete provider with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("provider with id %s not found", id)
	}
	return nil
}

func (r *MongoProviderRepo) findMany(filter bson.M, opts *options.FindOptions) ([]models.Provider, error) {
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
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return providers, nil
}
