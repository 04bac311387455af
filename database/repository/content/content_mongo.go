package contentRepo

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

// MongoContentRepo implements ContentRepository using MongoDB.
type MongoContentRepo struct {
	coll *mongo.Collection
}

// NewMongoContentRepo creates a new instance of ContentRepository using MongoDB.
func NewMongoContentRepo() ContentRepository {
	coll := database.Collection("legal_content")
	repo := &MongoContentRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("content repo: %v", err))
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoContentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "viewCount", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) GetByID(id string) (*models.LegalContent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var content models.LegalContent
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&content); err != nil {
		return nil, fmt.Errorf("failed to fetch content with id %s: %w", id, err)
	}
	return &content, nil
}

func (r *MongoContentRepo) GetAll() ([]models.LegalContent, error) {
	return r.findMany(bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoContentRepo) GetPublished() ([]models.LegalContent, error) {
	filter := bson.M{"status": models.ContentPublished}
	return r.findMany(filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoContentRepo) GetPublishedByType(contentType models.ContentType) ([]models.LegalContent, error) {
	filter := bson.M{"status": models.ContentPublished, "contentType": contentType}
	return r.findMany(filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoContentRepo) GetPublishedByCategory(category string) ([]models.LegalContent, error) {
	filter := bson.M{
		"status":   models.ContentPublished,
		"category": bson.M{"$regex": "^" + category + "$", "$options": "i"},
	}
	return r.findMany(filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoContentRepo) GetFeatured() ([]models.LegalContent, error) {
	filter := bson.M{"status": models.ContentPublished, "isFeatured": true}
	return r.findMany(filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoContentRepo) GetPopular() ([]models.LegalContent, error) {
	filter := bson.M{"status": models.ContentPublished}
	return r.findMany(filter, options.Find().SetSort(bson.D{{Key: "viewCount", Value: -1}}))
}

func (r *MongoContentRepo) Search(keyword string) ([]models.LegalContent, error) {
	regex := bson.M{"$regex": keyword, "$options": "i"}
	filter := bson.M{
		"status": models.ContentPublished,
		"$or": []bson.M{
			{"title": regex},
			{"summary": regex},
			{"content": regex},
		},
	}
	return r.findMany(filter, nil)
}

func (r *MongoContentRepo) DistinctCategories() ([]string, error) {
	return r.distinct("category")
}

func (r *MongoContentRepo) DistinctTags() ([]string, error) {
	return r.distinct("tags")
}

func (r *MongoContentRepo) distinct(field string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	raw, err := r.coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s values: %w", field, err)
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	return values, nil
}

func (r *MongoContentRepo) Create(content *models.LegalContent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, content); err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) Update(content *models.LegalContent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": content.ID}
	update := bson.M{"$set": content}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update content with id %s: %w", content.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("content with id %s not found", content.ID)
	}
	return nil
}

func (r *MongoContentRepo) IncrementViewCount(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"viewCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment view count for content %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("content with id %s not found", id)
	}
	return nil
}

func (r *MongoContentRepo) SetStatus(id string, status models.ContentStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update content %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("content with id %s not found", id)
	}
	return nil
}

func (r *MongoContentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete content with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("content with id %s not found", id)
	}
	return nil
}

func (r *MongoContentRepo) findMany(filter bson.M, opts *options.FindOptions) ([]models.LegalContent, error) {
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
		return nil, fmt.Errorf("failed to retrieve content: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.LegalContent
	for cursor.Next(ctx) {
		var c models.LegalContent
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode content: %w", err)
		}
		entries = append(entries, c)
	}
	return entries, nil
}
