package providerRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// UpdateSet patches selected provider fields.
func (r *MongoProviderRepo) UpdateSet(id string, fields map[string]interface{}) error {
	return r.updateWithOperator(id, "$set", bson.M(fields))
}

// IncrementCompletedSessions bumps the completed-session counter by one.
// Concurrent completions for the same provider apply commutatively because
// the increment happens server-side.
func (r *MongoProviderRepo) IncrementCompletedSessions(id string) error {
	return r.updateWithOperator(id, "$inc", bson.M{"completedSessions": 1})
}

// AddEarnings adds the booking's provider share to the cumulative earnings.
func (r *MongoProviderRepo) AddEarnings(id string, amount float64) error {
	return r.updateWithOperator(id, "$inc", bson.M{"totalEarnings": amount})
}

func (r *MongoProviderRepo) updateWithOperator(id, operator string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{operator: updateDoc}
	filter := bson.M{"id": id}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s not found", id)
	}
	return nil
}
