// internal/app/store/topics/topicstore.go
package topicstore

import (
	"context"
	"fmt"

	"github.com/dalemusser/learnhub/internal/app/content"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TopicsCollection   = "topics"
	ContentsCollection = "topic_contents"
)

// Store provides access to the topics and topic_contents collections.
// Topics carry a position field so the catalog order survives a round trip.
type Store struct {
	topics   *mongo.Collection
	contents *mongo.Collection
}

// New creates a new topic store.
func New(db *mongo.Database) *Store {
	return &Store{
		topics:   db.Collection(TopicsCollection),
		contents: db.Collection(ContentsCollection),
	}
}

// Load reads every topic in catalog order and every content record.
func (s *Store) Load(ctx context.Context) (content.Bundle, error) {
	var b content.Bundle

	cur, err := s.topics.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return b, fmt.Errorf("find topics: %w", err)
	}
	if err := cur.All(ctx, &b.Topics); err != nil {
		return b, fmt.Errorf("decode topics: %w", err)
	}

	cur, err = s.contents.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return b, fmt.Errorf("find topic contents: %w", err)
	}
	if err := cur.All(ctx, &b.Contents); err != nil {
		return b, fmt.Errorf("decode topic contents: %w", err)
	}
	return b, nil
}

// Count returns the number of topics and content records stored.
func (s *Store) Count(ctx context.Context) (topics, contents int64, err error) {
	if topics, err = s.topics.CountDocuments(ctx, bson.D{}); err != nil {
		return 0, 0, err
	}
	if contents, err = s.contents.CountDocuments(ctx, bson.D{}); err != nil {
		return 0, 0, err
	}
	return topics, contents, nil
}

// GetContent returns one content record by topic id.
// Returns mongo.ErrNoDocuments if it does not exist.
func (s *Store) GetContent(ctx context.Context, id string) (models.TopicContent, error) {
	var tc models.TopicContent
	err := s.contents.FindOne(ctx, bson.M{"_id": id}).Decode(&tc)
	return tc, err
}

// ReplaceAll swaps the stored catalog for b. Positions are taken from the
// order of b.Topics.
func (s *Store) ReplaceAll(ctx context.Context, b content.Bundle) error {
	if _, err := s.topics.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear topics: %w", err)
	}
	if _, err := s.contents.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear topic contents: %w", err)
	}

	if len(b.Topics) > 0 {
		docs := make([]any, len(b.Topics))
		for i, t := range b.Topics {
			t.Position = i
			docs[i] = t
		}
		if _, err := s.topics.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert topics: %w", err)
		}
	}
	if len(b.Contents) > 0 {
		docs := make([]any, len(b.Contents))
		for i, tc := range b.Contents {
			docs[i] = tc
		}
		if _, err := s.contents.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert topic contents: %w", err)
		}
	}
	return nil
}
