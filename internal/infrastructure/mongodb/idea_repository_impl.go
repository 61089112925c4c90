package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
	"github.com/darshanbachhav0/Entrepreneur/internal/domain/repository"
)

const ideasCollection = "ideas"

type IdeaRepository struct {
	coll *mongo.Collection
}

func NewIdeaRepository(db *mongo.Database) *IdeaRepository {
	return &IdeaRepository{coll: db.Collection(ideasCollection)}
}

func (r *IdeaRepository) Create(ctx context.Context, i *entity.Idea) error {
	if i.Comments == nil {
		i.Comments = []entity.Comment{}
	}
	res, err := r.coll.InsertOne(ctx, i)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		i.ID = oid
	}
	return nil
}

func (r *IdeaRepository) GetByID(ctx context.Context, id string) (*entity.Idea, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	i := &entity.Idea{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(i); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

func (r *IdeaRepository) List(ctx context.Context, domain string) ([]entity.Idea, error) {
	filter := bson.M{}
	if domain != "" {
		filter["domain"] = domain
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	ideas := []entity.Idea{}
	if err := cur.All(ctx, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *IdeaRepository) ListByAuthor(ctx context.Context, authorID string) ([]entity.Idea, error) {
	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	cur, err := r.coll.Find(ctx, bson.M{"author_id": oid})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	ideas := []entity.Idea{}
	if err := cur.All(ctx, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *IdeaRepository) DistinctDomains(ctx context.Context) ([]string, error) {
	vals, err := r.coll.Distinct(ctx, "domain", bson.M{})
	if err != nil {
		return nil, err
	}
	domains := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			domains = append(domains, s)
		}
	}
	return domains, nil
}

// AddComment appends a comment with a single $push so that concurrent
// comments on the same idea never overwrite each other.
func (r *IdeaRepository) AddComment(ctx context.Context, ideaID string, c entity.Comment) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"comments": c}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// IncrementUpvotes bumps the counter with a single $inc; no lost updates
// under concurrent upvoting.
func (r *IdeaRepository) IncrementUpvotes(ctx context.Context, ideaID string) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"upvotes": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.IdeaRepository = (*IdeaRepository)(nil)
