package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
	repo "github.com/darshanbachhav0/Entrepreneur/internal/domain/repository"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
)

// IdeaService implements the idea workflows. Author fields are snapshotted
// from the identity at creation time and never re-resolved.
type IdeaService struct {
	Ideas  repo.IdeaRepository
	Logger *logrus.Logger
}

func NewIdeaService(ideas repo.IdeaRepository, logger *logrus.Logger) *IdeaService {
	return &IdeaService{Ideas: ideas, Logger: logger}
}

func (s *IdeaService) Submit(ctx context.Context, id helpers.Identity, title, description, domain string) (*entity.Idea, error) {
	authorID, err := primitive.ObjectIDFromHex(id.ID)
	if err != nil {
		return nil, err
	}
	idea := &entity.Idea{
		Title:       title,
		Description: description,
		Domain:      domain,
		AuthorID:    authorID,
		AuthorName:  id.Username,
		AuthorEmail: id.Email,
		Upvotes:     0,
		Comments:    []entity.Comment{},
	}
	if err := s.Ideas.Create(ctx, idea); err != nil {
		s.Logger.WithError(err).Error("create idea failed")
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"idea_id": idea.ID.Hex(), "domain": domain}).Info("idea submitted")
	return idea, nil
}

// Explore returns ideas plus the distinct domain values offered as filter
// choices. A non-empty filter must name one of those values; a filter that
// does not fails with ErrInvalidDomain and no ideas.
func (s *IdeaService) Explore(ctx context.Context, domainFilter string) ([]entity.Idea, []string, error) {
	domains, err := s.Ideas.DistinctDomains(ctx)
	if err != nil {
		return nil, nil, err
	}
	if domainFilter != "" {
		valid := false
		for _, d := range domains {
			if d == domainFilter {
				valid = true
				break
			}
		}
		if !valid {
			return nil, domains, ErrInvalidDomain
		}
	}
	ideas, err := s.Ideas.List(ctx, domainFilter)
	if err != nil {
		return nil, nil, err
	}
	return ideas, domains, nil
}

func (s *IdeaService) Get(ctx context.Context, ideaID string) (*entity.Idea, error) {
	return s.Ideas.GetByID(ctx, ideaID)
}

func (s *IdeaService) ListByAuthor(ctx context.Context, id helpers.Identity) ([]entity.Idea, error) {
	return s.Ideas.ListByAuthor(ctx, id.ID)
}

// AddComment appends a comment snapshot to the idea. The append is a single
// atomic store operation per idea.
func (s *IdeaService) AddComment(ctx context.Context, id helpers.Identity, ideaID, text string) error {
	authorID, err := primitive.ObjectIDFromHex(id.ID)
	if err != nil {
		return err
	}
	c := entity.Comment{AuthorID: authorID, AuthorName: id.Username, Text: text}
	if err := s.Ideas.AddComment(ctx, ideaID, c); err != nil {
		return err
	}
	s.Logger.WithField("idea_id", ideaID).Debug("comment added")
	return nil
}

// Upvote increments the counter by exactly one. There is no per-user dedup;
// repeated upvotes from the same user all count. Known gap, kept.
func (s *IdeaService) Upvote(ctx context.Context, ideaID string) error {
	return s.Ideas.IncrementUpvotes(ctx, ideaID)
}
