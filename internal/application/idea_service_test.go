package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
	repo "github.com/darshanbachhav0/Entrepreneur/internal/domain/repository"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
)

// fakeIdeaRepo honors the atomic-update contract: AddComment and
// IncrementUpvotes mutate the stored record under a lock, never through a
// caller-visible read-modify-write.
type fakeIdeaRepo struct {
	mu    sync.Mutex
	ideas map[string]*entity.Idea
}

func newFakeIdeaRepo() *fakeIdeaRepo {
	return &fakeIdeaRepo{ideas: map[string]*entity.Idea{}}
}

func (f *fakeIdeaRepo) Create(_ context.Context, i *entity.Idea) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i.ID = primitive.NewObjectID()
	cp := *i
	cp.Comments = append([]entity.Comment{}, i.Comments...)
	f.ideas[i.ID.Hex()] = &cp
	return nil
}

func (f *fakeIdeaRepo) GetByID(_ context.Context, id string) (*entity.Idea, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i, ok := f.ideas[id]; ok {
		cp := *i
		cp.Comments = append([]entity.Comment{}, i.Comments...)
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeIdeaRepo) List(_ context.Context, domain string) ([]entity.Idea, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Idea{}
	for _, i := range f.ideas {
		if domain == "" || i.Domain == domain {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeIdeaRepo) ListByAuthor(_ context.Context, authorID string) ([]entity.Idea, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Idea{}
	for _, i := range f.ideas {
		if i.AuthorID.Hex() == authorID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeIdeaRepo) DistinctDomains(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, i := range f.ideas {
		if !seen[i.Domain] {
			seen[i.Domain] = true
			out = append(out, i.Domain)
		}
	}
	return out, nil
}

func (f *fakeIdeaRepo) AddComment(_ context.Context, ideaID string, c entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.ideas[ideaID]
	if !ok {
		return repo.ErrNotFound
	}
	i.Comments = append(i.Comments, c)
	return nil
}

func (f *fakeIdeaRepo) IncrementUpvotes(_ context.Context, ideaID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.ideas[ideaID]
	if !ok {
		return repo.ErrNotFound
	}
	i.Upvotes++
	return nil
}

func testIdentity() helpers.Identity {
	return helpers.Identity{
		ID:       primitive.NewObjectID().Hex(),
		Username: "ada",
		Email:    "ada@example.com",
	}
}

func TestSubmitSnapshotsAuthor(t *testing.T) {
	svc := NewIdeaService(newFakeIdeaRepo(), testLogger())
	id := testIdentity()

	idea, err := svc.Submit(context.Background(), id, "Seed library", "Neighborhood seed swap.", "agriculture")
	require.NoError(t, err)
	assert.Equal(t, id.ID, idea.AuthorID.Hex())
	assert.Equal(t, "ada", idea.AuthorName)
	assert.Equal(t, "ada@example.com", idea.AuthorEmail)
	assert.Equal(t, 0, idea.Upvotes)
	assert.Empty(t, idea.Comments)
}

func TestExploreFilter(t *testing.T) {
	svc := NewIdeaService(newFakeIdeaRepo(), testLogger())
	ctx := context.Background()
	id := testIdentity()

	_, err := svc.Submit(ctx, id, "Telehealth kiosk", "Walk-up consultations.", "health")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, id, "Seed library", "Seed swap.", "agriculture")
	require.NoError(t, err)

	ideas, domains, err := svc.Explore(ctx, "health")
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, "Telehealth kiosk", ideas[0].Title)
	assert.ElementsMatch(t, []string{"health", "agriculture"}, domains)

	all, _, err := svc.Explore(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExploreInvalidDomain(t *testing.T) {
	svc := NewIdeaService(newFakeIdeaRepo(), testLogger())
	ctx := context.Background()

	_, err := svc.Submit(ctx, testIdentity(), "Telehealth kiosk", "d", "health")
	require.NoError(t, err)

	// The filter choices are computed from the collection at request time.
	_, _, err = svc.Explore(ctx, "finance")
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestAddCommentUnknownIdea(t *testing.T) {
	svc := NewIdeaService(newFakeIdeaRepo(), testLogger())

	err := svc.AddComment(context.Background(), testIdentity(), primitive.NewObjectID().Hex(), "hello")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestConcurrentUpvotesNoLostUpdates(t *testing.T) {
	store := newFakeIdeaRepo()
	svc := NewIdeaService(store, testLogger())
	ctx := context.Background()

	idea, err := svc.Submit(ctx, testIdentity(), "Seed library", "d", "agriculture")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Upvote(ctx, idea.ID.Hex()))
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.Upvote(ctx, idea.ID.Hex()))
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, idea.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 8, got.Upvotes)
}

func TestConcurrentCommentsAllPreserved(t *testing.T) {
	store := newFakeIdeaRepo()
	svc := NewIdeaService(store, testLogger())
	ctx := context.Background()
	id := testIdentity()

	idea, err := svc.Submit(ctx, id, "Seed library", "d", "agriculture")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, text := range []string{"a", "b"} {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			assert.NoError(t, svc.AddComment(ctx, id, idea.ID.Hex(), text))
		}(text)
	}
	wg.Wait()

	got, err := svc.Get(ctx, idea.ID.Hex())
	require.NoError(t, err)
	require.Len(t, got.Comments, 2, "no comment may be dropped")
	texts := []string{got.Comments[0].Text, got.Comments[1].Text}
	assert.ElementsMatch(t, []string{"a", "b"}, texts)
}
