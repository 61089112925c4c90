package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
	repo "github.com/darshanbachhav0/Entrepreneur/internal/domain/repository"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
)

// Uploader is the blob storage collaborator. It stores an object and hands
// back a retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// allowedExtensions is the upload acceptance allow-list: image and video
// types only. Anything else is skipped silently.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".mp4":  true,
	".avi":  true,
}

// PostService creates and lists short text/media updates.
type PostService struct {
	Posts    repo.PostRepository
	Uploader Uploader
	Logger   *logrus.Logger
}

func NewPostService(posts repo.PostRepository, uploader Uploader, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Uploader: uploader, Logger: logger}
}

// MediaUpload describes an optional attachment on a new post.
type MediaUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Create stores a post authored by id. A media attachment with a disallowed
// extension does not fail the request: the post is created without a file
// reference.
func (s *PostService) Create(ctx context.Context, id helpers.Identity, content string, media *MediaUpload) (*entity.Post, error) {
	authorID, err := primitive.ObjectIDFromHex(id.ID)
	if err != nil {
		return nil, err
	}
	p := &entity.Post{Content: content, AuthorID: authorID, AuthorName: id.Username}

	if media != nil && s.Uploader != nil {
		ext := strings.ToLower(filepath.Ext(media.Filename))
		if allowedExtensions[ext] {
			objectPath := "uploads/" + uuid.NewString() + ext
			url, err := s.Uploader.Upload(ctx, objectPath, media.ContentType, media.Reader)
			if err != nil {
				s.Logger.WithError(err).WithField("object", objectPath).Error("media upload failed")
				return nil, err
			}
			p.FileURL = url
		} else {
			s.Logger.WithField("filename", media.Filename).Debug("attachment extension not allowed, skipping")
		}
	}

	if err := s.Posts.Create(ctx, p); err != nil {
		s.Logger.WithError(err).Error("create post failed")
		return nil, err
	}
	return p, nil
}

func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}
