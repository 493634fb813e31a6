package service

import (
	"context"
	"fmt"
	"io"

	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// UploadService pushes image binaries through to the backend upload endpoint.
// The transport attaches the stored token itself on form calls.
type UploadService struct {
	backend ports.Backend
}

func NewUploadService(backend ports.Backend) *UploadService {
	return &UploadService{backend: backend}
}

// UploadImage sends one image as multipart form data under the "image" field.
func (s *UploadService) UploadImage(ctx context.Context, filename string, content io.Reader) (*ports.UploadedImage, error) {
	form := &ports.Form{
		Files: []ports.FormFile{{Field: "image", Name: filename, Content: content}},
	}

	env, err := s.backend.PostForm(ctx, "/equipment/test-upload", form)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("upload image: %s", env.Message)
	}

	var img ports.UploadedImage
	if err := decodeData(env.Data, "image", &img); err != nil {
		return nil, err
	}
	return &img, nil
}
