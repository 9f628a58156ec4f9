// Package uploads stores product images on Cloudinary so merchants can embed
// stable CDN URLs instead of hotlinking.
package uploads

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrNotConfigured indicates CLOUDINARY_URL is unset.
var ErrNotConfigured = errors.New("uploads: CLOUDINARY_URL not configured")

// Image is a stored upload.
type Image struct {
	URL      string
	PublicID string
}

// Store uploads and removes product images.
type Store struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewFromEnv builds a Store from CLOUDINARY_URL. The optional
// CARDGEN_UPLOAD_FOLDER groups uploads in the media library.
func NewFromEnv() (*Store, error) {
	cloudURL := os.Getenv("CLOUDINARY_URL")
	if cloudURL == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, err
	}
	return &Store{cld: cld, folder: os.Getenv("CARDGEN_UPLOAD_FOLDER")}, nil
}

// Put uploads the file and returns its CDN location.
func (s *Store) Put(ctx context.Context, file io.Reader) (Image, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return Image{}, err
	}
	return Image{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Remove deletes a previously uploaded image.
func (s *Store) Remove(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
