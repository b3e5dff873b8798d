package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/allersafe/backend/config"
)

// ImageService stores meal images in S3 and hands back public URLs.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates an ImageService. A nil s3Config disables uploads.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Enabled reports whether image storage is configured.
func (s *ImageService) Enabled() bool {
	return s != nil && s.s3Config != nil
}

// UploadMealImage stores the image under a meal-scoped key and returns the
// public URL.
func (s *ImageService) UploadMealImage(ctx context.Context, mealID string, body io.Reader, contentType string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("image storage is not configured")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("meals/%s/%s", mealID, uuid.NewString())
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] Uploaded meal image: %s", publicURL)
	return publicURL, nil
}
