// Package objectstore issues time-limited direct-upload credentials for
// user avatars. The binary content never passes through this service: the
// client PUTs straight to the object store using a presigned URL and the
// resulting object is served over the bucket's public URL.
package objectstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kmori/techtrends/internal/config"
	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/models"
)

// allowedContentTypes maps the accepted avatar MIME types to the file
// extension used in the object key. jpeg is normalized to jpg.
var allowedContentTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadURLIssuer grants a direct-upload credential for one user's avatar.
// Implementations must reject content types outside the allowed image set
// with [ErrUnsupportedContentType].
type UploadURLIssuer interface {
	IssueAvatarUploadURL(ctx context.Context, subjectID, contentType string) (models.UploadCredentials, error)
}

// PresignAPI is the slice of the S3 presign client used here; tests
// substitute a fake.
type PresignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// avatarStore is the S3-backed [UploadURLIssuer].
type avatarStore struct {
	presigner PresignAPI
	bucket    string
	ttl       time.Duration
	logger    *logger.Logger
}

// NewAvatarStore constructs an [UploadURLIssuer] over the configured bucket.
func NewAvatarStore(presigner PresignAPI, cfg config.Uploads, logger *logger.Logger) UploadURLIssuer {
	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating avatar store")
	return &avatarStore{
		presigner: presigner,
		bucket:    cfg.Bucket,
		ttl:       cfg.URLTTL,
		logger:    logger,
	}
}

// IssueAvatarUploadURL presigns a PUT to a deterministic key derived from
// the subject id and the content type's extension. Re-uploading replaces
// the previous avatar because the key never varies per upload.
//
// The credential's expiry is independent of any request timeout.
func (s *avatarStore) IssueAvatarUploadURL(ctx context.Context, subjectID, contentType string) (models.UploadCredentials, error) {
	ext, allowed := allowedContentTypes[contentType]
	if !allowed {
		return models.UploadCredentials{}, ErrUnsupportedContentType
	}

	key := fmt.Sprintf("avatars/%s.%s", subjectID, ext)

	presigned, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.ttl
	})
	if err != nil {
		return models.UploadCredentials{}, fmt.Errorf("presigning avatar upload: %w", err)
	}

	return models.UploadCredentials{
		UploadURL: presigned.URL,
		AvatarURL: s.publicURL(key),
		ExpiresIn: int(s.ttl / time.Second),
	}, nil
}

// publicURL is where the object is served once uploaded.
func (s *avatarStore) publicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, strings.TrimPrefix(key, "/"))
}
