package objectstore

import (
	"context"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmori/techtrends/internal/config"
	"github.com/kmori/techtrends/internal/logger"
)

// ─────────────────────────────────────────────
// Mock PresignAPI
// ─────────────────────────────────────────────

// mockPresignAPI implements PresignAPI for unit tests.
type mockPresignAPI struct {
	presignPutObjectFn func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

func (m *mockPresignAPI) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return m.presignPutObjectFn(ctx, params, optFns...)
}

func newStore(presigner PresignAPI) UploadURLIssuer {
	return NewAvatarStore(presigner, config.Uploads{
		Bucket: "user-icons-bucket",
		URLTTL: 300 * time.Second,
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// IssueAvatarUploadURL
// ─────────────────────────────────────────────

// TestIssueAvatarUploadURL_Success verifies the presign parameters, the
// extension normalization for jpeg, and the credential shape.
func TestIssueAvatarUploadURL_Success(t *testing.T) {
	store := newStore(&mockPresignAPI{
		presignPutObjectFn: func(_ context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			assert.Equal(t, "user-icons-bucket", *params.Bucket)
			assert.Equal(t, "avatars/sub-1.jpg", *params.Key)
			assert.Equal(t, "image/jpeg", *params.ContentType)

			opts := s3.PresignOptions{}
			for _, fn := range optFns {
				fn(&opts)
			}
			assert.Equal(t, 300*time.Second, opts.Expires)

			return &v4.PresignedHTTPRequest{URL: "https://signed.example.com/put"}, nil
		},
	})

	creds, err := store.IssueAvatarUploadURL(context.Background(), "sub-1", "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/put", creds.UploadURL)
	assert.Equal(t, "https://user-icons-bucket.s3.amazonaws.com/avatars/sub-1.jpg", creds.AvatarURL)
	assert.Equal(t, 300, creds.ExpiresIn)
}

// TestIssueAvatarUploadURL_KeyPerContentType verifies the object key
// extension for each accepted type.
func TestIssueAvatarUploadURL_KeyPerContentType(t *testing.T) {
	cases := map[string]string{
		"image/png":  "avatars/sub-1.png",
		"image/jpeg": "avatars/sub-1.jpg",
		"image/gif":  "avatars/sub-1.gif",
		"image/webp": "avatars/sub-1.webp",
	}

	for contentType, wantKey := range cases {
		store := newStore(&mockPresignAPI{
			presignPutObjectFn: func(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
				assert.Equal(t, wantKey, *params.Key, "content type %s", contentType)
				return &v4.PresignedHTTPRequest{URL: "https://signed.example.com/put"}, nil
			},
		})

		_, err := store.IssueAvatarUploadURL(context.Background(), "sub-1", contentType)
		require.NoError(t, err)
	}
}

// TestIssueAvatarUploadURL_RejectsUnsupportedType verifies that anything
// outside the image allow list fails before any presign call.
func TestIssueAvatarUploadURL_RejectsUnsupportedType(t *testing.T) {
	store := newStore(&mockPresignAPI{})

	for _, contentType := range []string{"image/svg+xml", "application/pdf", "text/html", ""} {
		_, err := store.IssueAvatarUploadURL(context.Background(), "sub-1", contentType)
		require.ErrorIs(t, err, ErrUnsupportedContentType, "content type %q", contentType)
	}
}
