package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"git.noga.studio/noga/site/src/config"
	"git.noga.studio/noga/site/src/oops"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var client *s3.Client

func init() {
	if !config.Config.Storage.Configured() {
		return
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				config.Config.Storage.AccessKey,
				config.Config.Storage.Secret,
				"",
			),
		),
		awsconfig.WithRegion(config.Config.Storage.Region),
		awsconfig.WithEndpointResolver(aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL: config.Config.Storage.Endpoint,
			}, nil
		})),
	)
	if err != nil {
		panic(err)
	}
	client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
}

const MaxUploadSize = 10 * 1024 * 1024

// Extensions per content type for the image formats the blog editor accepts.
var imageExtensions = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

type CreateInput struct {
	Content     []byte
	Filename    string
	ContentType string

	// Uploads are namespaced by the post they belong to.
	Locale string
	Slug   string
}

type InvalidAssetError error

var ErrStorageNotConfigured = errors.New("image storage is not configured")

// ObjectKey names an upload by locale and slug plus a timestamp, so re-uploads
// for the same post never collide.
func ObjectKey(locale, slug, ext string, now time.Time) string {
	return fmt.Sprintf("%s/%s-%d.%s", locale, slug, now.Unix(), ext)
}

// Create uploads an image to the blog uploads bucket and returns its public
// URL. The bucket gets created on first use.
func Create(ctx context.Context, in CreateInput) (string, error) {
	if client == nil {
		return "", ErrStorageNotConfigured
	}

	if len(in.Content) == 0 {
		return "", InvalidAssetError(fmt.Errorf("could not upload '%s': no bytes of data were provided", in.Filename))
	}
	if len(in.Content) > MaxUploadSize {
		return "", InvalidAssetError(fmt.Errorf("could not upload '%s': file exceeds the %dMB limit", in.Filename, MaxUploadSize/1024/1024))
	}
	ext, ok := imageExtensions[in.ContentType]
	if !ok {
		return "", InvalidAssetError(fmt.Errorf("could not upload '%s': unsupported content type '%s'", in.Filename, in.ContentType))
	}

	key := ObjectKey(in.Locale, in.Slug, ext, time.Now())

	upload := func() error {
		_, err := client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      &config.Config.Storage.Bucket,
			Key:         &key,
			Body:        bytes.NewReader(in.Content),
			ACL:         types.ObjectCannedACLPublicRead,
			ContentType: &in.ContentType,
		})
		return err
	}

	err := upload()
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) && apiError.ErrorCode() == "NoSuchBucket" {
			_, err := client.CreateBucket(ctx, &s3.CreateBucketInput{
				Bucket: &config.Config.Storage.Bucket,
			})
			if err != nil {
				return "", oops.New(err, "failed to create uploads bucket")
			}

			err = upload()
			if err != nil {
				return "", oops.New(err, "failed to upload asset after creating bucket")
			}
		} else {
			return "", oops.New(err, "failed to upload asset")
		}
	}

	return PublicUrl(key), nil
}

// PublicUrl builds the browser-facing URL for an object key.
func PublicUrl(key string) string {
	base := config.Config.Storage.PublicUrlBase
	if base == "" {
		base = fmt.Sprintf("%s/%s",
			strings.TrimSuffix(config.Config.Storage.Endpoint, "/"),
			config.Config.Storage.Bucket,
		)
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), key)
}

// ExtensionForContentType reports whether we accept the content type, and the
// canonical extension if so.
func ExtensionForContentType(contentType string) (string, bool) {
	ext, ok := imageExtensions[contentType]
	return ext, ok
}

// ContentTypeForFilename guesses a content type from an uploaded file's name.
func ContentTypeForFilename(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	default:
		return ""
	}
}
