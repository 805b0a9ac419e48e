package gcs

import (
	"context"
	"io"
	"log/slog"
	"path"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/depfix/pkg/domain/interfaces"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/utils/logging"
	"google.golang.org/api/option"
)

// Client stores run artifacts in a Cloud Storage bucket.
type Client struct {
	client *storage.Client
	bucket types.GCSBucket
	prefix string
}

var _ interfaces.Archive = (*Client)(nil)

func New(ctx context.Context, bucket types.GCSBucket, prefix string, options ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func objectName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Put uploads r as object name under the configured prefix and returns its gs:// URL.
func (x *Client) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	object := objectName(x.prefix, name)

	w := x.client.Bucket(x.bucket.String()).Object(object).NewWriter(ctx)
	w.ContentType = "text/plain; charset=utf-8"

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to write object", goerr.V("bucket", x.bucket), goerr.V("object", object))
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close object writer", goerr.V("bucket", x.bucket), goerr.V("object", object))
	}

	objURL := "gs://" + x.bucket.String() + "/" + object
	logging.From(ctx).Info("Uploaded object", slog.String("url", objURL))
	return objURL, nil
}
