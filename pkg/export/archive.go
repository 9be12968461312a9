// Package export writes report payloads out of the service: JSON snapshots
// to S3-compatible object storage and human-readable summaries to a writer.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Archive stores report snapshots as JSON objects, keyed by client and
// report kind, so dashboards can be replayed later.
type Archive struct {
	mc     *minio.Client
	bucket string
}

func NewArchive(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Archive, error) {
	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}
	return &Archive{mc: mc, bucket: bucket}, nil
}

// Store uploads the payload as JSON under
// <clientID>/<kind>/<timestamp>.json.
func (a *Archive) Store(ctx context.Context, clientID int, kind string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s snapshot: %w", kind, err)
	}
	key := fmt.Sprintf("%d/%s/%s.json", clientID, kind, time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	_, err = a.mc.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("upload %s snapshot: %w", kind, err)
	}
	return nil
}
