// Package backup exports the whole keyspace as one JSON archive, either as a
// download or as an object in an S3 bucket.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-admin/internal/config"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

var (
	ErrDisabled = httperr.ErrBusiness("backup_disabled")
	ErrFailed   = httperr.ErrBusiness("backup_failed")
)

// Uploader is the part of *s3.Client a backup needs.
type Uploader interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client builds a client from static credentials. A custom endpoint
// (MinIO, R2) switches to path-style addressing.
func NewS3Client(cfg *config.Config) *s3.Client {
	opts := s3.Options{
		Region: cfg.BackupRegion,
	}
	if cfg.AWSAccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, "")
	}
	if cfg.BackupEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.BackupEndpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

type Archive struct {
	Namespace     string                     `json:"namespace"`
	TakenAt       time.Time                  `json:"takenAt"`
	SchemaVersion int                        `json:"schemaVersion"`
	Collections   map[string]json.RawMessage `json:"collections"`
}

type Result struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Bytes  int    `json:"bytes"`
}

type Service struct {
	store    *storage.Facade
	uploader Uploader
	bucket   string
	clock    *timezone.Clock
	notify   *notify.Dispatcher
	log      *zap.Logger
}

// New returns a backup service. With a nil uploader only downloads work.
func New(store *storage.Facade, uploader Uploader, bucket string, clock *timezone.Clock, n *notify.Dispatcher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		uploader: uploader,
		bucket:   bucket,
		clock:    clock,
		notify:   n,
		log:      log.Named("backup"),
	}
}

func (s *Service) Snapshot(ctx context.Context) (Archive, error) {
	cols, err := s.store.Snapshot(ctx)
	if err != nil {
		s.log.Error("snapshot failed", zap.Error(err))
		return Archive{}, ErrFailed
	}
	return Archive{
		Namespace:     s.store.Namespace(),
		TakenAt:       s.clock.Now(),
		SchemaVersion: models.SchemaVersion,
		Collections:   cols,
	}, nil
}

// WriteTo streams the archive as indented JSON.
func (s *Service) WriteTo(ctx context.Context, w io.Writer) error {
	a, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// Upload stores the archive under <namespace>/<timestamp>-<id>.json.
func (s *Service) Upload(ctx context.Context) (Result, error) {
	if s.uploader == nil || s.bucket == "" {
		return Result{}, ErrDisabled
	}

	a, err := s.Snapshot(ctx)
	if err != nil {
		return Result{}, err
	}
	body, err := json.Marshal(a)
	if err != nil {
		return Result{}, err
	}

	key := ObjectKey(a.Namespace, a.TakenAt, uuid.NewString())
	_, err = s.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.log.Error("backup upload failed", zap.String("bucket", s.bucket), zap.Error(err))
		s.notify.Dispatch(notify.Event{
			Level:   notify.LevelError,
			Action:  "backup_failed",
			Message: "Backup upload failed.",
		})
		return Result{}, ErrFailed
	}

	s.log.Info("backup uploaded", zap.String("bucket", s.bucket), zap.String("key", key), zap.Int("bytes", len(body)))
	s.notify.Dispatch(notify.Event{
		Level:   notify.LevelSuccess,
		Action:  "backup_uploaded",
		Message: fmt.Sprintf("Backup saved (%d collections).", len(a.Collections)),
	})
	return Result{Bucket: s.bucket, Key: key, Bytes: len(body)}, nil
}

func ObjectKey(namespace string, at time.Time, id string) string {
	return fmt.Sprintf("%s/%s-%s.json", namespace, at.UTC().Format("20060102T150405Z"), id)
}
