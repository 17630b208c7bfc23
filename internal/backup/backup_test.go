package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type fakeUploader struct {
	bucket, key string
	body        []byte
	err         error
}

func (f *fakeUploader) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket, f.key = *in.Bucket, *in.Key
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func newFacade(t *testing.T) *storage.Facade {
	t.Helper()
	mem := storage.NewMemoryBackend()
	mem.Put("dentalClinic_patients", `[{"id":"p-01","name":"Afzal"}]`)
	mem.Put("dentalClinic_staff", `[]`)
	mem.Put("otherApp_patients", `[{"id":"x"}]`)
	return storage.NewFacade(mem, "dentalClinic", nil)
}

var clock = timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 1, 10, 6, 0, 0, 0, time.UTC))

func TestUploadWritesNamespacedArchive(t *testing.T) {
	up := &fakeUploader{}
	svc := New(newFacade(t), up, "clinic-backups", clock, nil, nil)

	res, err := svc.Upload(context.Background())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if up.bucket != "clinic-backups" || res.Key != up.key || !strings.HasPrefix(up.key, "dentalClinic/20250110T060000Z-") {
		t.Fatalf("uploaded to %s/%s", up.bucket, up.key)
	}

	var a Archive
	if err := json.Unmarshal(up.body, &a); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if len(a.Collections) != 2 || a.Namespace != "dentalClinic" {
		t.Fatalf("archive = %+v", a)
	}
	if _, ok := a.Collections["patients"]; !ok {
		t.Fatalf("patients missing from archive")
	}
}

func TestUploadDisabledAndFailing(t *testing.T) {
	svc := New(newFacade(t), nil, "", clock, nil, nil)
	if _, err := svc.Upload(context.Background()); !httperr.IsBusiness(err, "backup_disabled") {
		t.Fatalf("err = %v", err)
	}

	svc = New(newFacade(t), &fakeUploader{err: errors.New("denied")}, "b", clock, nil, nil)
	if _, err := svc.Upload(context.Background()); !httperr.IsBusiness(err, "backup_failed") {
		t.Fatalf("err = %v", err)
	}
}

func TestWriteTo(t *testing.T) {
	svc := New(newFacade(t), nil, "", clock, nil, nil)

	var buf bytes.Buffer
	if err := svc.WriteTo(context.Background(), &buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `"schemaVersion": 2`) || strings.Contains(buf.String(), "otherApp") {
		t.Fatalf("archive = %s", buf.String())
	}
}
