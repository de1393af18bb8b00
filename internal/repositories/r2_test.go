package repositories

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeObjects struct {
	objects map[string][]byte
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b, ok := f.objects[*in.Key]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeObjects) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[*in.Key]; !ok {
		return nil, &s3types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestR2Store(t *testing.T) {
	fake := &fakeObjects{objects: map[string][]byte{}}
	store := &R2Store{client: fake, bucket: "docs"}
	ctx := context.Background()

	if err := store.Save(ctx, "1/a.pdf", strings.NewReader("pdf")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ok, err := store.Exists(ctx, "1/a.pdf"); err != nil || !ok {
		t.Errorf("exists: %v %v", ok, err)
	}

	rc, err := store.Open(ctx, "1/a.pdf")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	b, _ := io.ReadAll(rc)
	rc.Close()
	if string(b) != "pdf" {
		t.Errorf("unexpected body %q", b)
	}

	if err := store.Remove(ctx, "1/a.pdf"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if ok, err := store.Exists(ctx, "1/a.pdf"); err != nil || ok {
		t.Errorf("expected missing, got %v %v", ok, err)
	}
	if _, err := store.Open(ctx, "1/a.pdf"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
