package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"kejani_backend/pkg/utils/storage"
	"kejani_backend/pkg/utils/validation"
)

// fakeStore records uploads and can be told to fail specific keys.
type fakeStore struct {
	uploads  map[string][]byte
	failNext bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{uploads: map[string][]byte{}}
}

func (f *fakeStore) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	if f.failNext {
		f.failNext = false
		return errors.New("upload failed")
	}
	f.uploads[bucket+"/"+key] = body
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, bucket, key string) error {
	delete(f.uploads, bucket+"/"+key)
	return nil
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://cdn.test/%s/%s", bucket, key)
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func testRepo(store storage.ObjectStorage) *PropertyRepository {
	return NewPropertyRepository(nil, store, nil, zerolog.Nop())
}

func TestResolveImage_URLPassesThrough(t *testing.T) {
	store := newFakeStore()
	r := testRepo(store)

	url, err := r.resolveImage(context.Background(), "prop-1",
		ExistingURL("https://example.com/existing.jpg"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != "https://example.com/existing.jpg" {
		t.Fatalf("url = %q", url)
	}
	if len(store.uploads) != 0 {
		t.Fatalf("passthrough should not touch the store")
	}
}

func TestResolveImage_UploadsPendingContent(t *testing.T) {
	store := newFakeStore()
	r := testRepo(store)

	url, err := r.resolveImage(context.Background(), "prop-1",
		PendingUpload(testPNG(t), "Living Room.png", "image/png"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	prefix := "https://cdn.test/" + storage.PropertyImagesBucket + "/properties/prop-1/"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("url = %q, want prefix %q", url, prefix)
	}
	if !strings.HasPrefix(url, prefix+"living-room-") {
		t.Fatalf("filename should be slugified, got %q", url)
	}
	if len(store.uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(store.uploads))
	}
}

func TestResolveImage_RejectsOversizedFile(t *testing.T) {
	r := testRepo(newFakeStore())

	big := make([]byte, validation.PropertyImageLimits.MaxSize+1)
	_, err := r.resolveImage(context.Background(), "prop-1",
		PendingUpload(big, "huge.png", "image/png"))
	if !errors.Is(err, validation.ErrFileSize) {
		t.Fatalf("err = %v, want ErrFileSize", err)
	}
}

func TestResolveImage_RejectsNonImageContentType(t *testing.T) {
	r := testRepo(newFakeStore())

	_, err := r.resolveImage(context.Background(), "prop-1",
		PendingUpload([]byte("%PDF-1.4"), "listing.pdf", "application/pdf"))
	if !errors.Is(err, validation.ErrFileType) {
		t.Fatalf("err = %v, want ErrFileType", err)
	}
}

func TestResolveImage_UploadFailureSurfaces(t *testing.T) {
	store := newFakeStore()
	store.failNext = true
	r := testRepo(store)

	_, err := r.resolveImage(context.Background(), "prop-1",
		PendingUpload(testPNG(t), "room.png", "image/png"))
	if err == nil {
		t.Fatalf("expected upload error")
	}
}

func TestImageSource_Tagging(t *testing.T) {
	if ExistingURL("https://x/y.jpg").pendingUpload() {
		t.Fatalf("url source should not be pending")
	}
	if !PendingUpload([]byte{1}, "a.png", "image/png").pendingUpload() {
		t.Fatalf("raw source should be pending")
	}
}
