package repository

import (
	"context"
	"fmt"

	"kejani_backend/internal/model"
	imgutil "kejani_backend/pkg/utils/image"
	"kejani_backend/pkg/utils/storage"
	"kejani_backend/pkg/utils/validation"
)

// ImageSource is the tagged input to the attachment pipeline: either an
// already-hosted URL that passes through unchanged, or raw content
// pending validation, optimization and upload.
type ImageSource struct {
	URL         string
	Data        []byte
	Filename    string
	ContentType string
}

func ExistingURL(url string) ImageSource {
	return ImageSource{URL: url}
}

func PendingUpload(data []byte, filename, contentType string) ImageSource {
	return ImageSource{Data: data, Filename: filename, ContentType: contentType}
}

func (s ImageSource) pendingUpload() bool { return s.URL == "" }

// attachImages resolves every source to a public URL, then inserts one
// PropertyImage row per resolved URL in resolved order. The first entry
// of the resolved list — not the input list — becomes the primary image,
// so a failed upload shifts the designation to the next survivor. All
// sources are resolved before any row is written. Per-item failures are
// logged and skipped; they never fail the parent create or update.
func (r *PropertyRepository) attachImages(ctx context.Context, propertyID string, sources []ImageSource) {
	if len(sources) == 0 {
		return
	}

	resolved := make([]string, 0, len(sources))
	for i, src := range sources {
		url, err := r.resolveImage(ctx, propertyID, src)
		if err != nil {
			r.log.Warn().Err(err).
				Str("property_id", propertyID).
				Int("index", i).
				Msg("skipping image")
			continue
		}
		resolved = append(resolved, url)
	}

	for i, url := range resolved {
		img := model.PropertyImage{
			PropertyID: propertyID,
			URL:        url,
			IsPrimary:  i == 0,
			Position:   i,
		}
		if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
			r.log.Error().Err(err).
				Str("property_id", propertyID).
				Str("url", url).
				Msg("could not save image record")
		}
	}
}

// AddImage appends a single image to an owned property without touching
// the existing set. Unlike the batch pipeline a failure here surfaces to
// the caller, since the upload is the whole operation.
func (r *PropertyRepository) AddImage(ctx context.Context, propertyID, ownerUserID string, src ImageSource) (*model.PropertyImage, error) {
	if ownerUserID == "" {
		return nil, ErrUnauthenticated
	}

	owned, err := r.ownedBy(ctx, propertyID, ownerUserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	url, err := r.resolveImage(ctx, propertyID, src)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.PropertyImage{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("could not count images: %w", err)
	}

	img := model.PropertyImage{
		PropertyID: propertyID,
		URL:        url,
		IsPrimary:  count == 0,
		Position:   int(count),
	}
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return nil, fmt.Errorf("could not save image record: %w", err)
	}

	r.invalidate(ctx, propertyID)
	return &img, nil
}

func (r *PropertyRepository) resolveImage(ctx context.Context, propertyID string, src ImageSource) (string, error) {
	if !src.pendingUpload() {
		return src.URL, nil
	}

	if err := validation.ValidateImage(int64(len(src.Data)), src.ContentType, validation.PropertyImageLimits); err != nil {
		return "", err
	}

	body, contentType, err := imgutil.Optimize(src.Data)
	if err != nil {
		return "", err
	}

	key := storage.PropertyImageKey(propertyID, src.Filename)
	if err := r.store.Upload(ctx, storage.PropertyImagesBucket, key, body, contentType); err != nil {
		return "", err
	}

	return r.store.PublicURL(storage.PropertyImagesBucket, key), nil
}
