package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"kejani_backend/internal/model"
	imgutil "kejani_backend/pkg/utils/image"
	"kejani_backend/pkg/utils/storage"
	"kejani_backend/pkg/utils/validation"
)

type ProfileRepository struct {
	db    *gorm.DB
	store storage.ObjectStorage
	log   zerolog.Logger
}

func NewProfileRepository(db *gorm.DB, store storage.ObjectStorage, log zerolog.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, store: store, log: log}
}

type UpdateProfileInput struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// Get fetches the profile for a user, creating the row on first access.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*model.Profile, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where(model.Profile{UserID: userID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, userID string, in UpdateProfileInput) (*model.Profile, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	profile, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.AvatarURL != nil {
		updates["avatar_url"] = *in.AvatarURL
	}
	if len(updates) == 0 {
		return profile, nil
	}

	if err := r.db.WithContext(ctx).Model(profile).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	return profile, nil
}

// UploadAvatar validates, optimizes and stores a new avatar, replacing
// the previous object. Unlike property images this is a single required
// upload, so failures surface to the caller.
func (r *ProfileRepository) UploadAvatar(ctx context.Context, userID string, data []byte, filename, contentType string) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}

	if err := validation.ValidateImage(int64(len(data)), contentType, validation.AvatarLimits); err != nil {
		return "", err
	}

	body, encodedType, err := imgutil.Optimize(data)
	if err != nil {
		return "", err
	}

	profile, err := r.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	// Eğer eski avatar varsa, sil
	if profile.AvatarURL != nil && *profile.AvatarURL != "" {
		if _, oldKey, found := strings.Cut(*profile.AvatarURL, "/"+storage.AvatarsBucket+"/"); found {
			if err := r.store.Delete(ctx, storage.AvatarsBucket, oldKey); err != nil {
				// Hata logla ama işleme devam et
				r.log.Warn().Err(err).Str("user_id", userID).Msg("could not delete old avatar")
			}
		}
	}

	key := storage.AvatarKey(userID, filename)
	if err := r.store.Upload(ctx, storage.AvatarsBucket, key, body, encodedType); err != nil {
		return "", fmt.Errorf("could not upload avatar: %w", err)
	}

	avatarURL := r.store.PublicURL(storage.AvatarsBucket, key)
	if _, err := r.Update(ctx, userID, UpdateProfileInput{AvatarURL: &avatarURL}); err != nil {
		return "", err
	}
	return avatarURL, nil
}
