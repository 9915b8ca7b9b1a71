package directory

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
)

// ObjectPresigner issues temporary download URLs for stored objects.
// *minio.Client satisfies it.
type ObjectPresigner interface {
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	FindByNames(ctx context.Context, names []string) ([]domain.Profile, error)
	DisplayName(ctx context.Context, userID uuid.UUID) string
	OrganizationName(ctx context.Context, orgID uuid.UUID) (string, error)
	OrgContact(ctx context.Context, orgID uuid.UUID) (*uuid.UUID, error)
	AvatarURL(ctx context.Context, stored *string) *string
}

type service struct {
	profileRepo repository.ProfileRepository
	orgRepo     repository.OrganizationRepository
	presigner   ObjectPresigner
	bucket      string
	urlExpiry   time.Duration
}

func NewService(profileRepo repository.ProfileRepository, orgRepo repository.OrganizationRepository, presigner ObjectPresigner, bucket string, urlExpiry time.Duration) Service {
	return &service{
		profileRepo: profileRepo,
		orgRepo:     orgRepo,
		presigner:   presigner,
		bucket:      bucket,
		urlExpiry:   urlExpiry,
	}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	profile.AvatarURL = s.AvatarURL(ctx, profile.AvatarURL)
	return profile, nil
}

func (s *service) FindByNames(ctx context.Context, names []string) ([]domain.Profile, error) {
	return s.profileRepo.FindByFullNames(ctx, names)
}

// DisplayName never fails: a missing or unreadable profile yields the fallback name.
func (s *service) DisplayName(ctx context.Context, userID uuid.UUID) string {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "actor profile lookup failed", "user_id", userID, "error", err)
		return domain.ActorFallbackName
	}
	if profile == nil || strings.TrimSpace(profile.FullName) == "" {
		return domain.ActorFallbackName
	}
	return profile.FullName
}

func (s *service) OrganizationName(ctx context.Context, orgID uuid.UUID) (string, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return "", fmt.Errorf("failed to get organization: %w", err)
	}
	if org == nil {
		return "", domain.ErrOrganizationNotFound
	}
	return org.Name, nil
}

func (s *service) OrgContact(ctx context.Context, orgID uuid.UUID) (*uuid.UUID, error) {
	return s.profileRepo.GetOrgContactUserID(ctx, orgID)
}

// AvatarURL passes absolute URLs through and presigns bucket object keys.
// A key that cannot be presigned is dropped.
func (s *service) AvatarURL(ctx context.Context, stored *string) *string {
	if stored == nil || *stored == "" {
		return nil
	}
	value := *stored
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return &value
	}
	if s.presigner == nil {
		return nil
	}

	presigned, err := s.presigner.PresignedGetObject(ctx, s.bucket, strings.TrimPrefix(value, "/"), s.urlExpiry, nil)
	if err != nil {
		slog.WarnContext(ctx, "avatar presign failed", "object", value, "error", err)
		return nil
	}
	signed := presigned.String()
	return &signed
}
