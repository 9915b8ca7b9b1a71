package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/config"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/acknowledgment"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/audit"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/auth"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/collaboration"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/comment"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/directory"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/event"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/mention"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/notification"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/pin"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/post"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/project"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/reaction"
)

type Services struct {
	Auth           auth.Service
	Audit          audit.Service
	Directory      directory.Service
	Notification   notification.Service
	Collaboration  collaboration.Service
	Pin            pin.Service
	Acknowledgment acknowledgment.Service
	Post           post.Service
	Comment        comment.Service
	Reaction       reaction.Service
	Event          event.Service
	Project        project.Service
}

// NewServices wires the service graph. redis and minioClient may be nil, which
// disables caching and avatar presigning respectively.
func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	var presigner directory.ObjectPresigner
	if minioClient != nil {
		presigner = minioClient
	}

	directoryService := directory.NewService(repos.Profile, repos.Organization, presigner, cfg.MinIOBucket, cfg.AvatarURLExpiry)
	notificationService := notification.NewService(
		repos.Notification,
		repos.Post,
		repos.Comment,
		repos.Event,
		repos.Project,
		directoryService,
		redis,
		cfg,
	)
	collaborationService := collaboration.NewService(repos.Collaboration, repos.AuditLog, directoryService, notificationService)

	return &Services{
		Auth:           auth.NewService(repos.Profile, cfg),
		Audit:          audit.NewService(repos.AuditLog),
		Directory:      directoryService,
		Notification:   notificationService,
		Collaboration:  collaborationService,
		Pin:            pin.NewService(repos.Post, repos.AuditLog, redis, cfg.CacheTTL),
		Acknowledgment: acknowledgment.NewService(repos.Acknowledgment, repos.Post, directoryService, redis, cfg.CacheTTL),
		Post:           post.NewService(repos.Post, mention.NewResolver(directoryService), directoryService, notificationService),
		Comment:        comment.NewService(repos.Comment, repos.Post, notificationService),
		Reaction:       reaction.NewService(repos.Reaction, repos.Post, notificationService),
		Event:          event.NewService(repos.Event, collaborationService, notificationService),
		Project:        project.NewService(repos.Project, collaborationService, notificationService),
	}
}
