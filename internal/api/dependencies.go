package api

import (
	"fmt"
	"os"
	"time"

	"pyc-official/secretariat/internal/card"
	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/db"
	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/metrics"
	"pyc-official/secretariat/internal/services"

	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Members       *repositories.MemberRepository
	Registrations *repositories.RegistrationRepository
	News          *repositories.NewsRepository
	Content       *repositories.ContentRepository
	Keys          *repositories.KeysRepo
	Stats         *repositories.StatsRepo
}

type Services struct {
	Cache        common.CacheInterface
	LocalCache   *common.CacheService
	Session      *common.SessionService
	Templates    *common.TemplateService
	Profile      *services.ProfileService
	Checkin      *services.CheckinService
	Registration *services.RegistrationService
	News         *services.NewsService
	Content      *services.ContentService
	Feed         *services.FeedService
	Renderer     *card.Renderer
}

type Dependencies struct {
	Repo      *Repositories
	Services  *Services
	Metrics   *metrics.MetricsRegistry
	Redis     *redis.Client
	Location  *time.Location
	JWTSecret []byte
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	tzName := os.Getenv("APP_TZ")
	if tzName == "" {
		tzName = "UTC"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TZ %q: %w", tzName, err)
	}

	redisClient, err := common.NewRedisClient()
	if err != nil {
		return nil, fmt.Errorf("redis is required for sessions: %w", err)
	}

	jwtSecret := os.Getenv("AUTH_JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	repos := &Repositories{
		Members:       repositories.NewMemberRepository(db.PgDB),
		Registrations: repositories.NewRegistrationRepository(db.PgDB),
		News:          repositories.NewNewsRepository(db.PgDB),
		Content:       repositories.NewContentRepository(db.PgDB),
		Keys:          repositories.NewAPIKeysRepo(db.DB),
		Stats:         repositories.NewStatsRepo(db.DB),
	}

	localCache := common.NewCacheService(3600, 600)
	templates := common.NewTemplateService(os.Getenv("CARD_TEMPLATE_URL"), localCache)

	newsSvc := services.NewNewsService(repos.News)
	contentSvc := services.NewContentService(repos.Content)

	svcs := &Services{
		Cache:        common.NewRedisCacheService(redisClient),
		LocalCache:   localCache,
		Session:      common.NewSessionService(redisClient),
		Templates:    templates,
		Profile:      services.NewProfileService(repos.Members, repos.Registrations, loc),
		Checkin:      services.NewCheckinService(repos.Members, loc),
		Registration: services.NewRegistrationService(repos.Registrations),
		News:         newsSvc,
		Content:      contentSvc,
		Feed:         services.NewFeedService(newsSvc, contentSvc),
		Renderer:     card.NewRenderer(templates, os.Getenv("CARD_FONT_PATH")),
	}

	return &Dependencies{
		Repo:      repos,
		Services:  svcs,
		Metrics:   metricsReg,
		Redis:     redisClient,
		Location:  loc,
		JWTSecret: []byte(jwtSecret),
	}, nil
}
