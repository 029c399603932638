package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"skills-radar/internal/assistant"
	"skills-radar/internal/config"
	"skills-radar/internal/database"
	dbpostgres "skills-radar/internal/database/postgres"
	"skills-radar/internal/infrastructure/cache"
	"skills-radar/internal/pipeline"
	"skills-radar/internal/pkg/jwt"
	"skills-radar/internal/repository"
	"skills-radar/internal/seeder"
	"skills-radar/internal/store"
	storepostgres "skills-radar/internal/store/postgres"
	"skills-radar/internal/usecase"
)

// Container wires the whole dependency graph once at startup.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Store store.Store
	DB    database.DB

	Members         repository.MemberRepository
	Profiles        repository.MemberProfileRepository
	MemberSkills    repository.MemberSkillRepository
	Skills          repository.SkillRepository
	Scales          repository.ScaleRepository
	KnowledgeAreas  repository.KnowledgeAreaRepository
	SkillCategories repository.SkillCategoryRepository
	Clients         repository.ClientRepository
	Assignments     repository.MemberAssignmentRepository

	MemberUsecase     usecase.MemberUsecase
	ProfileUsecase    usecase.ProfileUsecase
	CatalogUsecase    usecase.CatalogUsecase
	AssignmentUsecase usecase.AssignmentUsecase
	ReportUsecase     usecase.ReportUsecase
	AuthUsecase       usecase.AuthUsecase

	MemberImporter *pipeline.MemberImporter
	EntityImporter *pipeline.EntityImporter
	SmartImporter  *pipeline.SmartImporter
	BulkIngestor   *pipeline.BulkIngestor

	Advisor  *assistant.Advisor
	Snapshot *assistant.SnapshotCache

	JWT jwt.Service

	Seeder seeder.Runner
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "["+cfg.App.AppName+"] ", log.LstdFlags)

	c := &Container{Config: cfg, Logger: logger}

	if err := c.initStore(cfg); err != nil {
		return nil, err
	}

	c.Members = repository.NewStoreMemberRepository(c.Store)
	c.Profiles = repository.NewStoreMemberProfileRepository(c.Store)
	c.MemberSkills = repository.NewStoreMemberSkillRepository(c.Store)
	c.Skills = repository.NewStoreSkillRepository(c.Store)
	c.Scales = repository.NewStoreScaleRepository(c.Store)
	c.KnowledgeAreas = repository.NewStoreKnowledgeAreaRepository(c.Store)
	c.SkillCategories = repository.NewStoreSkillCategoryRepository(c.Store)
	c.Clients = repository.NewStoreClientRepository(c.Store)
	c.Assignments = repository.NewStoreMemberAssignmentRepository(c.Store)

	var assistantCache assistant.Cache
	if cfg.Redis.Host != "" {
		assistantCache = cache.NewRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, logger)
	} else {
		assistantCache = cache.NewMemory()
	}
	c.Snapshot = assistant.NewSnapshotCache(assistantCache, cfg.Assistant.SnapshotTTL, c.Members, c.MemberSkills, c.Skills)

	// The snapshot doubles as the invalidation hook for every mutating
	// usecase, so it is built before them.
	c.MemberUsecase = usecase.NewMemberUsecase(c.Members, c.Profiles, c.MemberSkills, c.Skills, c.Snapshot)
	c.ProfileUsecase = usecase.NewProfileUsecase(c.Profiles, c.Snapshot)
	c.CatalogUsecase = usecase.NewCatalogUsecase(c.Skills, c.Scales, c.KnowledgeAreas, c.SkillCategories, c.Clients, c.MemberSkills, c.Snapshot)
	c.AssignmentUsecase = usecase.NewAssignmentUsecase(c.Assignments, c.Members, c.Profiles, c.Clients, c.Snapshot)
	c.ReportUsecase = usecase.NewReportUsecase(c.Members, c.Profiles, c.MemberSkills, c.Skills, c.Scales)

	c.JWT = jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)
	c.AuthUsecase = usecase.NewAuthUsecase(c.JWT, cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash)

	client := assistant.NewOpenAIClient(cfg.Assistant.APIKey, cfg.Assistant.BaseURL, cfg.Assistant.Model, cfg.Assistant.Timeout)
	c.Advisor = assistant.NewAdvisor(client, c.Snapshot, logger)

	mapper := assistant.NewMapper(client, logger)
	c.MemberImporter = pipeline.NewMemberImporter(c.Members, c.Profiles)
	c.EntityImporter = pipeline.NewEntityImporter(c.KnowledgeAreas, c.SkillCategories, c.Skills)
	c.SmartImporter = pipeline.NewSmartImporter(c.Members, c.Profiles, c.Skills, c.Clients, mapper)
	c.BulkIngestor = pipeline.NewBulkIngestor(
		c.Store,
		c.Members, c.Profiles, c.MemberSkills,
		c.Skills, c.Scales, c.KnowledgeAreas, c.SkillCategories,
		logger,
	)

	c.Seeder = seeder.Runner{Seeders: []seeder.Seeder{
		seeder.NewBulkSkills(cfg.Seed.BulkSkillsPath, c.BulkIngestor, logger),
	}}

	return c, nil
}

func (c *Container) initStore(cfg config.Config) error {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		c.Store = store.NewMemory()
		return nil

	case config.StoreDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		s, err := storepostgres.Open(ctx, db)
		if err != nil {
			db.Close()
			return fmt.Errorf("open document store: %w", err)
		}
		c.DB = db
		c.Store = s
		return nil

	default:
		if dir := filepath.Dir(cfg.Store.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create store directory: %w", err)
			}
		}
		s, err := store.OpenFile(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open store file: %w", err)
		}
		c.Store = s
		return nil
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
