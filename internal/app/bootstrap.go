package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skills-radar/internal/config"
	"skills-radar/internal/delivery/http/handler"
	"skills-radar/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	seedCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := c.Seeder.Run(seedCtx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	handler.NewHealthHandler(c.Store).RegisterRoutes(f)

	api := f.Group("/api/v1")

	// Reads stay public; every other verb needs the admin token. Login and
	// refresh are the only open writes.
	authMw := middleware.NewAuthMiddleware(c.JWT)
	api.Use(authMw.RequireForWrites("/api/v1/auth"))

	handler.NewAuthHandler(c.AuthUsecase).RegisterRoutes(api.Group("/auth"))

	handler.NewMemberHandler(c.MemberUsecase).RegisterRoutes(api)
	handler.NewMemberProfileHandler(c.ProfileUsecase).RegisterRoutes(api)
	handler.NewMemberSkillHandler(c.MemberUsecase, c.MemberSkills).RegisterRoutes(api)
	handler.NewSkillHandler(c.CatalogUsecase).RegisterRoutes(api)
	handler.NewScaleHandler(c.CatalogUsecase).RegisterRoutes(api)
	handler.NewKnowledgeAreaHandler(c.CatalogUsecase).RegisterRoutes(api)
	handler.NewSkillCategoryHandler(c.CatalogUsecase).RegisterRoutes(api)
	handler.NewClientHandler(c.CatalogUsecase).RegisterRoutes(api)
	handler.NewAssignmentHandler(c.AssignmentUsecase).RegisterRoutes(api)
	handler.NewReportHandler(c.ReportUsecase).RegisterRoutes(api)

	// Bulk flows and the assistant sit entirely behind the admin login,
	// template downloads included.
	protected := api.Group("", authMw.Middleware())
	handler.NewImportHandler(c.MemberImporter, c.EntityImporter, c.SmartImporter, c.Snapshot).RegisterRoutes(protected)
	handler.NewAssistantHandler(c.Advisor, c.Snapshot).RegisterRoutes(protected)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
