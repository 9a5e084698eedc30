package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FlorianRuen/portfolio-backend/config"
	"github.com/FlorianRuen/portfolio-backend/controller"
	"github.com/FlorianRuen/portfolio-backend/logger"
	"github.com/FlorianRuen/portfolio-backend/mailer"
	"github.com/FlorianRuen/portfolio-backend/service"
	"github.com/FlorianRuen/portfolio-backend/shell"
	"github.com/FlorianRuen/portfolio-backend/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("unable to load configuration")
	}

	// configure logger
	logger.Setup(*cfg)

	// setup github client
	// we do here and pass the client to the project service to easily improve tests with mock client
	if cfg.Github.Token == "" {
		log.Info("no github token configured, repositories will be listed with the unauthenticated rate limit")
	}

	githubClient, err := service.NewGithubClient(cfg.Github)
	if err != nil {
		log.WithError(err).Fatal("unable to setup github client")
	}

	// missing identifiers are not fatal, every delivery attempt will fail instead
	if !cfg.Email.Configured() {
		log.Warning("email service, template or public key identifier missing. contact form will not deliver messages")
	}

	// setup handlers and services
	projectService := service.NewProjectService(*cfg, githubClient)
	contactService := service.NewContactService(*cfg, mailer.NewEmailJS(cfg.Email, nil))

	apiController := controller.NewAPIController(*cfg, projectService, contactService)
	projectFeed := shell.NewProjectFeed(projectService)
	pageController := controller.NewPageController(*cfg, projectFeed, contactService)

	// first fetch in background so a form post before any page load still has a project list
	go func() {
		if _, err := projectFeed.Refresh(context.Background()); err == nil {
			log.Debug("initial project list loaded")
		}
	}()

	// setup server and define all routes
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.SetHTMLTemplate(web.Templates())

	server := &http.Server{
		Addr:    ":" + cfg.API.ListenPort,
		Handler: router,
	}

	router.Use(
		gin.Recovery(),
		logger.RequestLogger(),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Content-Type, Content-Length, Accept-Encoding, Host, accept, Origin, Cache-Control, X-Requested-With"},
			MaxAge:       12 * time.Hour,
		}),
	)

	controller.Register(router, apiController, pageController)

	// start with configuration
	go func() {
		log.WithField("account", cfg.Github.Account).Info("server listening on port " + cfg.API.ListenPort)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("error while starting server")
		}
	}()

	// wait for interrupt signal to gracefully shut down the server with a timeout of 15 seconds.
	// kill default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("SIGINT, SIGTERM received, will shut down server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	} else {
		log.Info("Application stopped gracefully !")
	}
}
