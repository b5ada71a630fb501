package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"utilboard/internal/config"
	"utilboard/internal/logging"
	"utilboard/internal/notify"
	"utilboard/report"
	"utilboard/web/handlers"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default $UTILBOARD_CONFIG or ./config.yaml)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logging.Init(*verbose, "")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.LogDir != "" {
		logging.Init(*verbose || cfg.Verbose, cfg.LogDir)
	}

	session, err := report.NewSession(cfg.Engine(), cfg.Teams)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session")
	}

	notifier := notify.NewSlackNotifier(cfg.Slack.Token, cfg.Slack.Channel)
	if notifier == nil {
		log.Info().Msg("slack notifications disabled")
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api/v1")
	handlers.Register(api, handlers.NewEnv(session, notifier, cfg.S3.Bucket))

	log.Info().Str("listen", cfg.Listen).Msg("starting utilboard")
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
