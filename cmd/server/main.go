package main

import (
	"flag"
	"log/slog"
	"os"

	"teamvote/internal/config"
	"teamvote/internal/handler"
	"teamvote/internal/logger"
	"teamvote/internal/model"
	"teamvote/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	if cfg.Admin.APIKey == "" {
		slog.Error("admin api key not configured (set admin.api_key or VOTE_ADMIN_API_KEY)")
		os.Exit(1)
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.Team{}, &model.Member{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	tokens := service.NewTokenRegistry()
	teams := service.NewTeamService(db)
	members := service.NewMemberService(db, tokens)
	voting := service.NewVotingService(db)

	r := handler.NewRouter(cfg.Admin.APIKey, db, teams, members, voting)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
