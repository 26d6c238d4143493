package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dm-vev/terraforge/terra"
	"github.com/pelletier/go-toml"
)

func main() {
	uc, err := readConfig()
	if err != nil {
		slog.Error("read config", "err", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if uc.Server.DebugLogging {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	conf, err := uc.Config(log)
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}
	srv := conf.New()
	if err := srv.Start(); err != nil {
		log.Error("start service", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	if err := srv.Close(); err != nil {
		log.Error("close service", "err", err)
	}
}

// readConfig reads the configuration from config.toml, writing a default
// configuration file first if it does not yet exist.
func readConfig() (terra.UserConfig, error) {
	c := terra.DefaultConfig()
	if _, err := os.Stat("config.toml"); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, err
		}
		if err := os.WriteFile("config.toml", data, 0644); err != nil {
			return c, err
		}
		return c, nil
	}
	data, err := os.ReadFile("config.toml")
	if err != nil {
		return c, err
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}
