package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "finance-tracker",
		Usage: "personal income and expense tracker API",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Usage:   "dotenv files loaded before reading the environment",
				Value:   cli.NewStringSlice(".env"),
				EnvVars: []string{"ENV_FILE"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migrate the database and serve the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("finance-tracker")
	}
}

func loadConfig(c *cli.Context) (*config.Config, *logrus.Logger, error) {
	envConfig, err := config.ProcessEnvironmentVariables(c.StringSlice("env-file")...)
	if err != nil {
		return nil, nil, cli.Exit(err, 1)
	}
	return envConfig, logging.SetupLogging(envConfig.LogLevel), nil
}

func migrate(c *cli.Context) error {
	envConfig, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	return storage.RunMigrations(envConfig.PostgresURL(), logger)
}

func serve(c *cli.Context) error {
	envConfig, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger.Info("finance-tracker starting")

	if err := storage.RunMigrations(envConfig.PostgresURL(), logger); err != nil {
		return err
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig.DashboardCacheTTL)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:         logger,
		Port:           envConfig.HTTPPort,
		Service:        svc,
		Database:       dbStorage,
		RateLimitRPS:   envConfig.RateLimitRPS,
		RateLimitBurst: envConfig.RateLimitBurst,
	}
	return httpRest.Serve(ctx)
}

