// Command mentorboard runs the board as an AWS Lambda function.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/jacentio/mentorboard/board"
	"github.com/jacentio/mentorboard/handler"
	"github.com/jacentio/mentorboard/store"
)

// Config is read from the Lambda environment.
type Config struct {
	Backend    string `env:"MENTORBOARD_BACKEND" env-default:"dynamo"`
	TableName  string `env:"MENTORBOARD_TABLE" env-default:"mentorboard"`
	BadgerPath string `env:"MENTORBOARD_BADGER_PATH" env-default:"/tmp/mentorboard"`
	LogLevel   string `env:"MENTORBOARD_LOG_LEVEL" env-default:"info"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	s, err := newStore(context.Background(), cfg)
	if err != nil {
		return err
	}

	engine := board.New(s, logger)
	h := handler.New(engine, logger)

	logger.Info("mentorboard starting", "backend", cfg.Backend)
	lambda.Start(h.Handle)
	return nil
}

func newStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Backend {
	case "dynamo":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return store.NewDynamo(dynamodb.NewFromConfig(awsCfg), store.DynamoConfig{
			TableName: cfg.TableName,
		}), nil
	case "badger":
		return store.OpenBadger(store.DefaultBadgerConfig(cfg.BadgerPath))
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
