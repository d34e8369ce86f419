package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "guardian",
		Usage:   "conversation moderation daemon (keeps the space safe)",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "perspective-api-key",
			Usage:   "API key for the comment-analysis classifier; pattern matching is used without one",
			EnvVars: []string{"PERSPECTIVE_API_KEY"},
		},
		&cli.IntFlag{
			Name:    "perspective-rate-limit",
			Usage:   "max classifier requests per second",
			Value:   10,
			EnvVars: []string{"GUARDIAN_PERSPECTIVE_RATE_LIMIT"},
		},
		&cli.StringFlag{
			Name:    "openai-api-key",
			Usage:   "API key for generated reflections and suggestions; static pools are used without one",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "completion-model",
			Usage:   "chat model for reflections and suggestions",
			Value:   "gpt-3.5-turbo",
			EnvVars: []string{"GUARDIAN_COMPLETION_MODEL"},
		},
	}

	app.Commands = []*cli.Command{
		runCmd,
	}

	return app.Run(args)
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the service",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "bind",
			Usage:   "IP or address, and port, to listen on for the moderation API",
			Value:   ":3999",
			EnvVars: []string{"GUARDIAN_BIND"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs",
			Value:   ":3998",
			EnvVars: []string{"GUARDIAN_METRICS_LISTEN"},
		},
		&cli.Float64Flag{
			Name:    "classifier-threshold",
			Usage:   "probability at which a classifier attribute counts as present",
			Value:   0.8,
			EnvVars: []string{"GUARDIAN_CLASSIFIER_THRESHOLD"},
		},
		&cli.IntFlag{
			Name:    "cache-capacity",
			Usage:   "max entries in the generated-response cache",
			Value:   100,
			EnvVars: []string{"GUARDIAN_CACHE_CAPACITY"},
		},
		&cli.DurationFlag{
			Name:    "suggestion-cooldown",
			Usage:   "minimum time between suggestion offers to one participant",
			Value:   30 * time.Second,
			EnvVars: []string{"GUARDIAN_SUGGESTION_COOLDOWN"},
		},
		&cli.Float64Flag{
			Name:    "suggestion-health-threshold",
			Usage:   "conversation health below this triggers contextual suggestions",
			Value:   0.55,
			EnvVars: []string{"GUARDIAN_SUGGESTION_HEALTH_THRESHOLD"},
		},
		&cli.BoolFlag{
			Name:    "fixed-reflection-interval",
			Usage:   "pin the reflection cadence to every 2 messages (local testing)",
			EnvVars: []string{"GUARDIAN_FIXED_REFLECTION_INTERVAL"},
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)

		configOTEL("guardian")

		srv, err := NewServer(Config{
			Logger:                    logger,
			PerspectiveAPIKey:         cctx.String("perspective-api-key"),
			PerspectiveRateLimit:      cctx.Int("perspective-rate-limit"),
			OpenAIAPIKey:              cctx.String("openai-api-key"),
			CompletionModel:           cctx.String("completion-model"),
			ClassifierThreshold:       cctx.Float64("classifier-threshold"),
			CacheCapacity:             cctx.Int("cache-capacity"),
			SuggestionCooldown:        cctx.Duration("suggestion-cooldown"),
			SuggestionHealthThreshold: cctx.Float64("suggestion-health-threshold"),
			FixedReflectionInterval:   cctx.Bool("fixed-reflection-interval"),
		})
		if err != nil {
			return err
		}

		go func() {
			if err := srv.RunMetrics(cctx.String("metrics-listen")); err != nil {
				slog.Error("failed to start metrics endpoint", "error", err)
				os.Exit(-1)
			}
		}()

		return srv.RunAPI(cctx.String("bind"))
	},
}
