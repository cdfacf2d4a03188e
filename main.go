package main

import (
	"context"
	"flag"
	"os"

	"twitteralchemy/config"
	"twitteralchemy/core"
	"twitteralchemy/database"
	"twitteralchemy/logger"
	"twitteralchemy/util"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func main() {
	entity := flag.String("entity", core.EntityTweets, "primary entity of the response: tweets or users")
	full := flag.Bool("full", false, "include opaque fields as JSON text")
	store := flag.Bool("store", false, "persist tweets and users to the configured database")
	quiet := flag.Bool("quiet", false, "do not print the mapped records")
	flag.Parse()

	if err := logger.Init("info", logger.FormatConsole); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// load environment variables and configurations
	cfg, err := config.Load()
	if err != nil {
		zap.S().Fatalf("failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		zap.S().Fatalf("failed to configure logger: %v", err)
	}

	if flag.NArg() == 0 {
		zap.S().Fatal(util.ErrNoInput)
	}

	if *store {
		if _, err := database.Start(cfg); err != nil {
			zap.S().Fatalf("failed to start database: %v", err)
		}
	}

	ctx := context.Background()
	log := zap.S()
	for _, path := range flag.Args() {
		body, err := util.ReadInput(path)
		if err != nil {
			log.Fatal(err)
		}
		result, err := core.Handle(ctx, *entity, body, core.Options{
			Full:   *full,
			Store:  *store,
			Source: path,
		})
		if err != nil {
			log.Fatalf("failed to process %s: %v", path, err)
		}
		log.Infof("%s: %s records", path, humanize.Comma(int64(len(result.Data))))
		if *store {
			log.With("batch", result.BatchID).Infof(
				"%s: stored %s tweets, %s users",
				path,
				humanize.Comma(int64(result.StoredTweets)),
				humanize.Comma(int64(result.StoredUsers)),
			)
		}
		if *quiet {
			continue
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			log.Fatalf("failed to write output: %v", err)
		}
	}
}
