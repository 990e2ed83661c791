// Package main 小说生成命令行入口
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"novel-writer/internal/config"
	"novel-writer/internal/document"
	"novel-writer/internal/infrastructure/llm"
	"novel-writer/internal/pacing"
	"novel-writer/internal/role"
	"novel-writer/pkg/logger"
	"novel-writer/pkg/metrics"
	"novel-writer/pkg/tracer"
)

var (
	flagTopic    string
	flagLanguage string
	flagOutDir   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "novel-writer",
		Short:        "根据给定题材生成多章节小说并落盘为 markdown 文档",
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&flagTopic, "topic", "", "小说题材，如：游戏、武侠、科幻 (必填)")
	rootCmd.Flags().StringVar(&flagLanguage, "language", "", "写作语言，默认取配置 generation.language")
	rootCmd.Flags().StringVar(&flagOutDir, "out", "", "输出根目录，默认取配置 output.dir")
	_ = rootCmd.MarkFlagRequired("topic")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to init tracer", err)
	}
	defer func() { _ = shutdown(ctx) }()

	if cfg.Observability.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(cfg.Observability.Metrics.Port, cfg.Observability.Metrics.Path); err != nil {
				logger.Error(ctx, "metrics endpoint exited", err)
			}
		}()
	}

	language := flagLanguage
	if language == "" {
		language = cfg.Generation.Language
	}
	outDir := flagOutDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	factory := llm.NewEinoFactory(cfg)
	generator := llm.NewEinoGenerator(factory, cfg.LLM.DefaultProvider)

	pacer, closePacer, err := buildPacer(cfg)
	if err != nil {
		logger.Fatal(ctx, "failed to init pacer", err)
	}
	defer closePacer()

	// 每次运行写入独立的时间戳子目录
	runDir := filepath.Join(outDir, time.Now().Format("2006-01-02_15-04-05"))
	writer := document.NewWriter(runDir)

	assistant := role.NewStoryAssistant(generator, pacer, writer, role.Options{
		Language:         language,
		MaxAttempts:      cfg.Generation.MaxAttempts,
		ContextTailRunes: cfg.Generation.ContextTailRunes,
	})

	result, err := assistant.Run(ctx, flagTopic)
	if err != nil {
		logger.Error(ctx, "story run failed", err)
		return err
	}

	fmt.Println(result)
	return nil
}

// buildPacer 按配置构造限速器，返回清理函数
func buildPacer(cfg *config.Config) (pacing.Pacer, func(), error) {
	switch cfg.Pacing.Mode {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Pacing.Redis.Host, cfg.Pacing.Redis.Port),
			Password: cfg.Pacing.Redis.Password,
			DB:       cfg.Pacing.Redis.DB,
		})
		pacer := pacing.NewRedisPacer(rdb,
			cfg.Pacing.Redis.Key,
			cfg.Pacing.Redis.Limit,
			cfg.Pacing.Redis.Window,
			cfg.Pacing.Redis.PollInterval,
		)
		return pacer, func() { _ = rdb.Close() }, nil
	case "fixed", "":
		return pacing.NewFixedIntervalPacer(cfg.Pacing.Interval), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown pacing mode: %s", cfg.Pacing.Mode)
	}
}
