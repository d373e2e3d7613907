package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"FXAnalyzer/internal/chart"
	"FXAnalyzer/internal/collector"
	"FXAnalyzer/internal/config"
	"FXAnalyzer/internal/export"
	"FXAnalyzer/internal/model"
	"FXAnalyzer/internal/notifier"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stderr)

	cfgPath := flag.String("config", os.Getenv("CONFIG_PATH"), "Path to optional YAML config")
	apiKey := flag.String("key", "", "exchangerate-api key")
	base := flag.String("base", "", "Base currency (e.g. AUD)")
	target := flag.String("target", "", "Target currency (e.g. NZD)")
	days := flag.Int("days", 0, "Lookback window in days (default 30)")
	exportPath := flag.String("export", "", "Write the series as JSON records to this file")
	chartsPath := flag.String("charts", "", "Write chart datasets as JSON to this file")
	metricsFile := flag.String("metrics-file", "", "Write fetch metrics in Prometheus text format to this file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	applyFlags(cfg, *apiKey, *base, *target, *days, *exportPath, *chartsPath, *metricsFile)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	fetcher := collector.NewExchangeRateAPIFetcher(cfg.API.BaseURL, cfg.API.Key, collector.FetcherOptions{
		ProxyURL:          cfg.Proxy,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Registerer:        reg,
	})
	cached := collector.NewCachedFetcher(fetcher, cfg.Cache.TTL, cfg.Cache.CleanupInterval, cfg.Cache.Capacity)
	col := collector.NewCollector(cached)

	code := run(ctx, cfg, col)

	if cfg.Output.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.Output.MetricsFile, reg); err != nil {
			log.Printf("[ERROR] write metrics: %v", err)
		}
	}
	os.Exit(code)
}

func applyFlags(cfg *config.Config, apiKey, base, target string, days int, exportPath, chartsPath, metricsFile string) {
	if apiKey != "" {
		cfg.API.Key = apiKey
	}
	if base != "" {
		cfg.Query.Base = base
	}
	if target != "" {
		cfg.Query.Target = target
	}
	if days != 0 {
		cfg.Query.Days = days
	}
	if exportPath != "" {
		cfg.Output.ExportPath = exportPath
	}
	if chartsPath != "" {
		cfg.Output.ChartsPath = chartsPath
	}
	if metricsFile != "" {
		cfg.Output.MetricsFile = metricsFile
	}
	cfg.Normalize()
}

func run(ctx context.Context, cfg *config.Config, col *collector.Collector) int {
	rep, err := col.Run(ctx, cfg.Query.Base, cfg.Query.Target, cfg.Query.Days)
	if err != nil {
		var empty *collector.EmptyResultError
		var transport *collector.TransportError
		switch {
		case errors.As(err, &empty):
			fmt.Fprint(os.Stderr, notifier.FormatFailures(empty.Failures))
			fmt.Fprintln(os.Stderr, notifier.FailedFetchMessage)
		case errors.As(err, &transport):
			fmt.Fprintf(os.Stderr, "Network error, fetch aborted: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		}
		return 1
	}

	fmt.Println("Data fetched and preprocessed successfully!")
	fmt.Println()
	report := notifier.FormatReport(rep)
	fmt.Print(report)

	writeOutputs(cfg, rep)

	if cfg.Telegram.BotToken != "" {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		if err := tn.Send(ctx, report); err != nil {
			log.Printf("[ERROR] send report: %v", err)
		}
	}
	return 0
}

func writeOutputs(cfg *config.Config, rep *model.Report) {
	var exp export.Exporter = export.NewNoopExporter()
	if cfg.Output.ExportPath != "" {
		exp = export.NewFileExporter(cfg.Output.ExportPath)
	}
	if err := exp.Export(rep.Series); err != nil {
		log.Printf("[ERROR] export series: %v", err)
	} else if loc := exp.Location(); loc != "" {
		fmt.Printf("\nData exported to %s\n", loc)
	}

	if cfg.Output.ChartsPath != "" {
		if err := export.WriteJSON(cfg.Output.ChartsPath, chart.BuildAll(rep)); err != nil {
			log.Printf("[ERROR] write charts: %v", err)
		} else {
			fmt.Printf("Charts written to %s\n", cfg.Output.ChartsPath)
		}
	}
}
