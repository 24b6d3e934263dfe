package main

import (
	"fmt"
	"os"

	_ "go-weather/configs"
	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/fallback"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/dashboard"
	"go-weather/internal/ui"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	// The TUI owns stdout, so logs go to a file
	if path := resource.GetString("dashboard.log-file"); path != "" {
		f, err := log.UseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", path, err)
			os.Exit(1)
		}
		defer f.Close()
	}
	defer log.Sync()

	cfg := ui.LoadConfig()
	log.Info(msg.GetMessage("app.dashboard-start", cfg.AggregatorURL))

	cityCatalog, err := catalog.Load()
	if err != nil {
		log.Error("failed to load city catalog, using built-in cities", zap.Error(err))
		cityCatalog = catalog.Default()
	}

	aggregator := api.NewAggregatorGateway(cfg.AggregatorURL, httpclient.ClientOptions{
		ReadTimeout: cfg.RequestTimeout,
		Logger:      httpclient.ZapLogger{},
	})
	source := dashboard.NewDashboardUseCase(aggregator, cityCatalog, fallback.NewGenerator())

	var prober ui.Prober
	if p, err := ui.NewDialProber(cfg.AggregatorURL, cfg.ConnectivityInterval); err != nil {
		log.Warn("connectivity probe disabled", zap.Error(err))
	} else {
		prober = p
	}

	p := tea.NewProgram(ui.NewModel(source, prober, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
