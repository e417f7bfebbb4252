package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"edacli/internal/analysis"
	"edacli/internal/config"
	"edacli/internal/dataset"
	"edacli/internal/infrastructure"
	"edacli/internal/report"
)

func main() {
	inputPath := flag.String("in", "", "path to the admissions dataset (CSV or XLSX)")
	outputDir := flag.String("out", "", "output directory for charts (defaults to reports/figs)")
	configFile := flag.String("config", "", "optional YAML config file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags win over environment and file settings
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputDir != "" {
		cfg.Figures.Dir = *outputDir
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogger()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger := infrastructure.LoggerWithContext(ctx)

	if cfg.Input.Path == "" {
		logger.Error("No input dataset specified",
			"hint", "pass -in <path> or set EDA_INPUT_PATH")
		os.Exit(1)
	}

	resolved := cfg.ResolveInputPath()
	if !config.FileExists(resolved) {
		logger.Error("Dataset file not found",
			"path", resolved,
			"hint", "check the -in path or EDA_INPUT_PATH")
		os.Exit(1)
	}
	logger.Info("Loading admissions dataset", "path", resolved)

	table, err := dataset.Load(ctx, resolved)
	if err != nil {
		logger.Error("Failed to load dataset", "path", resolved, "error", err)
		os.Exit(1)
	}
	logger.Info("Loaded dataset", "rows", table.NumRows(), "columns", table.NumColumns())

	if dataset.DeriveLengthOfStay(table) {
		logger.Info("Derived length of stay from admission and discharge dates")
	}

	paths := config.NewPaths(cfg)
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	console := report.NewConsole(os.Stdout)
	sink := report.NewChartSink(paths.FiguresDir, cfg.Figures.DPI, console, logger)

	if err := run(table, console, sink, logger); err != nil {
		logger.Error("Report generation failed", "error", err)
		os.Exit(1)
	}

	figsDir, err := filepath.Abs(paths.FiguresDir)
	if err != nil {
		figsDir = paths.FiguresDir
	}
	console.Section("Done")
	console.Printf("Charts written to %s\n", figsDir)
	logger.Info("Report complete", "figures_dir", figsDir)
}

func loadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.LoadFrom(configFile)
	}
	return config.Load()
}

// run walks the analyzers in report order. Each one prints its console
// section before the matching chart is written, so the [saved] line lands
// directly under the numbers it illustrates.
func run(table *dataset.Table, console *report.Console, sink *report.ChartSink, logger *slog.Logger) error {
	console.RenderOverview(analysis.BuildOverview(table))

	console.RenderSummaries(analysis.NumericSummaries(table), analysis.MissingValues(table))

	counts := analysis.AdmissionsByDepartment(table)
	console.RenderDepartmentCounts(counts)
	if len(counts) > 0 {
		labels, values := departmentCountSeries(counts)
		if err := sink.SaveBar("Admissions by Department", "Admissions",
			labels, values, report.FileAdmissionsByDepartment); err != nil {
			return err
		}
	}

	costs := analysis.AverageCostByDepartment(table)
	console.RenderDepartmentCosts(costs)
	if len(costs) > 0 {
		labels, values := departmentValueSeries(costs)
		if err := sink.SaveBar("Average Cost per Department", "Average Cost",
			labels, values, report.FileAvgCostByDepartment); err != nil {
			return err
		}
	}

	overall := analysis.OverallReadmission(table)
	byDept := analysis.ReadmissionByDepartment(table)
	console.RenderReadmission(overall, byDept)
	if len(byDept) > 0 {
		labels, values := departmentValueSeries(analysis.YesRatesDescending(byDept))
		if err := sink.SaveBar("Readmission Rate (Yes) by Department", "Yes %",
			labels, values, report.FileReadmissionYesByDept); err != nil {
			return err
		}
	}

	if matrix, ok := analysis.Correlation(table); ok {
		console.RenderCorrelation(matrix)
		xs, ys := analysis.LengthOfStayCostPairs(table)
		if err := sink.SaveScatter("Length of Stay vs Cost",
			"Length_of_Stay", "Cost", xs, ys, report.FileLengthOfStayVsCost); err != nil {
			return err
		}
	} else {
		logger.Warn("Skipping correlation analysis", "reason", "length of stay or cost column unavailable")
	}

	if months, ok := analysis.MonthlyAdmissions(table); ok {
		console.RenderMonthly(months)
		labels, values := monthSeries(months)
		if err := sink.SaveLine("Monthly Admissions Trend", "Admissions",
			labels, values, report.FileMonthlyAdmissions); err != nil {
			return err
		}
	}

	return nil
}

func departmentCountSeries(counts []analysis.DepartmentCount) ([]string, []float64) {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Department
		values[i] = float64(c.Count)
	}
	return labels, values
}

func departmentValueSeries(entries []analysis.DepartmentValue) ([]string, []float64) {
	labels := make([]string, len(entries))
	values := make([]float64, len(entries))
	for i, e := range entries {
		labels[i] = e.Department
		values[i] = e.Value
	}
	return labels, values
}

func monthSeries(months []analysis.MonthCount) ([]string, []float64) {
	labels := make([]string, len(months))
	values := make([]float64, len(months))
	for i, m := range months {
		labels[i] = m.Month.Format("2006-01")
		values[i] = float64(m.Count)
	}
	return labels, values
}
