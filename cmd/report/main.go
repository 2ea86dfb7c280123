package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hubxp/backoffice-api/internal/application/service"
	"github.com/hubxp/backoffice-api/internal/config"
	"github.com/hubxp/backoffice-api/internal/infrastructure/database"
	"github.com/hubxp/backoffice-api/internal/infrastructure/repository"
)

// reportFailure is the structured payload emitted when the run aborts.
// Consumers watching the job output key off statusCode.
type reportFailure struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

func main() {
	startFlag := flag.String("start", "", "report window start (YYYY-MM-DD), defaults to REPORT_WINDOW_DAYS ago")
	endFlag := flag.String("end", "", "report window end (YYYY-MM-DD), defaults to now")
	outFlag := flag.String("out", "", "write the report JSON to a file instead of stdout")
	flag.Parse()

	cfg := config.Load()

	start, end, err := resolveWindow(cfg, *startFlag, *endFlag)
	if err != nil {
		fail("Invalid report window", err)
	}

	db, err := database.NewMongoDatabase(&cfg.Mongo)
	if err != nil {
		fail("Failed to connect to database", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if derr := database.Disconnect(disconnectCtx, db); derr != nil {
			log.Printf("Warning: Failed to disconnect: %v", derr)
		}
	}()

	analyticsRepo := repository.NewAnalyticsRepository(db)
	reportService := service.NewReportService(analyticsRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := reportService.GenerateSalesReport(ctx, start, end)
	if err != nil {
		fail("Failed to generate sales report", err)
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fail("Failed to encode sales report", err)
	}

	if *outFlag != "" {
		if err := os.WriteFile(*outFlag, payload, 0o644); err != nil {
			fail("Failed to write report file", err)
		}
		log.Printf("Sales report written to %s", *outFlag)
		return
	}

	fmt.Println(string(payload))
}

// resolveWindow applies the configured default window when the caller
// omits either bound. The end of the window is always inclusive of the
// current instant when left unset.
func resolveWindow(cfg *config.Config, startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()

	end := now
	if endStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", endStr, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endStr, err)
		}
		// Include the whole final day.
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	windowDays := cfg.Report.WindowDays
	if windowDays <= 0 {
		windowDays = 30
	}

	start := end.AddDate(0, 0, -windowDays)
	if startStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", startStr, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startStr, err)
		}
		start = parsed
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date %s is after end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return start, end, nil
}

func fail(message string, err error) {
	payload, _ := json.Marshal(reportFailure{
		StatusCode: 500,
		Message:    message,
		Error:      err.Error(),
	})
	fmt.Fprintln(os.Stderr, string(payload))
	os.Exit(1)
}
