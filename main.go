package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	googlesheets "google.golang.org/api/sheets/v4"

	"wmcgroup/payroll-processor/database"
	"wmcgroup/payroll-processor/ledger"
	"wmcgroup/payroll-processor/models"
	"wmcgroup/payroll-processor/payroll"
	"wmcgroup/payroll-processor/reports"
	"wmcgroup/payroll-processor/service"
	"wmcgroup/payroll-processor/service/external"
	"wmcgroup/payroll-processor/service/sheets"
	"wmcgroup/payroll-processor/service/stores"
)

const outputDir = "output/payroll_allocation"

func setupDB() {
	log.Info("Setting up database ...")
	if err := database.Setup(); err != nil {
		log.Errorf("failed to setup database: %v", err)
		return
	}
	db := database.GetDB()
	defer database.ReleaseDB()

	db.AutoMigrate(&models.AllocationRun{})
}

func recordRun(year int, month int, outcome payroll.Outcome) {
	if !database.Configured() {
		return
	}

	db := database.GetDB()
	defer database.ReleaseDB()

	run := models.NewAllocationRun(outcome.DocNumber, year, month, string(outcome.Status))
	run.EntryURL = outcome.EntryURL
	run.WarningCount = len(outcome.Warnings)
	if outcome.Status == payroll.StatusSuccess {
		run.TotalGrossEarnings = outcome.Summary.TotalGrossEarnings.StringFixed(2)
		run.TotalEmployerTaxes = outcome.Summary.TotalEmployerTaxes.StringFixed(2)
	}

	if tx := db.Create(run); tx.Error != nil {
		log.Errorf("failed to record allocation run: %v", tx.Error)
	}
}

func fetchExport(year int, month int) ([]byte, error) {
	pk, err := os.ReadFile("creds/id_rsa")
	if err != nil {
		return nil, fmt.Errorf("failed to read sftp private key: %w", err)
	}

	config := external.SFTPConfig{
		Username:   os.Getenv("GUSTO_SFTP_USER"),
		PrivateKey: string(pk),
		Server:     os.Getenv("GUSTO_SFTP_SERVER"),
		Timeout:    time.Second * 30,
	}

	client, err := external.NewExportClient(config)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.FetchLocationExport(year, month)
}

func appendTrackingRow(ctx context.Context, outcome payroll.Outcome) error {
	spreadsheetID := os.Getenv("ALLOCATION_SPREADSHEET_ID")
	keyB64 := os.Getenv("KEY_JSON_BASE64")
	if spreadsheetID == "" || keyB64 == "" {
		log.Debug("tracking spreadsheet not configured, skipping")
		return nil
	}

	credBytes, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return fmt.Errorf("failed to base64 decode KEY_JSON_BASE64: %w", err)
	}

	sheetsSrv, err := googlesheets.NewService(ctx, option.WithCredentialsJSON(credBytes))
	if err != nil {
		return fmt.Errorf("unable initiate google sheets client: %w", err)
	}

	client := sheets.NewClient(sheetsSrv)
	row := []interface{}{
		outcome.DocNumber,
		outcome.Summary.TotalGrossEarnings.StringFixed(2),
		outcome.Summary.TotalEmployerTaxes.StringFixed(2),
		len(outcome.Warnings),
		outcome.EntryURL,
	}

	return client.AppendRow(ctx, spreadsheetID, "Allocations", row)
}

func writeReports(year int, month int, outcome payroll.Outcome) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		log.Errorf("failed to create %s: %v", outputDir, err)
		return
	}

	label := service.MonthLabel(year, month)

	pdfPath := fmt.Sprintf("%s/allocation_%s.pdf", outputDir, label)
	if err := reports.WriteAllocationPDF(pdfPath, year, month, outcome); err != nil {
		log.Errorf("failed to write %s: %v", pdfPath, err)
	}

	csvPath := fmt.Sprintf("%s/allocation_%s.csv", outputDir, label)
	f, err := os.Create(csvPath)
	if err != nil {
		log.Errorf("failed to create %s: %v", csvPath, err)
		return
	}
	defer f.Close()

	if err := reports.BuildSummaryRows(outcome).ToCSV(f); err != nil {
		log.Errorf("failed to write %s: %v", csvPath, err)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	now := time.Now()
	year := flag.Int("year", now.Year(), "target year")
	month := flag.Int("month", int(now.Month()), "target month (1-12)")
	file := flag.String("file", "", "path to a Total By Location export; fetched over SFTP when empty")
	allowUpdate := flag.Bool("allow-update", false, "replace the lines of an existing journal entry")
	flag.Parse()

	if *month < 1 || *month > 12 {
		log.Fatalf("invalid month %d", *month)
	}

	if database.Configured() {
		setupDB()
	}

	var content []byte
	var err error
	if *file != "" {
		content, err = os.ReadFile(*file)
		if err != nil {
			log.Fatalf("failed to read %s: %v", *file, err)
		}
	} else {
		content, err = fetchExport(*year, *month)
		if err != nil {
			log.Fatalf("failed to fetch export: %v", err)
		}
	}

	// The real ledger connection is provisioned outside this repository; runs
	// from this CLI post against an in-memory ledger and report what would be
	// saved.
	allocator := payroll.NewAllocator(ledger.NewDryRunClient(), stores.Load())

	outcome, err := allocator.Process(*year, *month, content, *allowUpdate)
	if err != nil {
		log.Fatalf("payroll allocation failed: %v", err)
	}

	recordRun(*year, *month, outcome)

	switch outcome.Status {
	case payroll.StatusNoData:
		log.Warnf("no payroll data found for %s", outcome.DocNumber)
		os.Exit(1)
	case payroll.StatusConflict:
		log.Warnf("journal entry %s already exists: %s (re-run with -allow-update to replace it)",
			outcome.DocNumber, outcome.EntryURL)
		os.Exit(1)
	}

	writeReports(*year, *month, outcome)

	if err := appendTrackingRow(context.Background(), outcome); err != nil {
		log.Errorf("failed to append tracking row: %v", err)
	}

	fmt.Printf("Journal entry %s saved (%d stores)\n", outcome.DocNumber, len(outcome.Summary.StoresProcessed))
	for _, warning := range outcome.Warnings {
		fmt.Printf("WARNING: %s\n", warning.Message)
	}
	if outcome.EntryURL != "" {
		fmt.Printf("Review at: %s\n", outcome.EntryURL)
	}
}
