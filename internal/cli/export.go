package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/unithera/vialscan/gen/ent"
	"github.com/unithera/vialscan/internal/common"
	"github.com/unithera/vialscan/internal/export"
	repo "github.com/unithera/vialscan/internal/repository"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved vial records to an XLSX workbook",
	Long: `Query the capture database for saved vial records and write them to an
XLSX inventory workbook. Dates bound the entered timestamp; with only --from
the window runs through today.`,
	Example: `  # Everything entered in February 2025
  vialscan export --from 2025-02-01 --to 2025-02-28 -o february.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	exportCmd.Flags().String("to", "", "End date (YYYY-MM-DD)")
	exportCmd.Flags().StringP("output", "o", "vials.xlsx", "Output file path")
}

func runExport(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	outputPath, _ := cmd.Flags().GetString("output")

	var from, to *time.Time
	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return fmt.Errorf("--from must be YYYY-MM-DD")
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return fmt.Errorf("--to must be YYYY-MM-DD")
		}
		to = &t
	}

	cfg := common.LoadConfig()
	ctx := cmd.Context()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if cfg.Database.DSN != "" {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
	} else {
		entc, err = repo.OpenSQLite(cfg.Database.LocalPath, logger)
	}
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close(entc, pool, logger)

	vials := repo.NewVialRepository(entc, logger)
	svc := export.NewService(vials, logger)

	xlsx, err := svc.ExportVialsXLSX(ctx, from, to)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := os.WriteFile(outputPath, xlsx, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", outputPath, len(xlsx))
	return nil
}
