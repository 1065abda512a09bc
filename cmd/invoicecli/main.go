package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pdftodata/invoice-extraction/client"
	"github.com/pdftodata/invoice-extraction/config"
	"github.com/pdftodata/invoice-extraction/service"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "invoicecli",
		Short:   "Batch invoice extraction",
		Long:    "Extracts structured invoice records from PDF files and writes one JSON artifact per input.",
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	var outDir string
	var workers int

	cmd := &cobra.Command{
		Use:   "extract <invoice.pdf> [more.pdf...]",
		Short: "Extract invoice data from one or more PDFs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()

			tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
			defer tesseractClient.Close()

			svc := service.NewInvoiceService(tesseractClient, service.NewPDFProcessor(), cfg.ParserOptions())

			if workers < 1 {
				workers = 1
			}

			// Documents are independent; fan out across a bounded pool.
			sem := make(chan struct{}, workers)
			var wg sync.WaitGroup
			var mu sync.Mutex
			var failed int

			for _, path := range args {
				wg.Add(1)
				go func(path string) {
					defer wg.Done()
					sem <- struct{}{}
					defer func() { <-sem }()

					if err := processFile(svc, path, outDir); err != nil {
						fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
						mu.Lock()
						failed++
						mu.Unlock()
					}
				}(path)
			}
			wg.Wait()

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "directory for JSON output (default: next to each input)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of documents to process concurrently")
	return cmd
}

func processFile(svc *service.InvoiceService, path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	record, _, err := svc.ExtractFromBytes(filepath.Base(path), data, "")
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	outPath := filepath.Join(dir, base)

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("%s -> %s\n", path, outPath)
	return nil
}
