//go:build ignore

package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// generateSamplePricelists writes the sheets the API seeds from.
// base.gz:  the catalog plus a 3-for-2 on toothbrushes
// promo.gz: reprices rice and adds one offer of every other type
// Load them in that order (PRICELIST_FILES=data/pricelists/base.gz,data/pricelists/promo.gz)
// so promo prices win.
func main() {
	dataDir := "data/pricelists"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	sheets := map[string][]string{
		"base.gz": {
			"# catalog",
			"product|toothbrush|EACH|0.99",
			"product|toothpaste|EACH|1.79",
			"product|rice|EACH|2.49",
			"product|cherry tomatoes|EACH|0.69",
			"product|apples|KILO|1.99",
			"product|bananas|KILO|1.49",
			"",
			"# offers",
			"offer|toothbrush|EACH|THREE_FOR_TWO|",
		},
		"promo.gz": {
			"product|rice|EACH|2.29",
			"offer|apples|KILO|TEN_PERCENT_DISCOUNT|20",
			"offer|cherry tomatoes|EACH|TWO_FOR_AMOUNT|0.99",
			"offer|toothpaste|EACH|FIVE_FOR_AMOUNT|7.49",
		},
	}

	for filename, lines := range sheets {
		filePath := filepath.Join(dataDir, filename)

		if err := createSheet(filePath, lines); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d lines\n", filePath, len(lines))
	}

	fmt.Println("\nSample price lists created successfully!")
}

func createSheet(filePath string, lines []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintf(gzipWriter, "%s\n", line); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}

	return nil
}
