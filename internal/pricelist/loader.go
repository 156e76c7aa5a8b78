package pricelist

import (
	"compress/gzip"
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped sheets from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based sheet loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "pricelist-loader").Logger(),
	}
}

// Load reads a gzipped sheet from filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Sheet, error) {
	l.logger.Info().Str("file", filePath).Msg("loading price list")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open price list")
		return nil, fmt.Errorf("failed to open price list %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	sheet, err := Parse(ctx, gzipReader)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading price list")
		return nil, fmt.Errorf("error reading price list %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(sheet.Products)).
		Int("offers_loaded", len(sheet.Offers)).
		Msg("price list loaded successfully")

	return sheet, nil
}
