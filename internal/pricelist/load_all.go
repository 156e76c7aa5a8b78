package pricelist

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// LoadAll loads every sheet concurrently and merges them in path order.
// Any failed sheet fails the whole load.
func LoadAll(ctx context.Context, loader Loader, paths []string, logger zerolog.Logger) (*Sheet, error) {
	logger = logger.With().Str("component", "pricelist").Logger()

	type loadResult struct {
		index int
		sheet *Sheet
		err   error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			sheet, err := loader.Load(ctx, path)
			resultChan <- loadResult{index: index, sheet: sheet, err: err}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	sheets := make([]*Sheet, 0, len(paths))
	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", paths[i]).
				Msg("failed to load price list")
			return nil, fmt.Errorf("failed to load price list %s: %w", paths[i], result.err)
		}
		sheets = append(sheets, result.sheet)
	}

	merged := Merge(sheets...)

	logger.Info().
		Int("file_count", len(paths)).
		Int("products", len(merged.Products)).
		Int("offers", len(merged.Offers)).
		Msg("price lists merged")

	return merged, nil
}
