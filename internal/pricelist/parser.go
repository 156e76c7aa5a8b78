package pricelist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"supermarket/internal/model"
)

const (
	recordProduct = "product"
	recordOffer   = "offer"
	commentPrefix = "#"
	fieldSep      = "|"
)

// Parse reads sheet records from r. Blank lines and lines starting with
// "#" are ignored. Errors carry the 1-based line number.
func Parse(ctx context.Context, r io.Reader) (*Sheet, error) {
	sheet := &Sheet{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%10_000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if err := parseLine(sheet, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return sheet, nil
}

func parseLine(sheet *Sheet, line string) error {
	fields := strings.Split(line, fieldSep)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	switch strings.ToLower(fields[0]) {
	case recordProduct:
		if len(fields) != 4 {
			return model.NewValueError("product record needs 4 fields, got %d", len(fields))
		}
		product, err := model.ParseProduct(fields[1], fields[2])
		if err != nil {
			return err
		}
		price, err := parseNumber("price", fields[3])
		if err != nil {
			return err
		}
		if price < 0 {
			return model.NewValueError("price must be >= 0")
		}
		sheet.Products = append(sheet.Products, model.PricedProduct{Product: product, Price: price})

	case recordOffer:
		if len(fields) != 5 {
			return model.NewValueError("offer record needs 5 fields, got %d", len(fields))
		}
		product, err := model.ParseProduct(fields[1], fields[2])
		if err != nil {
			return err
		}
		offerType, err := model.ParseSpecialOfferType(fields[3])
		if err != nil {
			return err
		}
		argument := 0.0
		if fields[4] != "" {
			if argument, err = parseNumber("argument", fields[4]); err != nil {
				return err
			}
		}
		o, err := model.NewOffer(offerType, product, argument)
		if err != nil {
			return err
		}
		sheet.Offers = append(sheet.Offers, o)

	default:
		return model.NewValueError("unknown record type %q", fields[0])
	}

	return nil
}

func parseNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !model.IsFinite(v) {
		return 0, model.NewTypeError("%s must be numeric, got %q", field, raw)
	}
	return v, nil
}
