package pricelist

import (
	"context"

	"supermarket/internal/model"
)

// Sheet is the content of one price-list file: catalog prices and the
// special offers registered against them.
type Sheet struct {
	Products []model.PricedProduct
	Offers   []model.Offer
}

// Loader defines the interface for loading price-list sheets.
type Loader interface {
	// Load reads a gzipped sheet and returns its records.
	Load(ctx context.Context, path string) (*Sheet, error)
}

// Merge combines sheets in order. A later sheet overrides the price or the
// offer of a product an earlier sheet already named; products keep the
// position of their first appearance.
func Merge(sheets ...*Sheet) *Sheet {
	merged := &Sheet{}
	productIndex := make(map[model.Product]int)
	offerIndex := make(map[model.Product]int)

	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, p := range sheet.Products {
			if i, ok := productIndex[p.Product]; ok {
				merged.Products[i] = p
				continue
			}
			productIndex[p.Product] = len(merged.Products)
			merged.Products = append(merged.Products, p)
		}
		for _, o := range sheet.Offers {
			if i, ok := offerIndex[o.Product()]; ok {
				merged.Offers[i] = o
				continue
			}
			offerIndex[o.Product()] = len(merged.Offers)
			merged.Offers = append(merged.Offers, o)
		}
	}

	return merged
}
