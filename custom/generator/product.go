package generator

import (
	"ecommerce_dataset/model"
	"fmt"
	"github.com/romana/rlog"
)

// GenerateProducts creates cfg.Count products spread over the weighted categories.
func (g *Generator) GenerateProducts(seq *Sequence, cfg ProductConfig) ([]model.Product, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	weights := make([]int, len(cfg.Categories))
	for i, category := range cfg.Categories {
		weights[i] = category.Weight
	}

	products := make([]model.Product, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		category := cfg.Categories[g.weightedIndex(weights)]
		brand := g.pick(category.Brands)
		adjective := g.pick(productAdjectives)
		item := g.pick(category.Items)

		product := model.Product{
			ProductID:   seq.Next(),
			ProductName: fmt.Sprintf("%s %s %s", brand, adjective, item),
			Category:    category.Name,
			Brand:       brand,
		}
		product.Price = g.price(cfg.Price, cfg.PriceDistribution)
		product.StockQuantity = g.intIn(cfg.Stock)
		product.SupplierID = g.intIn(cfg.Supplier)
		products = append(products, product)
	}
	rlog.Debugf("Generated %d products, next id %d", len(products), seq.Peek())
	return products, nil
}
