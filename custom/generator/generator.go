package generator

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/custom/validator"
	"ecommerce_dataset/model"
	"fmt"
	"github.com/romana/rlog"
	"math/rand/v2"
)

// Generator produces a dataset from a single seeded source. Two generators
// built from equal configurations yield identical snapshots.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

func New(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// Generate runs every stage in dependency order and checks each table once
// it is complete. Nothing is returned when a stage fails.
func (g *Generator) Generate() (*model.Snapshot, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	limits := g.cfg.Limits()
	s := &model.Snapshot{}
	var err error

	rlog.Infof("Generating dataset with seed %d", g.cfg.Seed)

	s.Customers, err = g.GenerateCustomers(NewSequence(constants.CUSTOMER_ID_START), g.cfg.Customers)
	if err == nil {
		err = validator.CheckCustomers(s.Customers)
	}
	if err != nil {
		return nil, stageErr(constants.TABLE_CUSTOMERS, err)
	}

	s.Products, err = g.GenerateProducts(NewSequence(constants.PRODUCT_ID_START), g.cfg.Products)
	if err == nil {
		err = validator.CheckProducts(s.Products, limits)
	}
	if err != nil {
		return nil, stageErr(constants.TABLE_PRODUCTS, err)
	}

	s.Orders, err = g.GenerateOrders(NewSequence(constants.ORDER_ID_START), s.Customers, g.cfg.Orders)
	if err == nil {
		err = validator.CheckOrders(s.Orders, s.Customers)
	}
	if err != nil {
		return nil, stageErr(constants.TABLE_ORDERS, err)
	}

	s.OrderItems, err = g.GenerateOrderItems(NewSequence(constants.ORDER_ITEM_ID_START), s.Orders, s.Products, g.cfg.OrderItems)
	if err == nil {
		err = validator.CheckOrderItems(s.OrderItems, s.Orders, s.Products, limits)
	}
	if err != nil {
		return nil, stageErr(constants.TABLE_ORDER_ITEMS, err)
	}

	s.Reviews, err = g.GenerateReviews(NewSequence(constants.REVIEW_ID_START), s.Orders, s.OrderItems, g.cfg.Reviews)
	if err == nil {
		err = validator.CheckReviews(s.Reviews, s.Orders, s.OrderItems, s.Customers, s.Products)
	}
	if err != nil {
		return nil, stageErr(constants.TABLE_REVIEWS, err)
	}

	for _, table := range constants.ALL_TABLES {
		rlog.Infof("Generated %d %s", s.RowCounts()[table], table)
	}
	return s, nil
}

func stageErr(stage string, err error) error {
	return fmt.Errorf("generate %s: %w", stage, err)
}
