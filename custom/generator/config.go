package generator

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/custom/validator"
	"ecommerce_dataset/model"
	"fmt"
	"slices"
)

const PRICE_UNIFORM = "uniform"
const PRICE_LOG_UNIFORM = "log-uniform"

type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type PriceRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type DateRange struct {
	Start model.Date `yaml:"start"`
	End   model.Date `yaml:"end"`
}

// Weighted is one value of a weighted choice. All-zero weights mean uniform.
type Weighted struct {
	Value  string `yaml:"value"`
	Weight int    `yaml:"weight"`
}

type RatingWeight struct {
	Rating int `yaml:"rating"`
	Weight int `yaml:"weight"`
}

// Country ties a city pool and a postal code format to a country name.
// In PostalFormat '#' renders a digit and 'A' an upper-case letter.
type Country struct {
	Name         string   `yaml:"name"`
	DialCode     string   `yaml:"dial_code"`
	PostalFormat string   `yaml:"postal_format"`
	Cities       []string `yaml:"cities"`
}

type Category struct {
	Name   string   `yaml:"name"`
	Weight int      `yaml:"weight"`
	Brands []string `yaml:"brands"`
	Items  []string `yaml:"items"`
}

type CustomerConfig struct {
	Count        int       `yaml:"count"`
	Registration DateRange `yaml:"registration"`
	EmailDomains []string  `yaml:"email_domains"`
	Countries    []Country `yaml:"countries"`
}

type ProductConfig struct {
	Count             int        `yaml:"count"`
	Categories        []Category `yaml:"categories"`
	Price             PriceRange `yaml:"price_range"`
	PriceDistribution string     `yaml:"price_distribution"`
	Stock             IntRange   `yaml:"stock_range"`
	Supplier          IntRange   `yaml:"supplier_range"`
}

type OrderConfig struct {
	Count          int        `yaml:"count"`
	Dates          DateRange  `yaml:"date_range"`
	Statuses       []Weighted `yaml:"statuses"`
	PaymentMethods []string   `yaml:"payment_methods"`
}

type OrderItemConfig struct {
	PerOrder IntRange `yaml:"per_order"`
	// CancelledPerOrder applies to Cancelled orders when Max is set.
	CancelledPerOrder IntRange `yaml:"cancelled_per_order"`
	Quantity          IntRange `yaml:"quantity"`
}

type ReviewConfig struct {
	Count   int      `yaml:"count"`
	LagDays IntRange `yaml:"lag_days"`
	// EligibleStatuses restricts reviewable purchases; empty means every order.
	EligibleStatuses []string       `yaml:"eligible_statuses"`
	RatingWeights    []RatingWeight `yaml:"rating_weights"`
}

type Config struct {
	Seed       uint64          `yaml:"seed"`
	Customers  CustomerConfig  `yaml:"customers"`
	Products   ProductConfig   `yaml:"products"`
	Orders     OrderConfig     `yaml:"orders"`
	OrderItems OrderItemConfig `yaml:"order_items"`
	Reviews    ReviewConfig    `yaml:"reviews"`
}

// DefaultConfig returns the configuration of the reference dataset:
// 100 customers, 150 products, 250 orders and 200 reviews.
func DefaultConfig() Config {
	return Config{
		Seed: 42,
		Customers: CustomerConfig{
			Count: 100,
			Registration: DateRange{
				Start: model.NewDate(2022, 1, 1),
				End:   model.NewDate(2024, 6, 30),
			},
			EmailDomains: slices.Clone(defaultEmailDomains),
			Countries:    slices.Clone(defaultCountries),
		},
		Products: ProductConfig{
			Count:             150,
			Categories:        slices.Clone(defaultCategories),
			Price:             PriceRange{Min: 5, Max: 1500},
			PriceDistribution: PRICE_LOG_UNIFORM,
			Stock:             IntRange{Min: 0, Max: 500},
			Supplier:          IntRange{Min: 3001, Max: 3025},
		},
		Orders: OrderConfig{
			Count: 250,
			Dates: DateRange{
				Start: model.NewDate(2023, 1, 1),
				End:   model.NewDate(2025, 10, 31),
			},
			Statuses: []Weighted{
				{Value: constants.ORDER_STATUS_DELIVERED, Weight: 45},
				{Value: constants.ORDER_STATUS_SHIPPED, Weight: 20},
				{Value: constants.ORDER_STATUS_PROCESSING, Weight: 10},
				{Value: constants.ORDER_STATUS_PENDING, Weight: 10},
				{Value: constants.ORDER_STATUS_CANCELLED, Weight: 15},
			},
			PaymentMethods: slices.Clone(defaultPaymentMethods),
		},
		OrderItems: OrderItemConfig{
			PerOrder:          IntRange{Min: 1, Max: 5},
			CancelledPerOrder: IntRange{Min: 1, Max: 3},
			Quantity:          IntRange{Min: constants.MIN_QUANTITY, Max: 3},
		},
		Reviews: ReviewConfig{
			Count:            200,
			LagDays:          IntRange{Min: 1, Max: 30},
			EligibleStatuses: []string{constants.ORDER_STATUS_DELIVERED, constants.ORDER_STATUS_SHIPPED},
			RatingWeights: []RatingWeight{
				{Rating: 5, Weight: 40},
				{Rating: 4, Weight: 30},
				{Rating: 3, Weight: 15},
				{Rating: 2, Weight: 10},
				{Rating: 1, Weight: 5},
			},
		},
	}
}

// Limits derives the validator bounds implied by the configuration.
func (c Config) Limits() validator.Limits {
	maxItems := c.OrderItems.PerOrder.Max
	if c.OrderItems.CancelledPerOrder.Max > maxItems {
		maxItems = c.OrderItems.CancelledPerOrder.Max
	}
	categories := make([]string, 0, len(c.Products.Categories))
	for _, category := range c.Products.Categories {
		categories = append(categories, category.Name)
	}
	return validator.Limits{
		MaxItemsPerOrder: maxItems,
		MinQuantity:      c.OrderItems.Quantity.Min,
		MaxQuantity:      c.OrderItems.Quantity.Max,
		Categories:       categories,
	}
}

// Validate reports the first infeasible parameter.
func (c Config) Validate() error {
	if err := c.Customers.validate(); err != nil {
		return err
	}
	if err := c.Products.validate(); err != nil {
		return err
	}
	if err := c.Orders.validate(); err != nil {
		return err
	}
	if err := c.OrderItems.validate(); err != nil {
		return err
	}
	if c.OrderItems.PerOrder.Max > c.Products.Count {
		return configErr("order_items.per_order.max", "%d exceeds the product count %d", c.OrderItems.PerOrder.Max, c.Products.Count)
	}
	if c.OrderItems.CancelledPerOrder.Max > c.Products.Count {
		return configErr("order_items.cancelled_per_order.max", "%d exceeds the product count %d", c.OrderItems.CancelledPerOrder.Max, c.Products.Count)
	}
	return c.Reviews.validate()
}

func configErr(field, format string, args ...interface{}) error {
	return &model.ConfigurationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (r IntRange) validate(field string, floor int) error {
	if r.Min < floor {
		return configErr(field+".min", "must be at least %d", floor)
	}
	if r.Min > r.Max {
		return configErr(field, constants.RANGE_INVERTED)
	}
	return nil
}

func (r DateRange) validate(field string) error {
	if r.Start.IsZero() || r.End.IsZero() {
		return configErr(field, "start and end are required")
	}
	if r.Start.After(r.End) {
		return configErr(field, constants.RANGE_INVERTED)
	}
	return nil
}

func validateWeights(field string, weights []int) error {
	for i, w := range weights {
		if w < 0 {
			return configErr(fmt.Sprintf("%s[%d].weight", field, i), "must not be negative")
		}
	}
	return nil
}

func (c CustomerConfig) validate() error {
	if c.Count <= 0 {
		return configErr("customers.count", constants.COUNT_NOT_POSITIVE)
	}
	if len(c.EmailDomains) == 0 {
		return configErr("customers.email_domains", constants.EMAIL_DOMAINS_EMPTY)
	}
	if len(c.Countries) == 0 {
		return configErr("customers.countries", constants.COUNTRIES_EMPTY)
	}
	for i, country := range c.Countries {
		if country.Name == "" {
			return configErr(fmt.Sprintf("customers.countries[%d].name", i), "is required")
		}
		if len(country.Cities) == 0 {
			return configErr(fmt.Sprintf("customers.countries[%d].cities", i), "no cities configured for %s", country.Name)
		}
	}
	return c.Registration.validate("customers.registration")
}

func (c ProductConfig) validate() error {
	if c.Count <= 0 {
		return configErr("products.count", constants.COUNT_NOT_POSITIVE)
	}
	if len(c.Categories) == 0 {
		return configErr("products.categories", "no categories configured")
	}
	weights := make([]int, len(c.Categories))
	for i, category := range c.Categories {
		if category.Name == "" || len(category.Brands) == 0 || len(category.Items) == 0 {
			return configErr(fmt.Sprintf("products.categories[%d]", i), "name, brands and items are required")
		}
		weights[i] = category.Weight
	}
	if err := validateWeights("products.categories", weights); err != nil {
		return err
	}
	if c.Price.Min <= 0 || c.Price.Min > c.Price.Max {
		return configErr("products.price_range", "min must be positive and not above max")
	}
	switch c.PriceDistribution {
	case PRICE_UNIFORM, PRICE_LOG_UNIFORM:
	default:
		return configErr("products.price_distribution", "unknown distribution %q", c.PriceDistribution)
	}
	if err := c.Stock.validate("products.stock_range", 0); err != nil {
		return err
	}
	return c.Supplier.validate("products.supplier_range", 1)
}

func (c OrderConfig) validate() error {
	if c.Count <= 0 {
		return configErr("orders.count", constants.COUNT_NOT_POSITIVE)
	}
	if len(c.Statuses) == 0 {
		return configErr("orders.statuses", "no statuses configured")
	}
	weights := make([]int, len(c.Statuses))
	for i, status := range c.Statuses {
		if !slices.Contains(constants.ORDER_STATUSES, status.Value) {
			return configErr(fmt.Sprintf("orders.statuses[%d].value", i), "unknown status %q", status.Value)
		}
		weights[i] = status.Weight
	}
	if err := validateWeights("orders.statuses", weights); err != nil {
		return err
	}
	if len(c.PaymentMethods) == 0 {
		return configErr("orders.payment_methods", "no payment methods configured")
	}
	return c.Dates.validate("orders.date_range")
}

func (c OrderItemConfig) validate() error {
	if err := c.PerOrder.validate("order_items.per_order", 1); err != nil {
		return err
	}
	if c.CancelledPerOrder.Max > 0 {
		if err := c.CancelledPerOrder.validate("order_items.cancelled_per_order", 1); err != nil {
			return err
		}
	}
	if err := c.Quantity.validate("order_items.quantity", constants.MIN_QUANTITY); err != nil {
		return err
	}
	if c.Quantity.Max > constants.MAX_QUANTITY {
		return configErr("order_items.quantity.max", "must be at most %d", constants.MAX_QUANTITY)
	}
	return nil
}

func (c ReviewConfig) validate() error {
	if c.Count <= 0 {
		return configErr("reviews.count", constants.COUNT_NOT_POSITIVE)
	}
	if err := c.LagDays.validate("reviews.lag_days", 0); err != nil {
		return err
	}
	for i, status := range c.EligibleStatuses {
		if !slices.Contains(constants.ORDER_STATUSES, status) {
			return configErr(fmt.Sprintf("reviews.eligible_statuses[%d]", i), "unknown status %q", status)
		}
	}
	if len(c.RatingWeights) == 0 {
		return configErr("reviews.rating_weights", "no ratings configured")
	}
	weights := make([]int, len(c.RatingWeights))
	for i, rw := range c.RatingWeights {
		if rw.Rating < constants.MIN_RATING || rw.Rating > constants.MAX_RATING {
			return configErr(fmt.Sprintf("reviews.rating_weights[%d].rating", i), "must be within %d..%d", constants.MIN_RATING, constants.MAX_RATING)
		}
		weights[i] = rw.Weight
	}
	return validateWeights("reviews.rating_weights", weights)
}
