package report

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
	"github.com/romana/rlog"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
	"slices"
)

type CustomerPurchase struct {
	CustomerID            int        `json:"customer_id"`
	CustomerName          string     `json:"customer_name"`
	Email                 string     `json:"email"`
	Country               string     `json:"country"`
	TotalOrders           int        `json:"total_orders"`
	TotalSpent            float64    `json:"total_spent"`
	AverageOrderValue     float64    `json:"average_order_value"`
	MostPurchasedCategory string     `json:"most_purchased_category"`
	FavoriteProduct       string     `json:"favorite_product"`
	TotalItemsPurchased   int        `json:"total_items_purchased"`
	AverageRatingGiven    float64    `json:"average_rating_given"`
	RegistrationDate      model.Date `json:"registration_date"`
	LastOrderDate         model.Date `json:"last_order_date"`
	CustomerLifetimeDays  int        `json:"customer_lifetime_days" gorm:"-"`
}

type ProductPerformance struct {
	ProductID          int     `json:"product_id"`
	ProductName        string  `json:"product_name"`
	Category           string  `json:"category"`
	Brand              string  `json:"brand"`
	CurrentPrice       float64 `json:"current_price"`
	NumberOfOrders     int     `json:"number_of_orders"`
	TotalQuantitySold  int     `json:"total_quantity_sold"`
	TotalRevenue       float64 `json:"total_revenue"`
	AvgRevenuePerUnit  float64 `json:"avg_revenue_per_unit"`
	TotalReviews       int     `json:"total_reviews"`
	AverageRating      float64 `json:"average_rating"`
	FiveStarReviews    int     `json:"five_star_reviews"`
	OneStarReviews     int     `json:"one_star_reviews"`
	FiveStarPercentage float64 `json:"five_star_percentage"`
}

type CategoryPerformance struct {
	Category          string  `json:"category"`
	TotalProducts     int     `json:"total_products"`
	TotalOrders       int     `json:"total_orders"`
	TotalUnitsSold    int     `json:"total_units_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgProductPrice   float64 `json:"avg_product_price"`
	AvgCategoryRating float64 `json:"avg_category_rating"`
	TotalReviews      int     `json:"total_reviews"`
}

type Options struct {
	// RevenueStatuses are the order statuses that count as sales.
	RevenueStatuses []string
	// AsOf anchors customer lifetime; zero means the latest order date.
	AsOf model.Date
}

// Engine runs the analytical reports. It only reads.
type Engine struct {
	db   *gorm.DB
	opts Options
}

func NewEngine(db *gorm.DB, opts Options) *Engine {
	if len(opts.RevenueStatuses) == 0 {
		opts.RevenueStatuses = []string{constants.ORDER_STATUS_DELIVERED, constants.ORDER_STATUS_SHIPPED}
	}
	opts.RevenueStatuses = slices.Clone(opts.RevenueStatuses)
	return &Engine{db: db, opts: opts}
}

// read routes a query to a replica when any are registered.
func (e *Engine) read() *gorm.DB {
	return e.db.Clauses(dbresolver.Read)
}

func (e *Engine) params(limit int) map[string]interface{} {
	return map[string]interface{}{
		"statuses": e.opts.RevenueStatuses,
		"limit":    limit,
	}
}

// CustomerPurchaseAnalysis ranks the top customers by total spend.
func (e *Engine) CustomerPurchaseAnalysis(limit int) ([]CustomerPurchase, error) {
	rows := make([]CustomerPurchase, 0, limit)
	if err := e.read().Raw(CUSTOMER_PURCHASE_SQL, e.params(limit)).Scan(&rows).Error; err != nil {
		return nil, &model.IOError{Op: "customer purchase analysis", Err: err}
	}

	asOf, err := e.asOf()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].CustomerLifetimeDays = rows[i].RegistrationDate.DaysUntil(asOf)
	}
	rlog.Debugf("Customer purchase analysis returned %d rows as of %s", len(rows), asOf)
	return rows, nil
}

// ProductPerformance ranks the top products by revenue.
func (e *Engine) ProductPerformance(limit int) ([]ProductPerformance, error) {
	rows := make([]ProductPerformance, 0, limit)
	if err := e.read().Raw(PRODUCT_PERFORMANCE_SQL, e.params(limit)).Scan(&rows).Error; err != nil {
		return nil, &model.IOError{Op: "product performance", Err: err}
	}
	return rows, nil
}

// CategoryPerformance summarises sales and reviews per category.
func (e *Engine) CategoryPerformance() ([]CategoryPerformance, error) {
	rows := make([]CategoryPerformance, 0)
	if err := e.read().Raw(CATEGORY_PERFORMANCE_SQL, e.params(0)).Scan(&rows).Error; err != nil {
		return nil, &model.IOError{Op: "category performance", Err: err}
	}
	return rows, nil
}

type latestOrder struct {
	Latest model.Date
}

func (e *Engine) asOf() (model.Date, error) {
	if !e.opts.AsOf.IsZero() {
		return e.opts.AsOf, nil
	}
	var row latestOrder
	if err := e.read().Raw(LATEST_ORDER_SQL).Scan(&row).Error; err != nil {
		return model.Date{}, &model.IOError{Op: "latest order date", Err: err}
	}
	return row.Latest, nil
}
