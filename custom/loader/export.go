package loader

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
)

// Export reads every table back ordered by primary key.
func (l *Loader) Export() (*model.Snapshot, error) {
	s := &model.Snapshot{}
	queries := []struct {
		table string
		key   string
		dest  interface{}
	}{
		{constants.TABLE_CUSTOMERS, "customer_id", &s.Customers},
		{constants.TABLE_PRODUCTS, "product_id", &s.Products},
		{constants.TABLE_ORDERS, "order_id", &s.Orders},
		{constants.TABLE_ORDER_ITEMS, "order_item_id", &s.OrderItems},
		{constants.TABLE_REVIEWS, "review_id", &s.Reviews},
	}
	for _, q := range queries {
		if err := l.db.Order(q.key).Find(q.dest).Error; err != nil {
			return nil, &model.IOError{Op: "export " + q.table, Err: err}
		}
	}
	return s, nil
}
