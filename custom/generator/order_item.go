package generator

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
	"github.com/romana/rlog"
)

// GenerateOrderItems creates the line items of every order, each order holding
// distinct products. The total of each order in orders is overwritten with the
// exact sum of its item subtotals.
func (g *Generator) GenerateOrderItems(seq *Sequence, orders []model.Order, products []model.Product, cfg OrderItemConfig) ([]model.OrderItem, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, &model.EmptyPoolError{Stage: constants.TABLE_ORDER_ITEMS, Pool: constants.TABLE_ORDERS}
	}
	if len(products) == 0 {
		return nil, &model.EmptyPoolError{Stage: constants.TABLE_ORDER_ITEMS, Pool: constants.TABLE_PRODUCTS}
	}
	if cfg.PerOrder.Max > len(products) {
		return nil, configErr("order_items.per_order.max", "more distinct items per order than the %d products", len(products))
	}
	if cfg.CancelledPerOrder.Max > len(products) {
		return nil, configErr("order_items.cancelled_per_order.max", "more distinct items per cancelled order than the %d products", len(products))
	}

	items := make([]model.OrderItem, 0, len(orders)*(cfg.PerOrder.Min+cfg.PerOrder.Max)/2)
	for i := range orders {
		order := &orders[i]
		perOrder := cfg.PerOrder
		if order.OrderStatus == constants.ORDER_STATUS_CANCELLED && cfg.CancelledPerOrder.Max > 0 {
			perOrder = cfg.CancelledPerOrder
		}

		total := model.Money{}
		for _, idx := range g.sample(len(products), g.intIn(perOrder)) {
			product := products[idx]
			quantity := g.intIn(cfg.Quantity)
			item := model.OrderItem{
				OrderItemID: seq.Next(),
				OrderID:     order.OrderID,
				ProductID:   product.ProductID,
				Quantity:    quantity,
				UnitPrice:   product.Price,
				Subtotal:    product.Price.Times(quantity),
			}
			total = total.Plus(item.Subtotal)
			items = append(items, item)
		}
		order.TotalAmount = total
	}
	rlog.Debugf("Generated %d order items, next id %d", len(items), seq.Peek())
	return items, nil
}
