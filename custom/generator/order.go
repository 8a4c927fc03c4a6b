package generator

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
	"fmt"
	"github.com/romana/rlog"
)

// GenerateOrders creates cfg.Count orders for randomly chosen customers. Totals
// stay zero until GenerateOrderItems fills them in.
func (g *Generator) GenerateOrders(seq *Sequence, customers []model.Customer, cfg OrderConfig) ([]model.Order, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, &model.EmptyPoolError{Stage: constants.TABLE_ORDERS, Pool: constants.TABLE_CUSTOMERS}
	}

	weights := make([]int, len(cfg.Statuses))
	for i, status := range cfg.Statuses {
		weights[i] = status.Weight
	}

	orders := make([]model.Order, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		customer := customers[g.rng.IntN(len(customers))]

		order := model.Order{
			OrderID:    seq.Next(),
			CustomerID: customer.CustomerID,
			OrderDate:  g.orderDate(customer.RegistrationDate, cfg.Dates),
		}
		order.OrderStatus = cfg.Statuses[g.weightedIndex(weights)].Value
		order.PaymentMethod = g.pick(cfg.PaymentMethods)
		order.ShippingAddress = fmt.Sprintf("%d %s, %s, %s", 1+g.rng.IntN(9999), g.pick(streetNames), customer.City, customer.PostalCode)
		orders = append(orders, order)
	}
	rlog.Debugf("Generated %d orders, next id %d", len(orders), seq.Peek())
	return orders, nil
}

// orderDate never precedes the registration day. A customer registered after
// the window closes orders on the registration day itself.
func (g *Generator) orderDate(registered model.Date, window DateRange) model.Date {
	start := window.Start
	if registered.After(start) {
		start = registered
	}
	if start.After(window.End) {
		return registered
	}
	return g.dateIn(start, window.End)
}
