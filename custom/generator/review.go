package generator

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/custom/validator"
	"ecommerce_dataset/model"
	"fmt"
	"github.com/romana/rlog"
	"slices"
)

// purchase is one (customer, product) pair bought on an order date.
type purchase struct {
	customerID int
	productID  int
	orderDate  model.Date
}

// GenerateReviews samples cfg.Count reviews from the purchases recorded by
// orders and items. Only orders in an eligible status can be reviewed.
func (g *Generator) GenerateReviews(seq *Sequence, orders []model.Order, items []model.OrderItem, cfg ReviewConfig) ([]model.Review, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	purchases, err := reviewablePurchases(orders, items, cfg.EligibleStatuses)
	if err != nil {
		return nil, err
	}
	if len(purchases) == 0 {
		return nil, &model.EmptyPoolError{Stage: constants.TABLE_REVIEWS, Pool: constants.POOL_PURCHASES}
	}

	weights := make([]int, len(cfg.RatingWeights))
	for i, rw := range cfg.RatingWeights {
		weights[i] = rw.Weight
	}

	reviews := make([]model.Review, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		p := purchases[g.rng.IntN(len(purchases))]
		rating := cfg.RatingWeights[g.weightedIndex(weights)].Rating

		review := model.Review{
			ReviewID:   seq.Next(),
			ProductID:  p.productID,
			CustomerID: p.customerID,
			Rating:     rating,
		}
		review.ReviewText = g.pick(reviewTexts[rating])
		review.ReviewDate = p.orderDate.AddDays(g.intIn(cfg.LagDays))
		reviews = append(reviews, review)
	}
	rlog.Debugf("Generated %d reviews from %d purchases, next id %d", len(reviews), len(purchases), seq.Peek())
	return reviews, nil
}

// reviewablePurchases joins items to their orders in item order.
func reviewablePurchases(orders []model.Order, items []model.OrderItem, eligible []string) ([]purchase, error) {
	orderByID := make(map[int]*model.Order, len(orders))
	for i := range orders {
		orderByID[orders[i].OrderID] = &orders[i]
	}

	purchases := make([]purchase, 0, len(items))
	for _, item := range items {
		order, ok := orderByID[item.OrderID]
		if !ok {
			return nil, &model.ConstraintViolationError{
				Entity:  constants.TABLE_ORDER_ITEMS,
				ID:      item.OrderItemID,
				Rule:    validator.RULE_FOREIGN_KEY,
				Message: fmt.Sprintf("order_id %d %s", item.OrderID, constants.DANGLING_REFERENCE),
			}
		}
		if len(eligible) > 0 && !slices.Contains(eligible, order.OrderStatus) {
			continue
		}
		purchases = append(purchases, purchase{
			customerID: order.CustomerID,
			productID:  item.ProductID,
			orderDate:  order.OrderDate,
		})
	}
	return purchases, nil
}
