package validator

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
	"errors"
	"fmt"
	"slices"
)

// Rule names carried by ConstraintViolationError
const RULE_PRIMARY_KEY = "primary_key"
const RULE_UNIQUE_EMAIL = "unique_email"
const RULE_FOREIGN_KEY = "foreign_key"
const RULE_STATUS = "order_status"
const RULE_CATEGORY = "category"
const RULE_QUANTITY = "quantity_range"
const RULE_RATING = "rating_range"
const RULE_UNIT_PRICE = "unit_price"
const RULE_SUBTOTAL = "subtotal"
const RULE_ORDER_HAS_ITEMS = "order_has_items"
const RULE_ITEMS_PER_ORDER = "items_per_order"
const RULE_TOTAL_AMOUNT = "total_amount"
const RULE_PURCHASE_GATED = "purchase_gated"
const RULE_CHRONOLOGY = "chronology"

// Limits carries the configurable bounds. Zero values disable a check.
type Limits struct {
	MaxItemsPerOrder int
	MinQuantity      int
	MaxQuantity      int
	Categories       []string
}

func DefaultLimits() Limits {
	return Limits{MinQuantity: constants.MIN_QUANTITY, MaxQuantity: constants.MAX_QUANTITY}
}

// violations collects every broken rule of a table.
type violations struct {
	entity string
	errs   []error
}

func (v *violations) add(id int, rule, format string, args ...interface{}) {
	v.errs = append(v.errs, &model.ConstraintViolationError{
		Entity:  v.entity,
		ID:      id,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *violations) err() error {
	return errors.Join(v.errs...)
}

// Check validates the whole snapshot and joins every violation found.
func Check(s *model.Snapshot, limits Limits) error {
	return errors.Join(
		CheckCustomers(s.Customers),
		CheckProducts(s.Products, limits),
		CheckOrders(s.Orders, s.Customers),
		CheckOrderItems(s.OrderItems, s.Orders, s.Products, limits),
		CheckReviews(s.Reviews, s.Orders, s.OrderItems, s.Customers, s.Products),
	)
}

func CheckCustomers(customers []model.Customer) error {
	v := &violations{entity: constants.TABLE_CUSTOMERS}
	ids := make(map[int]bool, len(customers))
	emails := make(map[string]int, len(customers))
	for _, c := range customers {
		checkKey(v, ids, c.CustomerID, constants.CUSTOMER_ID_START)
		if owner, ok := emails[c.Email]; ok {
			v.add(c.CustomerID, RULE_UNIQUE_EMAIL, "%s %s already used by customer %d", constants.DUPLICATE_KEY, c.Email, owner)
		} else {
			emails[c.Email] = c.CustomerID
		}
	}
	return v.err()
}

func CheckProducts(products []model.Product, limits Limits) error {
	v := &violations{entity: constants.TABLE_PRODUCTS}
	ids := make(map[int]bool, len(products))
	for _, p := range products {
		checkKey(v, ids, p.ProductID, constants.PRODUCT_ID_START)
		if len(limits.Categories) > 0 && !slices.Contains(limits.Categories, p.Category) {
			v.add(p.ProductID, RULE_CATEGORY, "unknown category %q", p.Category)
		}
	}
	return v.err()
}

// CheckOrders verifies customer references, statuses and that no order
// predates its customer's registration.
func CheckOrders(orders []model.Order, customers []model.Customer) error {
	v := &violations{entity: constants.TABLE_ORDERS}
	customerByID := indexCustomers(customers)
	ids := make(map[int]bool, len(orders))
	for _, o := range orders {
		checkKey(v, ids, o.OrderID, constants.ORDER_ID_START)
		if !slices.Contains(constants.ORDER_STATUSES, o.OrderStatus) {
			v.add(o.OrderID, RULE_STATUS, "unknown status %q", o.OrderStatus)
		}
		customer, ok := customerByID[o.CustomerID]
		if !ok {
			v.add(o.OrderID, RULE_FOREIGN_KEY, "customer_id %d %s", o.CustomerID, constants.DANGLING_REFERENCE)
			continue
		}
		if o.OrderDate.Before(customer.RegistrationDate) {
			v.add(o.OrderID, RULE_CHRONOLOGY, "order_date %s is before registration_date %s of customer %d", o.OrderDate, customer.RegistrationDate, customer.CustomerID)
		}
	}
	return v.err()
}

// CheckOrderItems verifies item references and arithmetic, then that every
// order owns at least one item and that its total equals their sum.
func CheckOrderItems(items []model.OrderItem, orders []model.Order, products []model.Product, limits Limits) error {
	v := &violations{entity: constants.TABLE_ORDER_ITEMS}
	productByID := make(map[int]model.Product, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}
	orderIDs := make(map[int]bool, len(orders))
	for _, o := range orders {
		orderIDs[o.OrderID] = true
	}

	ids := make(map[int]bool, len(items))
	itemCount := make(map[int]int, len(orders))
	itemSum := make(map[int]model.Money, len(orders))
	for _, item := range items {
		checkKey(v, ids, item.OrderItemID, constants.ORDER_ITEM_ID_START)
		if !orderIDs[item.OrderID] {
			v.add(item.OrderItemID, RULE_FOREIGN_KEY, "order_id %d %s", item.OrderID, constants.DANGLING_REFERENCE)
		}
		product, ok := productByID[item.ProductID]
		if !ok {
			v.add(item.OrderItemID, RULE_FOREIGN_KEY, "product_id %d %s", item.ProductID, constants.DANGLING_REFERENCE)
		} else if !item.UnitPrice.Equal(product.Price.Decimal) {
			v.add(item.OrderItemID, RULE_UNIT_PRICE, "unit_price %s differs from product price %s", item.UnitPrice, product.Price)
		}
		if item.Quantity < max(limits.MinQuantity, 1) || (limits.MaxQuantity > 0 && item.Quantity > limits.MaxQuantity) {
			v.add(item.OrderItemID, RULE_QUANTITY, "quantity %d out of range", item.Quantity)
		}
		if !item.Subtotal.Within(item.UnitPrice.Times(item.Quantity)) {
			v.add(item.OrderItemID, RULE_SUBTOTAL, "subtotal %s is not %d x %s", item.Subtotal, item.Quantity, item.UnitPrice)
		}
		itemCount[item.OrderID]++
		itemSum[item.OrderID] = itemSum[item.OrderID].Plus(item.Subtotal)
	}

	ov := &violations{entity: constants.TABLE_ORDERS}
	for _, o := range orders {
		n := itemCount[o.OrderID]
		if n == 0 {
			ov.add(o.OrderID, RULE_ORDER_HAS_ITEMS, "order has no items")
			continue
		}
		if limits.MaxItemsPerOrder > 0 && n > limits.MaxItemsPerOrder {
			ov.add(o.OrderID, RULE_ITEMS_PER_ORDER, "%d items exceed the limit of %d", n, limits.MaxItemsPerOrder)
		}
		if sum := itemSum[o.OrderID]; !o.TotalAmount.Within(sum) {
			ov.add(o.OrderID, RULE_TOTAL_AMOUNT, "%s: %s != %s", constants.TOTAL_MISMATCH, o.TotalAmount, sum)
		}
	}
	return errors.Join(v.err(), ov.err())
}

// CheckReviews verifies references and that every review follows a purchase
// of the reviewed product by the reviewing customer.
func CheckReviews(reviews []model.Review, orders []model.Order, items []model.OrderItem, customers []model.Customer, products []model.Product) error {
	v := &violations{entity: constants.TABLE_REVIEWS}
	customerByID := indexCustomers(customers)
	productIDs := make(map[int]bool, len(products))
	for _, p := range products {
		productIDs[p.ProductID] = true
	}
	firstPurchase := earliestPurchases(orders, items)

	ids := make(map[int]bool, len(reviews))
	for _, r := range reviews {
		checkKey(v, ids, r.ReviewID, constants.REVIEW_ID_START)
		if r.Rating < constants.MIN_RATING || r.Rating > constants.MAX_RATING {
			v.add(r.ReviewID, RULE_RATING, "rating %d out of range", r.Rating)
		}
		if _, ok := customerByID[r.CustomerID]; !ok {
			v.add(r.ReviewID, RULE_FOREIGN_KEY, "customer_id %d %s", r.CustomerID, constants.DANGLING_REFERENCE)
		}
		if !productIDs[r.ProductID] {
			v.add(r.ReviewID, RULE_FOREIGN_KEY, "product_id %d %s", r.ProductID, constants.DANGLING_REFERENCE)
		}
		bought, ok := firstPurchase[purchaseKey{r.CustomerID, r.ProductID}]
		if !ok {
			v.add(r.ReviewID, RULE_PURCHASE_GATED, "customer %d never bought product %d", r.CustomerID, r.ProductID)
			continue
		}
		if r.ReviewDate.Before(bought) {
			v.add(r.ReviewID, RULE_CHRONOLOGY, "review_date %s is before the first purchase on %s", r.ReviewDate, bought)
		}
	}
	return v.err()
}

type purchaseKey struct {
	customerID int
	productID  int
}

func earliestPurchases(orders []model.Order, items []model.OrderItem) map[purchaseKey]model.Date {
	orderByID := make(map[int]model.Order, len(orders))
	for _, o := range orders {
		orderByID[o.OrderID] = o
	}
	earliest := make(map[purchaseKey]model.Date, len(items))
	for _, item := range items {
		o, ok := orderByID[item.OrderID]
		if !ok {
			continue
		}
		key := purchaseKey{o.CustomerID, item.ProductID}
		if d, seen := earliest[key]; !seen || o.OrderDate.Before(d) {
			earliest[key] = o.OrderDate
		}
	}
	return earliest
}

func indexCustomers(customers []model.Customer) map[int]model.Customer {
	byID := make(map[int]model.Customer, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
	}
	return byID
}

func checkKey(v *violations, seen map[int]bool, id, start int) {
	if id < start {
		v.add(id, RULE_PRIMARY_KEY, "id below %d", start)
	}
	if seen[id] {
		v.add(id, RULE_PRIMARY_KEY, "%s %d", constants.DUPLICATE_KEY, id)
	}
	seen[id] = true
}
