package validator

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// validSnapshot is a minimal dataset that satisfies every rule.
func validSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Customers: []model.Customer{
			{CustomerID: 1001, Email: "mary.smith@example.com", RegistrationDate: model.NewDate(2023, 1, 5)},
			{CustomerID: 1002, Email: "john.lee@example.com", RegistrationDate: model.NewDate(2023, 3, 1)},
		},
		Products: []model.Product{
			{ProductID: 2001, Category: constants.CATEGORY_BOOKS, Price: model.MoneyFromCents(1250)},
			{ProductID: 2002, Category: constants.CATEGORY_BEAUTY, Price: model.MoneyFromCents(399)},
		},
		Orders: []model.Order{
			{OrderID: 4001, CustomerID: 1001, OrderDate: model.NewDate(2023, 2, 1), OrderStatus: constants.ORDER_STATUS_DELIVERED, TotalAmount: model.MoneyFromCents(2899)},
			{OrderID: 4002, CustomerID: 1002, OrderDate: model.NewDate(2023, 4, 1), OrderStatus: constants.ORDER_STATUS_SHIPPED, TotalAmount: model.MoneyFromCents(399)},
		},
		OrderItems: []model.OrderItem{
			{OrderItemID: 5001, OrderID: 4001, ProductID: 2001, Quantity: 2, UnitPrice: model.MoneyFromCents(1250), Subtotal: model.MoneyFromCents(2500)},
			{OrderItemID: 5002, OrderID: 4001, ProductID: 2002, Quantity: 1, UnitPrice: model.MoneyFromCents(399), Subtotal: model.MoneyFromCents(399)},
			{OrderItemID: 5003, OrderID: 4002, ProductID: 2002, Quantity: 1, UnitPrice: model.MoneyFromCents(399), Subtotal: model.MoneyFromCents(399)},
		},
		Reviews: []model.Review{
			{ReviewID: 6001, ProductID: 2001, CustomerID: 1001, Rating: 5, ReviewDate: model.NewDate(2023, 2, 10)},
			{ReviewID: 6002, ProductID: 2002, CustomerID: 1002, Rating: 2, ReviewDate: model.NewDate(2023, 4, 1)},
		},
	}
}

// rules collects the rule names of every violation joined in err.
func rules(t *testing.T, err error) []string {
	require.Error(t, err)
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "expected joined errors, got %T", err)
	names := make([]string, 0)
	for _, e := range joined.Unwrap() {
		if nested, ok := e.(interface{ Unwrap() []error }); ok && !isViolation(e) {
			names = append(names, rules(t, nested.(error))...)
			continue
		}
		var violation *model.ConstraintViolationError
		require.True(t, errors.As(e, &violation))
		names = append(names, violation.Rule)
	}
	return names
}

func isViolation(err error) bool {
	_, ok := err.(*model.ConstraintViolationError)
	return ok
}

func TestCheckAcceptsValidSnapshot(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxItemsPerOrder = 5
	limits.Categories = []string{constants.CATEGORY_BOOKS, constants.CATEGORY_BEAUTY}
	assert.NoError(t, Check(validSnapshot(), limits))
}

func TestCheckDuplicateKeysAndEmails(t *testing.T) {
	s := validSnapshot()
	s.Customers[1].CustomerID = 1001
	s.Customers[1].Email = s.Customers[0].Email

	err := CheckCustomers(s.Customers)
	assert.ElementsMatch(t, []string{RULE_PRIMARY_KEY, RULE_UNIQUE_EMAIL}, rules(t, err))
	assert.ErrorIs(t, err, model.ErrConstraintViolation)
}

func TestCheckDanglingReferences(t *testing.T) {
	s := validSnapshot()
	s.Orders[1].CustomerID = 1999
	s.OrderItems[2].ProductID = 2999

	err := Check(s, DefaultLimits())
	assert.Contains(t, rules(t, err), RULE_FOREIGN_KEY)

	var violation *model.ConstraintViolationError
	require.ErrorAs(t, CheckOrders(s.Orders, s.Customers), &violation)
	assert.Equal(t, constants.TABLE_ORDERS, violation.Entity)
	assert.Equal(t, 4002, violation.ID)
}

func TestCheckOrderTotals(t *testing.T) {
	s := validSnapshot()
	s.Orders[0].TotalAmount = model.MoneyFromCents(2900)
	// One cent off is tolerated
	assert.NoError(t, CheckOrderItems(s.OrderItems, s.Orders, s.Products, DefaultLimits()))

	s.Orders[0].TotalAmount = model.MoneyFromCents(2950)
	err := CheckOrderItems(s.OrderItems, s.Orders, s.Products, DefaultLimits())
	assert.Equal(t, []string{RULE_TOTAL_AMOUNT}, rules(t, err))
	assert.Contains(t, err.Error(), constants.TOTAL_MISMATCH)
}

func TestCheckOrderWithoutItems(t *testing.T) {
	s := validSnapshot()
	s.OrderItems = s.OrderItems[:2]

	err := CheckOrderItems(s.OrderItems, s.Orders, s.Products, DefaultLimits())
	assert.Equal(t, []string{RULE_ORDER_HAS_ITEMS}, rules(t, err))
}

func TestCheckItemArithmetic(t *testing.T) {
	s := validSnapshot()
	s.OrderItems[0].Quantity = 6
	s.OrderItems[1].UnitPrice = model.MoneyFromCents(450)

	err := CheckOrderItems(s.OrderItems, s.Orders, s.Products, Limits{MaxItemsPerOrder: 1, MinQuantity: 1, MaxQuantity: 5})
	assert.ElementsMatch(t, []string{RULE_QUANTITY, RULE_SUBTOTAL, RULE_UNIT_PRICE, RULE_SUBTOTAL, RULE_ITEMS_PER_ORDER}, rules(t, err))
}

func TestCheckReviewsArePurchaseGated(t *testing.T) {
	s := validSnapshot()
	// Customer 1002 never bought product 2001
	s.Reviews[1].ProductID = 2001

	err := CheckReviews(s.Reviews, s.Orders, s.OrderItems, s.Customers, s.Products)
	assert.Equal(t, []string{RULE_PURCHASE_GATED}, rules(t, err))
}

func TestCheckChronology(t *testing.T) {
	s := validSnapshot()
	s.Reviews[0].ReviewDate = model.NewDate(2023, 1, 31)
	s.Orders[1].OrderDate = model.NewDate(2023, 2, 28)

	assert.Equal(t, []string{RULE_CHRONOLOGY}, rules(t, CheckReviews(s.Reviews, s.Orders, s.OrderItems, s.Customers, s.Products)))
	assert.Equal(t, []string{RULE_CHRONOLOGY}, rules(t, CheckOrders(s.Orders, s.Customers)))
}

func TestCheckRangesAndEnumerations(t *testing.T) {
	s := validSnapshot()
	s.Reviews[0].Rating = 0
	s.Orders[0].OrderStatus = "Lost"
	s.Products[0].Category = "Toys"

	assert.Equal(t, []string{RULE_RATING}, rules(t, CheckReviews(s.Reviews, s.Orders, s.OrderItems, s.Customers, s.Products)))
	assert.Equal(t, []string{RULE_STATUS}, rules(t, CheckOrders(s.Orders, s.Customers)))
	assert.Equal(t, []string{RULE_CATEGORY}, rules(t, CheckProducts(s.Products, Limits{Categories: []string{constants.CATEGORY_BOOKS, constants.CATEGORY_BEAUTY}})))
	assert.NoError(t, CheckProducts(s.Products, DefaultLimits()))
}
