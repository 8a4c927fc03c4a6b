package model

import (
	"ecommerce_dataset/constants"
)

// ALL_DATASET_TABLES lists the tables in dependency order, parents first.
var ALL_DATASET_TABLES []interface{} = []interface{}{
	&Customer{}, &Product{}, &Order{}, &OrderItem{}, &Review{},
}

type Customer struct {
	CustomerID       int      `json:"customer_id" csv:"customer_id" gorm:"primaryKey;autoIncrement:false"`
	FirstName        string   `json:"first_name" csv:"first_name" gorm:"not null"`
	LastName         string   `json:"last_name" csv:"last_name" gorm:"not null"`
	Email            string   `json:"email" csv:"email" gorm:"unique;not null"`
	Phone            string   `json:"phone" csv:"phone"`
	RegistrationDate Date     `json:"registration_date" csv:"registration_date" gorm:"type:date;not null"`
	Country          string   `json:"country" csv:"country"`
	City             string   `json:"city" csv:"city"`
	PostalCode       string   `json:"postal_code" csv:"postal_code"`
	Orders           []Order  `json:"-" csv:"-" gorm:"foreignKey:CustomerID;references:CustomerID"`
	Reviews          []Review `json:"-" csv:"-" gorm:"foreignKey:CustomerID;references:CustomerID"`
}

func (Customer) TableName() string { return constants.TABLE_CUSTOMERS }

type Product struct {
	ProductID     int         `json:"product_id" csv:"product_id" gorm:"primaryKey;autoIncrement:false"`
	ProductName   string      `json:"product_name" csv:"product_name" gorm:"not null"`
	Category      string      `json:"category" csv:"category" gorm:"not null;index:idx_products_category"`
	Brand         string      `json:"brand" csv:"brand"`
	Price         Money       `json:"price" csv:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int         `json:"stock_quantity" csv:"stock_quantity" gorm:"not null"`
	SupplierID    int         `json:"supplier_id" csv:"supplier_id"`
	OrderItems    []OrderItem `json:"-" csv:"-" gorm:"foreignKey:ProductID;references:ProductID"`
	Reviews       []Review    `json:"-" csv:"-" gorm:"foreignKey:ProductID;references:ProductID"`
}

func (Product) TableName() string { return constants.TABLE_PRODUCTS }

type Order struct {
	OrderID         int         `json:"order_id" csv:"order_id" gorm:"primaryKey;autoIncrement:false"`
	CustomerID      int         `json:"customer_id" csv:"customer_id" gorm:"not null;index:idx_orders_customer"`
	OrderDate       Date        `json:"order_date" csv:"order_date" gorm:"type:date;not null"`
	OrderStatus     string      `json:"order_status" csv:"order_status" gorm:"not null;index:idx_orders_status;check:order_status IN ('Pending','Processing','Shipped','Delivered','Cancelled')"`
	TotalAmount     Money       `json:"total_amount" csv:"total_amount" gorm:"type:decimal(10,2);not null"`
	ShippingAddress string      `json:"shipping_address" csv:"shipping_address"`
	PaymentMethod   string      `json:"payment_method" csv:"payment_method"`
	OrderItems      []OrderItem `json:"-" csv:"-" gorm:"foreignKey:OrderID;references:OrderID"`
}

func (Order) TableName() string { return constants.TABLE_ORDERS }

type OrderItem struct {
	OrderItemID int   `json:"order_item_id" csv:"order_item_id" gorm:"primaryKey;autoIncrement:false"`
	OrderID     int   `json:"order_id" csv:"order_id" gorm:"not null;index:idx_order_items_order"`
	ProductID   int   `json:"product_id" csv:"product_id" gorm:"not null;index:idx_order_items_product"`
	Quantity    int   `json:"quantity" csv:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice   Money `json:"unit_price" csv:"unit_price" gorm:"type:decimal(10,2);not null"`
	Subtotal    Money `json:"subtotal" csv:"subtotal" gorm:"type:decimal(10,2);not null"`
}

func (OrderItem) TableName() string { return constants.TABLE_ORDER_ITEMS }

type Review struct {
	ReviewID   int    `json:"review_id" csv:"review_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID  int    `json:"product_id" csv:"product_id" gorm:"not null;index:idx_reviews_product"`
	CustomerID int    `json:"customer_id" csv:"customer_id" gorm:"not null;index:idx_reviews_customer"`
	Rating     int    `json:"rating" csv:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	ReviewText string `json:"review_text" csv:"review_text"`
	ReviewDate Date   `json:"review_date" csv:"review_date" gorm:"type:date;not null"`
}

func (Review) TableName() string { return constants.TABLE_REVIEWS }

// Snapshot is one complete generated dataset.
type Snapshot struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}

// RowCounts returns the number of rows per table name.
func (s *Snapshot) RowCounts() map[string]int {
	return map[string]int{
		constants.TABLE_CUSTOMERS:   len(s.Customers),
		constants.TABLE_PRODUCTS:    len(s.Products),
		constants.TABLE_ORDERS:      len(s.Orders),
		constants.TABLE_ORDER_ITEMS: len(s.OrderItems),
		constants.TABLE_REVIEWS:     len(s.Reviews),
	}
}

// TableCount is the number of rows stored in one table.
type TableCount struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}
