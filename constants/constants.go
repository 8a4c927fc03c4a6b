package constants

// Tables, in dependency order (parents before children)
const TABLE_CUSTOMERS = "customers"
const TABLE_PRODUCTS = "products"
const TABLE_ORDERS = "orders"
const TABLE_ORDER_ITEMS = "order_items"
const TABLE_REVIEWS = "reviews"

var ALL_TABLES = []string{TABLE_CUSTOMERS, TABLE_PRODUCTS, TABLE_ORDERS, TABLE_ORDER_ITEMS, TABLE_REVIEWS}

// First identifier handed out per table
const CUSTOMER_ID_START = 1001
const PRODUCT_ID_START = 2001
const ORDER_ID_START = 4001
const ORDER_ITEM_ID_START = 5001
const REVIEW_ID_START = 6001

// Order Status
const ORDER_STATUS_PENDING = "Pending"
const ORDER_STATUS_PROCESSING = "Processing"
const ORDER_STATUS_SHIPPED = "Shipped"
const ORDER_STATUS_DELIVERED = "Delivered"
const ORDER_STATUS_CANCELLED = "Cancelled"

var ORDER_STATUSES = []string{
	ORDER_STATUS_PENDING,
	ORDER_STATUS_PROCESSING,
	ORDER_STATUS_SHIPPED,
	ORDER_STATUS_DELIVERED,
	ORDER_STATUS_CANCELLED,
}

// Product categories
const CATEGORY_ELECTRONICS = "Electronics"
const CATEGORY_CLOTHING = "Clothing"
const CATEGORY_HOME_KITCHEN = "Home & Kitchen"
const CATEGORY_BOOKS = "Books"
const CATEGORY_SPORTS = "Sports & Outdoors"
const CATEGORY_BEAUTY = "Beauty"

// Value ranges
const MIN_QUANTITY = 1
const MAX_QUANTITY = 5
const MIN_RATING = 1
const MAX_RATING = 5

// Date layout used in CSV files and database columns
const DATE_LAYOUT = "2006-01-02"

// Error responses
const EMAIL_DOMAINS_EMPTY = "email domain pool is empty"
const COUNTRIES_EMPTY = "no countries configured"
const COUNT_NOT_POSITIVE = "count must be greater than zero"
const RANGE_INVERTED = "range start is after range end"
const POOL_PURCHASES = "purchases"
const DANGLING_REFERENCE = "references a missing row"
const DUPLICATE_KEY = "duplicate key"
const TOTAL_MISMATCH = "total_amount does not equal the sum of item subtotals"
