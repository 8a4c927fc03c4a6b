package report

// Queries use @statuses and @limit named parameters and run unchanged on
// SQLite and PostgreSQL.

const CUSTOMER_PURCHASE_SQL = `
WITH customer_orders AS (
    SELECT c.customer_id,
           c.first_name || ' ' || c.last_name AS customer_name,
           c.email,
           c.country,
           c.registration_date,
           COUNT(DISTINCT o.order_id) AS total_orders,
           SUM(o.total_amount) AS total_spent,
           AVG(o.total_amount) AS average_order_value,
           MAX(o.order_date) AS last_order_date
    FROM customers c
    INNER JOIN orders o ON c.customer_id = o.customer_id
    WHERE o.order_status IN @statuses
    GROUP BY c.customer_id, c.first_name, c.last_name, c.email, c.country, c.registration_date
),
customer_categories AS (
    SELECT o.customer_id,
           p.category,
           ROW_NUMBER() OVER (PARTITION BY o.customer_id ORDER BY SUM(oi.quantity) DESC, p.category ASC) AS rn
    FROM orders o
    INNER JOIN order_items oi ON o.order_id = oi.order_id
    INNER JOIN products p ON oi.product_id = p.product_id
    WHERE o.order_status IN @statuses
    GROUP BY o.customer_id, p.category
),
customer_products AS (
    SELECT o.customer_id,
           p.product_name,
           ROW_NUMBER() OVER (PARTITION BY o.customer_id ORDER BY COUNT(*) DESC, p.product_name ASC) AS rn
    FROM orders o
    INNER JOIN order_items oi ON o.order_id = oi.order_id
    INNER JOIN products p ON oi.product_id = p.product_id
    WHERE o.order_status IN @statuses
    GROUP BY o.customer_id, p.product_name
),
customer_items AS (
    SELECT o.customer_id,
           SUM(oi.quantity) AS total_items_purchased
    FROM orders o
    INNER JOIN order_items oi ON o.order_id = oi.order_id
    WHERE o.order_status IN @statuses
    GROUP BY o.customer_id
),
customer_ratings AS (
    SELECT customer_id,
           AVG(rating) AS average_rating_given
    FROM reviews
    GROUP BY customer_id
)
SELECT co.customer_id,
       co.customer_name,
       co.email,
       co.country,
       co.total_orders,
       ROUND(co.total_spent, 2) AS total_spent,
       ROUND(co.average_order_value, 2) AS average_order_value,
       COALESCE(cc.category, '') AS most_purchased_category,
       COALESCE(cp.product_name, '') AS favorite_product,
       COALESCE(ci.total_items_purchased, 0) AS total_items_purchased,
       ROUND(COALESCE(cr.average_rating_given, 0), 2) AS average_rating_given,
       co.registration_date,
       co.last_order_date
FROM customer_orders co
LEFT JOIN customer_categories cc ON co.customer_id = cc.customer_id AND cc.rn = 1
LEFT JOIN customer_products cp ON co.customer_id = cp.customer_id AND cp.rn = 1
LEFT JOIN customer_items ci ON co.customer_id = ci.customer_id
LEFT JOIN customer_ratings cr ON co.customer_id = cr.customer_id
ORDER BY co.total_spent DESC, co.customer_id ASC
LIMIT @limit`

const PRODUCT_PERFORMANCE_SQL = `
WITH product_sales AS (
    SELECT p.product_id,
           p.product_name,
           p.category,
           p.brand,
           p.price AS current_price,
           COUNT(DISTINCT oi.order_id) AS number_of_orders,
           SUM(oi.quantity) AS total_quantity_sold,
           SUM(oi.subtotal) AS total_revenue
    FROM products p
    INNER JOIN order_items oi ON p.product_id = oi.product_id
    INNER JOIN orders o ON oi.order_id = o.order_id
    WHERE o.order_status IN @statuses
    GROUP BY p.product_id, p.product_name, p.category, p.brand, p.price
),
product_reviews AS (
    SELECT product_id,
           COUNT(*) AS total_reviews,
           AVG(rating) AS average_rating,
           SUM(CASE WHEN rating = 5 THEN 1 ELSE 0 END) AS five_star_reviews,
           SUM(CASE WHEN rating = 1 THEN 1 ELSE 0 END) AS one_star_reviews
    FROM reviews
    GROUP BY product_id
)
SELECT ps.product_id,
       ps.product_name,
       ps.category,
       ps.brand,
       ROUND(ps.current_price, 2) AS current_price,
       ps.number_of_orders,
       ps.total_quantity_sold,
       ROUND(ps.total_revenue, 2) AS total_revenue,
       ROUND(ps.total_revenue * 1.0 / ps.total_quantity_sold, 2) AS avg_revenue_per_unit,
       COALESCE(pr.total_reviews, 0) AS total_reviews,
       ROUND(COALESCE(pr.average_rating, 0), 2) AS average_rating,
       COALESCE(pr.five_star_reviews, 0) AS five_star_reviews,
       COALESCE(pr.one_star_reviews, 0) AS one_star_reviews,
       CASE WHEN pr.total_reviews > 0
            THEN ROUND(pr.five_star_reviews * 100.0 / pr.total_reviews, 1)
            ELSE 0 END AS five_star_percentage
FROM product_sales ps
LEFT JOIN product_reviews pr ON ps.product_id = pr.product_id
ORDER BY ps.total_revenue DESC, ps.product_id ASC
LIMIT @limit`

// Reviews are aggregated apart from sales so that joining them cannot
// multiply the item rows.
const CATEGORY_PERFORMANCE_SQL = `
WITH category_sales AS (
    SELECT p.category,
           COUNT(DISTINCT p.product_id) AS total_products,
           COUNT(DISTINCT oi.order_id) AS total_orders,
           SUM(oi.quantity) AS total_units_sold,
           SUM(oi.subtotal) AS total_revenue,
           AVG(oi.unit_price) AS avg_product_price
    FROM products p
    INNER JOIN order_items oi ON p.product_id = oi.product_id
    INNER JOIN orders o ON oi.order_id = o.order_id
    WHERE o.order_status IN @statuses
    GROUP BY p.category
),
category_reviews AS (
    SELECT p.category,
           AVG(r.rating) AS avg_category_rating,
           COUNT(r.review_id) AS total_reviews
    FROM products p
    INNER JOIN reviews r ON p.product_id = r.product_id
    GROUP BY p.category
)
SELECT cs.category,
       cs.total_products,
       cs.total_orders,
       cs.total_units_sold,
       ROUND(cs.total_revenue, 2) AS total_revenue,
       ROUND(cs.avg_product_price, 2) AS avg_product_price,
       ROUND(COALESCE(cr.avg_category_rating, 0), 2) AS avg_category_rating,
       COALESCE(cr.total_reviews, 0) AS total_reviews
FROM category_sales cs
LEFT JOIN category_reviews cr ON cs.category = cr.category
ORDER BY cs.total_revenue DESC, cs.category ASC`

const LATEST_ORDER_SQL = `SELECT MAX(order_date) AS latest FROM orders`

// Orphan checks, one per foreign key
var ORPHAN_CHECKS = []OrphanCheck{
	{Name: "orders.customer_id", SQL: `SELECT COUNT(*) FROM orders o WHERE NOT EXISTS (SELECT 1 FROM customers c WHERE c.customer_id = o.customer_id)`},
	{Name: "order_items.order_id", SQL: `SELECT COUNT(*) FROM order_items oi WHERE NOT EXISTS (SELECT 1 FROM orders o WHERE o.order_id = oi.order_id)`},
	{Name: "order_items.product_id", SQL: `SELECT COUNT(*) FROM order_items oi WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.product_id = oi.product_id)`},
	{Name: "reviews.product_id", SQL: `SELECT COUNT(*) FROM reviews r WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.product_id = r.product_id)`},
	{Name: "reviews.customer_id", SQL: `SELECT COUNT(*) FROM reviews r WHERE NOT EXISTS (SELECT 1 FROM customers c WHERE c.customer_id = r.customer_id)`},
}

const ACTIVE_CUSTOMERS_SQL = `SELECT COUNT(DISTINCT customer_id) FROM orders`

const AVERAGE_ORDER_VALUE_SQL = `SELECT COALESCE(ROUND(AVG(total_amount), 2), 0) FROM orders WHERE order_status <> 'Cancelled'`

const DELIVERED_REVENUE_SQL = `SELECT COALESCE(ROUND(SUM(total_amount), 2), 0) FROM orders WHERE order_status = 'Delivered'`

const AVERAGE_RATING_SQL = `SELECT COALESCE(ROUND(AVG(rating), 2), 0) FROM reviews`

const TOP_CATEGORY_SQL = `
SELECT category, COUNT(*) AS product_count
FROM products
GROUP BY category
ORDER BY product_count DESC, category ASC
LIMIT 1`

// Orders whose total differs from the sum of their items by more than a cent
const TOTAL_MISMATCH_SQL = `
SELECT COUNT(*) FROM (
    SELECT o.order_id
    FROM orders o
    LEFT JOIN order_items oi ON o.order_id = oi.order_id
    GROUP BY o.order_id, o.total_amount
    HAVING ABS(o.total_amount - COALESCE(SUM(oi.subtotal), 0)) > 0.01
) mismatched`

// Orders with no line items at all
const ORDERS_WITHOUT_ITEMS_SQL = `
SELECT COUNT(*) FROM orders o
WHERE NOT EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.order_id)`
