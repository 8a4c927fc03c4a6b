package report

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
	"github.com/romana/rlog"
)

type OrphanCheck struct {
	Name  string
	SQL   string
	Count int64
}

type topCategory struct {
	Category     string
	ProductCount int64
}

// Verification summarises a loaded database.
type Verification struct {
	RowCounts           []model.TableCount
	Orphans             []OrphanCheck
	TotalMismatches     int64
	EmptyOrders         int64
	ActiveCustomers     int64
	AverageOrderValue   float64
	DeliveredRevenue    float64
	AverageRating       float64
	TopCategory         string
	TopCategoryProducts int64
}

// Consistent reports whether no orphan rows, empty orders or total mismatches were found.
func (v *Verification) Consistent() bool {
	for _, o := range v.Orphans {
		if o.Count > 0 {
			return false
		}
	}
	return v.TotalMismatches == 0 && v.EmptyOrders == 0
}

// Verify counts rows, looks for orphaned references and gathers the
// headline business statistics.
func (e *Engine) Verify() (*Verification, error) {
	v := &Verification{}
	for _, table := range constants.ALL_TABLES {
		var n int64
		if err := e.read().Table(table).Count(&n).Error; err != nil {
			return nil, &model.IOError{Op: "count " + table, Err: err}
		}
		v.RowCounts = append(v.RowCounts, model.TableCount{Table: table, Rows: n})
	}

	for _, check := range ORPHAN_CHECKS {
		if err := e.read().Raw(check.SQL).Scan(&check.Count).Error; err != nil {
			return nil, &model.IOError{Op: "orphan check " + check.Name, Err: err}
		}
		if check.Count > 0 {
			rlog.Errorf("%d orphaned rows in %s", check.Count, check.Name)
		}
		v.Orphans = append(v.Orphans, check)
	}

	scalars := []struct {
		op   string
		sql  string
		dest interface{}
	}{
		{"total mismatch", TOTAL_MISMATCH_SQL, &v.TotalMismatches},
		{"orders without items", ORDERS_WITHOUT_ITEMS_SQL, &v.EmptyOrders},
		{"active customers", ACTIVE_CUSTOMERS_SQL, &v.ActiveCustomers},
		{"average order value", AVERAGE_ORDER_VALUE_SQL, &v.AverageOrderValue},
		{"delivered revenue", DELIVERED_REVENUE_SQL, &v.DeliveredRevenue},
		{"average rating", AVERAGE_RATING_SQL, &v.AverageRating},
	}
	for _, q := range scalars {
		if err := e.read().Raw(q.sql).Scan(q.dest).Error; err != nil {
			return nil, &model.IOError{Op: q.op, Err: err}
		}
	}

	var top topCategory
	if err := e.read().Raw(TOP_CATEGORY_SQL).Scan(&top).Error; err != nil {
		return nil, &model.IOError{Op: "top category", Err: err}
	}
	v.TopCategory, v.TopCategoryProducts = top.Category, top.ProductCount
	return v, nil
}
