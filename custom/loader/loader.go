package loader

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/model"
	"errors"
	"fmt"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/romana/rlog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Loader materialises a snapshot into a relational schema with
// referential-integrity constraints.
type Loader struct {
	db *gorm.DB
}

func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Load replaces the five tables with the snapshot's rows. Each table is
// inserted in its own transaction, so a failing row leaves its table empty
// while the tables loaded before it stay committed.
func (l *Loader) Load(s *model.Snapshot) ([]model.TableCount, error) {
	if err := l.ResetSchema(); err != nil {
		return nil, err
	}

	if err := insertRows(l.db, constants.TABLE_CUSTOMERS, s.Customers, func(c model.Customer) int { return c.CustomerID }); err != nil {
		return nil, err
	}
	if err := insertRows(l.db, constants.TABLE_PRODUCTS, s.Products, func(p model.Product) int { return p.ProductID }); err != nil {
		return nil, err
	}
	if err := insertRows(l.db, constants.TABLE_ORDERS, s.Orders, func(o model.Order) int { return o.OrderID }); err != nil {
		return nil, err
	}
	if err := insertRows(l.db, constants.TABLE_ORDER_ITEMS, s.OrderItems, func(i model.OrderItem) int { return i.OrderItemID }); err != nil {
		return nil, err
	}
	if err := insertRows(l.db, constants.TABLE_REVIEWS, s.Reviews, func(r model.Review) int { return r.ReviewID }); err != nil {
		return nil, err
	}
	return l.RowCounts()
}

// ResetSchema drops the dataset tables, children first, and recreates them
// with their keys, checks and indexes.
func (l *Loader) ResetSchema() error {
	rlog.Info("Dropping existing tables if they exist...")
	if err := l.db.Migrator().DropTable(model.ALL_DATASET_TABLES...); err != nil {
		return &model.IOError{Op: "drop tables", Err: err}
	}
	rlog.Info("Creating tables...")
	if err := l.db.AutoMigrate(model.ALL_DATASET_TABLES...); err != nil {
		return &model.IOError{Op: "create tables", Err: err}
	}
	return nil
}

func insertRows[T any](db *gorm.DB, table string, rows []T, idOf func(T) int) error {
	rlog.Infof("Importing %d rows into %s...", len(rows), table)
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if errCreate := tx.Omit(clause.Associations).Create(&rows[i]).Error; errCreate != nil {
				rlog.Errorf("%s row %d : %s", table, idOf(rows[i]), errCreate.Error())
				return rowError(table, idOf(rows[i]), errCreate)
			}
		}
		return nil
	})
}

func rowError(table string, id int, err error) error {
	if isConstraintError(err) {
		return &model.ConstraintViolationError{Entity: table, ID: id, Rule: "schema", Err: err}
	}
	return &model.IOError{Op: fmt.Sprintf("insert %s row %d", table, id), Err: err}
}

// isConstraintError recognises integrity failures reported by either driver.
func isConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// SQLSTATE class 23: integrity constraint violation
		return pqErr.Code.Class() == "23"
	}
	return false
}

// RowCounts reports the stored rows per table in dependency order.
func (l *Loader) RowCounts() ([]model.TableCount, error) {
	counts := make([]model.TableCount, 0, len(constants.ALL_TABLES))
	for _, table := range constants.ALL_TABLES {
		var n int64
		if err := l.db.Table(table).Count(&n).Error; err != nil {
			return nil, &model.IOError{Op: "count " + table, Err: err}
		}
		counts = append(counts, model.TableCount{Table: table, Rows: n})
	}
	return counts, nil
}
