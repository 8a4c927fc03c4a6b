package loader

import (
	"bytes"
	"ecommerce_dataset/constants"
	"ecommerce_dataset/custom/csv_store"
	"ecommerce_dataset/custom/generator"
	"ecommerce_dataset/custom/util"
	"ecommerce_dataset/model"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/gorm"
	"regexp"
	"testing"
)

func smallSnapshot(t *testing.T) *model.Snapshot {
	cfg := generator.DefaultConfig()
	cfg.Customers.Count = 20
	cfg.Products.Count = 15
	cfg.Orders.Count = 40
	cfg.Reviews.Count = 25
	s, err := generator.New(cfg).Generate()
	require.NoError(t, err)
	return s
}

func rowsIn(t *testing.T, db *gorm.DB, table string) int64 {
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestLoadCreatesAllTables(t *testing.T) {
	db := util.SqliteTestDB(t)
	s := smallSnapshot(t)

	counts, err := NewLoader(db).Load(s)
	require.NoError(t, err)

	want := s.RowCounts()
	require.Len(t, counts, len(constants.ALL_TABLES))
	for i, table := range constants.ALL_TABLES {
		assert.Equal(t, table, counts[i].Table)
		assert.Equal(t, int64(want[table]), counts[i].Rows, table)
	}

	for _, table := range constants.ALL_TABLES {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&model.OrderItem{}, "idx_order_items_product"))
	assert.True(t, db.Migrator().HasIndex(&model.Order{}, "idx_orders_status"))
}

type foreignKey struct {
	Table string
	From  string
	To    string
}

func TestResetSchemaPointsForeignKeysAtParents(t *testing.T) {
	db := util.SqliteTestDB(t)
	require.NoError(t, NewLoader(db).ResetSchema())

	want := map[string][]string{
		constants.TABLE_CUSTOMERS:   {},
		constants.TABLE_PRODUCTS:    {},
		constants.TABLE_ORDERS:      {"customer_id -> customers.customer_id"},
		constants.TABLE_ORDER_ITEMS: {"order_id -> orders.order_id", "product_id -> products.product_id"},
		constants.TABLE_REVIEWS:     {"customer_id -> customers.customer_id", "product_id -> products.product_id"},
	}
	for _, table := range constants.ALL_TABLES {
		keys := make([]foreignKey, 0)
		require.NoError(t, db.Raw("SELECT \"table\", \"from\", \"to\" FROM pragma_foreign_key_list(?)", table).Scan(&keys).Error)
		got := make([]string, 0, len(keys))
		for _, k := range keys {
			got = append(got, k.From+" -> "+k.Table+"."+k.To)
		}
		assert.ElementsMatch(t, want[table], got, table)
	}
}

func TestLoadTwiceReplacesTables(t *testing.T) {
	db := util.SqliteTestDB(t)
	s := smallSnapshot(t)
	loader := NewLoader(db)

	_, err := loader.Load(s)
	require.NoError(t, err)
	counts, err := loader.Load(s)
	require.NoError(t, err)
	assert.Equal(t, int64(len(s.Orders)), counts[2].Rows)
	assert.Equal(t, int64(len(s.Orders)), rowsIn(t, db, constants.TABLE_ORDERS))
}

func TestLoadRejectsDanglingProduct(t *testing.T) {
	db := util.SqliteTestDB(t)
	s := smallSnapshot(t)
	bad := s.OrderItems[len(s.OrderItems)/2].OrderItemID
	s.OrderItems[len(s.OrderItems)/2].ProductID = 9999

	_, err := NewLoader(db).Load(s)
	require.Error(t, err)

	var violation *model.ConstraintViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, constants.TABLE_ORDER_ITEMS, violation.Entity)
	assert.Equal(t, bad, violation.ID)
	assert.ErrorIs(t, err, model.ErrConstraintViolation)

	// Parents stay committed, the failing table is rolled back entirely
	assert.Equal(t, int64(len(s.Orders)), rowsIn(t, db, constants.TABLE_ORDERS))
	assert.Equal(t, int64(0), rowsIn(t, db, constants.TABLE_ORDER_ITEMS))
}

func TestLoadRejectsDuplicateEmail(t *testing.T) {
	db := util.SqliteTestDB(t)
	s := smallSnapshot(t)
	s.Customers[1].Email = s.Customers[0].Email

	_, err := NewLoader(db).Load(s)
	var violation *model.ConstraintViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, constants.TABLE_CUSTOMERS, violation.Entity)
	assert.Equal(t, s.Customers[1].CustomerID, violation.ID)
	assert.Equal(t, int64(0), rowsIn(t, db, constants.TABLE_CUSTOMERS))
}

func TestLoadRejectsRatingOutOfRange(t *testing.T) {
	db := util.SqliteTestDB(t)
	s := smallSnapshot(t)
	s.Reviews[0].Rating = 6

	_, err := NewLoader(db).Load(s)
	var violation *model.ConstraintViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, constants.TABLE_REVIEWS, violation.Entity)
	assert.Equal(t, s.Reviews[0].ReviewID, violation.ID)
}

func TestExportRoundTrip(t *testing.T) {
	db := util.SqliteTestDB(t)
	s := smallSnapshot(t)
	loader := NewLoader(db)
	_, err := loader.Load(s)
	require.NoError(t, err)

	exported, err := loader.Export()
	require.NoError(t, err)

	tables := func(snapshot *model.Snapshot) []interface{} {
		return []interface{}{snapshot.Customers, snapshot.Products, snapshot.Orders, snapshot.OrderItems, snapshot.Reviews}
	}
	want, got := tables(s), tables(exported)
	for i, table := range constants.ALL_TABLES {
		var wantCSV, gotCSV bytes.Buffer
		require.NoError(t, csv_store.Encode(&wantCSV, want[i]))
		require.NoError(t, csv_store.Encode(&gotCSV, got[i]))
		assert.Equal(t, wantCSV.String(), gotCSV.String(), table)
	}
}

func TestInsertRowsRollsBackOnDuplicateKey(t *testing.T) {
	sqlDB, db, mock := util.DbMock(t)
	defer sqlDB.Close()

	customers := []model.Customer{
		{CustomerID: 1001, FirstName: "Mary", LastName: "Smith", Email: "mary.smith@example.com", RegistrationDate: model.NewDate(2023, 1, 1)},
		{CustomerID: 1002, FirstName: "John", LastName: "Lee", Email: "mary.smith@example.com", RegistrationDate: model.NewDate(2023, 1, 2)},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "customers"`)).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "customers"`)).WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := insertRows(db, constants.TABLE_CUSTOMERS, customers, func(c model.Customer) int { return c.CustomerID })
	var violation *model.ConstraintViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, 1002, violation.ID)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestInsertRowsCommits(t *testing.T) {
	sqlDB, db, mock := util.DbMock(t)
	defer sqlDB.Close()

	products := []model.Product{
		{ProductID: 2001, ProductName: "Sony Pro Headphones", Category: constants.CATEGORY_ELECTRONICS, Brand: "Sony", Price: model.MoneyFromCents(19999)},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "products"`)).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := insertRows(db, constants.TABLE_PRODUCTS, products, func(p model.Product) int { return p.ProductID })
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestRowErrorClassification(t *testing.T) {
	err := rowError(constants.TABLE_ORDERS, 4001, errors.New("connection reset"))
	assert.ErrorIs(t, err, model.ErrIO)
	assert.NotErrorIs(t, err, model.ErrConstraintViolation)

	err = rowError(constants.TABLE_ORDERS, 4001, gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, err, model.ErrConstraintViolation)
}
