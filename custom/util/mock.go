package util

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"path/filepath"
	"sort"
	"testing"
)

// DbMock For unit test usage
func DbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		t.Fatal(err)
	}

	return sqldb, gormdb, mock
}

// SqliteTestDB For unit test usage, a file database removed after the test
func SqliteTestDB(t *testing.T) *gorm.DB {
	db, err := OpenDB(DatabaseConfig{
		Driver: DRIVER_SQLITE,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { CloseDB(db) })
	return db
}

// ObjectToRows For unit test usage. Accepts one object or a slice of objects;
// columns come out in name order.
func ObjectToRows(object interface{}) (*sqlmock.Rows, error) {
	buf, err := json.Marshal(object)
	if err != nil {
		return nil, err
	}
	rowMaps := make([]map[string]interface{}, 0)
	if len(buf) > 0 && buf[0] == '[' {
		err = json.Unmarshal(buf, &rowMaps)
	} else {
		rowMap := make(map[string]interface{})
		err = json.Unmarshal(buf, &rowMap)
		rowMaps = append(rowMaps, rowMap)
	}
	if err != nil {
		return nil, err
	}
	columns := make([]string, 0)
	if len(rowMaps) > 0 {
		for k := range rowMaps[0] {
			columns = append(columns, k)
		}
	}
	sort.Strings(columns)
	rows := sqlmock.NewRows(columns)
	for _, rowMap := range rowMaps {
		values := make([]driver.Value, 0, len(columns))
		for _, column := range columns {
			values = append(values, rowMap[column])
		}
		rows.AddRow(values...)
	}
	return rows, nil
}
