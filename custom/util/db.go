package util

import (
	"ecommerce_dataset/model"
	_ "github.com/lib/pq"
	"github.com/romana/rlog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
	"time"
)

// SqliteDSN enables foreign key enforcement, which SQLite leaves off by default.
func SqliteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on"
}

func postgresDialector(c DbConfig) gorm.Dialector {
	return postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        c.DSN(),
	})
}

// OpenDB connects to the configured database. Reads are spread over the
// replicas when any are configured.
func OpenDB(cfg DatabaseConfig) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.Verbose {
		logLevel = logger.Info
	}
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var dialector gorm.Dialector
	target := cfg.Path
	if cfg.Driver == DRIVER_POSTGRES {
		dialector = postgresDialector(cfg.Postgres)
		target = cfg.Postgres.Host + "/" + cfg.Postgres.Database
	} else {
		dialector = sqlite.Open(SqliteDSN(cfg.Path))
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, &model.IOError{Op: "connect database", Path: target, Err: err}
	}
	sqlDB, _ := db.DB()
	if sqlDB != nil {
		if cfg.Driver == DRIVER_SQLITE {
			// The loader owns the file exclusively
			sqlDB.SetMaxOpenConns(1)
		} else {
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetMaxOpenConns(100)
		}
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if len(cfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
		for _, replica := range cfg.Replicas {
			replicas = append(replicas, postgresDialector(replica))
		}
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, &model.IOError{Op: "register replicas", Path: target, Err: err}
		}
		rlog.Infof("Routing reads to %d replicas", len(replicas))
	}
	rlog.Infof("Connected to %s database %s", cfg.Driver, target)
	return db, nil
}

// CloseDB releases the connection pool behind db.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		rlog.Errorf("Close database failed: %s", err.Error())
		return
	}
	if err := sqlDB.Close(); err != nil {
		rlog.Errorf("Close database failed: %s", err.Error())
	}
}
