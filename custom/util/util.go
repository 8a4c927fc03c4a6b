package util

import (
	"ecommerce_dataset/constants"
	"ecommerce_dataset/custom/generator"
	"ecommerce_dataset/model"
	"fmt"
	"github.com/romana/rlog"
	"gopkg.in/yaml.v3"
	"os"
	"slices"
)

const DRIVER_SQLITE = "sqlite"
const DRIVER_POSTGRES = "postgres"

type DbConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN renders the libpq keyword/value connection string.
func (c DbConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, sslMode)
}

type DatabaseConfig struct {
	Driver   string     `yaml:"driver"`
	Path     string     `yaml:"path"`
	Postgres DbConfig   `yaml:"postgres"`
	Replicas []DbConfig `yaml:"replicas"`
	Verbose  bool       `yaml:"verbose"`
}

type ReportConfig struct {
	// AsOf anchors customer lifetime; empty means the latest order date.
	AsOf            string   `yaml:"as_of"`
	RevenueStatuses []string `yaml:"revenue_statuses"`
	TopCustomers    int      `yaml:"top_customers"`
	TopProducts     int      `yaml:"top_products"`
}

type DatasetConfig struct {
	DataDir   string           `yaml:"data_dir"`
	Database  DatabaseConfig   `yaml:"database"`
	Generator generator.Config `yaml:"generator"`
	Report    ReportConfig     `yaml:"report"`
}

func DefaultConfig() *DatasetConfig {
	return &DatasetConfig{
		DataDir: "data",
		Database: DatabaseConfig{
			Driver: DRIVER_SQLITE,
			Path:   "ecommerce.db",
			Postgres: DbConfig{
				Host:     "localhost",
				Port:     5432,
				Username: "postgres",
				Database: "ecommerce",
			},
		},
		Generator: generator.DefaultConfig(),
		Report: ReportConfig{
			RevenueStatuses: []string{constants.ORDER_STATUS_DELIVERED, constants.ORDER_STATUS_SHIPPED},
			TopCustomers:    20,
			TopProducts:     15,
		},
	}
}

// GetConf overlays the YAML file onto c. Keys missing from the file keep
// their current values.
func (c *DatasetConfig) GetConf(fileName string) (*DatasetConfig, error) {
	yamlFile, err := os.ReadFile(fileName)
	if err != nil {
		rlog.Errorf("Read yaml file %s failed: %s ", fileName, err.Error())
		return nil, &model.IOError{Op: "read config", Path: fileName, Err: err}
	}
	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		return nil, &model.ConfigurationError{Field: fileName, Message: err.Error()}
	}
	return c, c.Validate()
}

func (c *DatasetConfig) Validate() error {
	if c.DataDir == "" {
		return &model.ConfigurationError{Field: "data_dir", Message: "is required"}
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	for _, status := range c.Report.RevenueStatuses {
		if !slices.Contains(constants.ORDER_STATUSES, status) {
			return &model.ConfigurationError{Field: "report.revenue_statuses", Message: fmt.Sprintf("unknown status %q", status)}
		}
	}
	if c.Report.TopCustomers <= 0 || c.Report.TopProducts <= 0 {
		return &model.ConfigurationError{Field: "report", Message: "top_customers and top_products must be positive"}
	}
	return c.Generator.Validate()
}

func (c DatabaseConfig) Validate() error {
	switch c.Driver {
	case DRIVER_SQLITE:
		if c.Path == "" {
			return &model.ConfigurationError{Field: "database.path", Message: "is required for sqlite"}
		}
	case DRIVER_POSTGRES:
		if c.Postgres.Host == "" || c.Postgres.Database == "" {
			return &model.ConfigurationError{Field: "database.postgres", Message: "host and database are required"}
		}
	default:
		return &model.ConfigurationError{Field: "database.driver", Message: fmt.Sprintf("unsupported driver %q", c.Driver)}
	}
	if len(c.Replicas) > 0 && c.Driver != DRIVER_POSTGRES {
		return &model.ConfigurationError{Field: "database.replicas", Message: "replicas require the postgres driver"}
	}
	return nil
}
