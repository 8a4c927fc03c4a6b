package main

import (
	"ecommerce_dataset/custom/util"
	"ecommerce_dataset/model"
	"github.com/romana/rlog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"os"
)

type rootConfig struct {
	configFile string
	verbose    bool
}

var rootCfg rootConfig

// datasetCfg is resolved once per invocation before any command runs
var datasetCfg *util.DatasetConfig

var rootCmd = &cobra.Command{
	Use:   "dataset [command]",
	Short: "Synthetic e-commerce dataset: generate CSV files, load them into a database and run reports",
	Long: `Generates five related CSV tables (customers, products, orders, order_items, reviews),
loads them into SQLite or PostgreSQL with referential-integrity constraints and runs
analytical reports over the loaded data.`,
	SilenceUsage:      true,
	PersistentPreRunE: resolveConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootCfg.configFile, "config", "c", "", "YAML configuration file (defaults apply when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&rootCfg.verbose, "verbose", "v", false, "Log every SQL statement")
}

func resolveConfig(cmd *cobra.Command, args []string) error {
	cfg := util.DefaultConfig()
	if rootCfg.configFile != "" {
		if _, err := cfg.GetConf(rootCfg.configFile); err != nil {
			return err
		}
	}
	if rootCfg.verbose {
		cfg.Database.Verbose = true
	}
	datasetCfg = cfg
	return nil
}

func openDatabase() (*gorm.DB, error) {
	return util.OpenDB(datasetCfg.Database)
}

func logCounts(prefix string, counts []model.TableCount) {
	for _, count := range counts {
		rlog.Infof("%s %s: %d rows", prefix, count.Table, count.Rows)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rlog.Error(err.Error())
		os.Exit(1)
	}
}
