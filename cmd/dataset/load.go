package main

import (
	"ecommerce_dataset/custom/csv_store"
	"ecommerce_dataset/custom/loader"
	"ecommerce_dataset/custom/util"
	"ecommerce_dataset/model"
	"github.com/spf13/cobra"
)

type loadConfig struct {
	dataDir string
}

var loadCfg loadConfig

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the CSV tables into the database, replacing existing tables",
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVarP(&loadCfg.dataDir, "data", "d", "", "Directory holding the CSV files (overrides data_dir)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loadCfg.dataDir != "" {
		datasetCfg.DataDir = loadCfg.dataDir
	}
	snapshot, err := csv_store.ReadSnapshot(datasetCfg.DataDir)
	if err != nil {
		return err
	}
	return loadDataset(datasetCfg, snapshot)
}

func loadDataset(cfg *util.DatasetConfig, snapshot *model.Snapshot) error {
	db, err := util.OpenDB(cfg.Database)
	if err != nil {
		return err
	}
	defer util.CloseDB(db)

	counts, err := loader.NewLoader(db).Load(snapshot)
	if err != nil {
		return err
	}
	logCounts("Loaded", counts)
	return nil
}
