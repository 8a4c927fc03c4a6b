package main

import (
	"ecommerce_dataset/custom/util"
	"github.com/romana/rlog"
	"github.com/spf13/cobra"
	"os"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate, load and report in one go",
	RunE:  runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	rlog.Info("Step 1: generating dataset")
	snapshot, err := generateDataset(datasetCfg)
	if err != nil {
		return err
	}

	rlog.Info("Step 2: loading database")
	if err := loadDataset(datasetCfg, snapshot); err != nil {
		return err
	}

	rlog.Info("Step 3: running reports")
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer util.CloseDB(db)

	engine, err := newEngine(datasetCfg.Report, db)
	if err != nil {
		return err
	}
	return printReports(os.Stdout, engine, datasetCfg.Report, ALL_REPORTS)
}
