package main

import (
	"ecommerce_dataset/custom/csv_store"
	"ecommerce_dataset/custom/loader"
	"ecommerce_dataset/custom/util"
	"github.com/romana/rlog"
	"github.com/spf13/cobra"
)

type exportConfig struct {
	outDir string
}

var exportCfg exportConfig

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the database tables back to CSV files",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportCfg.outDir, "out", "o", "export", "Output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer util.CloseDB(db)

	snapshot, err := loader.NewLoader(db).Export()
	if err != nil {
		return err
	}
	if err := csv_store.WriteSnapshot(exportCfg.outDir, snapshot); err != nil {
		return err
	}
	rlog.Infof("Exported %d orders to %s", len(snapshot.Orders), exportCfg.outDir)
	return nil
}
