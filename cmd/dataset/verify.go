package main

import (
	"ecommerce_dataset/custom/csv_store"
	"ecommerce_dataset/custom/report"
	"ecommerce_dataset/custom/util"
	"ecommerce_dataset/custom/validator"
	"errors"
	"fmt"
	"github.com/romana/rlog"
	"github.com/spf13/cobra"
	"io"
	"os"
)

type verifyConfig struct {
	skipFiles    bool
	skipDatabase bool
}

var verifyCfg verifyConfig

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the CSV files and the loaded database for integrity violations",
	Long: `Validates every invariant of the CSV dataset (keys, references, order totals,
purchase-gated reviews, chronology), then counts rows and orphaned references in
the database and prints headline statistics.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().BoolVar(&verifyCfg.skipFiles, "skip-files", false, "Do not validate the CSV files")
	verifyCmd.Flags().BoolVar(&verifyCfg.skipDatabase, "skip-database", false, "Do not inspect the database")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if !verifyCfg.skipFiles {
		snapshot, err := csv_store.ReadSnapshot(datasetCfg.DataDir)
		if err != nil {
			return err
		}
		if err := validator.Check(snapshot, datasetCfg.Generator.Limits()); err != nil {
			return err
		}
		rlog.Infof("CSV dataset in %s satisfies every invariant", datasetCfg.DataDir)
	}
	if verifyCfg.skipDatabase {
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer util.CloseDB(db)

	engine, err := newEngine(datasetCfg.Report, db)
	if err != nil {
		return err
	}
	verification, err := engine.Verify()
	if err != nil {
		return err
	}
	printVerification(os.Stdout, verification)
	if !verification.Consistent() {
		return errors.New("database failed integrity verification")
	}
	return nil
}

func printVerification(w io.Writer, v *report.Verification) {
	rows := make([][]string, 0, len(v.RowCounts))
	for _, count := range v.RowCounts {
		rows = append(rows, []string{count.Table, fmt.Sprint(count.Rows)})
	}
	printTable(w, "Row counts", []string{"TABLE", "ROWS"}, rows)

	rows = rows[:0]
	for _, orphan := range v.Orphans {
		rows = append(rows, []string{orphan.Name, fmt.Sprint(orphan.Count)})
	}
	rows = append(rows, []string{"orders.total_amount mismatches", fmt.Sprint(v.TotalMismatches)})
	rows = append(rows, []string{"orders without items", fmt.Sprint(v.EmptyOrders)})
	printTable(w, "Integrity", []string{"CHECK", "VIOLATIONS"}, rows)

	printTable(w, "Business statistics", []string{"METRIC", "VALUE"}, [][]string{
		{"Active customers", fmt.Sprint(v.ActiveCustomers)},
		{"Average order value", amount(v.AverageOrderValue)},
		{"Delivered revenue", amount(v.DeliveredRevenue)},
		{"Average rating", amount(v.AverageRating)},
		{"Most common category", fmt.Sprintf("%s (%d products)", v.TopCategory, v.TopCategoryProducts)},
	})
}
