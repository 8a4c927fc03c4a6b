package main

import (
	"ecommerce_dataset/custom/report"
	"ecommerce_dataset/custom/util"
	"ecommerce_dataset/model"
	"fmt"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

const REPORT_CUSTOMERS = "customers"
const REPORT_PRODUCTS = "products"
const REPORT_CATEGORIES = "categories"

var ALL_REPORTS = []string{REPORT_CUSTOMERS, REPORT_PRODUCTS, REPORT_CATEGORIES}

var reportCmd = &cobra.Command{
	Use:       "report [customers|products|categories]",
	Short:     "Run the analytical reports against the loaded database",
	Long:      `Runs the customer purchase analysis, product performance and category performance reports. Without an argument all three run.`,
	ValidArgs: ALL_REPORTS,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	reports := ALL_REPORTS
	if len(args) == 1 {
		reports = args
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
	return printReports(os.Stdout, engine, datasetCfg.Report, reports)
}

func newEngine(cfg util.ReportConfig, db *gorm.DB) (*report.Engine, error) {
	opts := report.Options{RevenueStatuses: cfg.RevenueStatuses}
	if cfg.AsOf != "" {
		asOf, err := model.ParseDate(cfg.AsOf)
		if err != nil {
			return nil, &model.ConfigurationError{Field: "report.as_of", Message: err.Error()}
		}
		opts.AsOf = asOf
	}
	return report.NewEngine(db, opts), nil
}

func printReports(w io.Writer, engine *report.Engine, cfg util.ReportConfig, reports []string) error {
	for _, name := range reports {
		var err error
		switch name {
		case REPORT_CUSTOMERS:
			err = printCustomers(w, engine, cfg.TopCustomers)
		case REPORT_PRODUCTS:
			err = printProducts(w, engine, cfg.TopProducts)
		case REPORT_CATEGORIES:
			err = printCategories(w, engine)
		default:
			err = fmt.Errorf("unknown report %q", name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printCustomers(w io.Writer, engine *report.Engine, limit int) error {
	rows, err := engine.CustomerPurchaseAnalysis(limit)
	if err != nil {
		return err
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			strconv.Itoa(r.CustomerID), r.CustomerName, r.Country, strconv.Itoa(r.TotalOrders),
			amount(r.TotalSpent), amount(r.AverageOrderValue), r.MostPurchasedCategory, r.FavoriteProduct,
			strconv.Itoa(r.TotalItemsPurchased), amount(r.AverageRatingGiven), r.LastOrderDate.String(),
			strconv.Itoa(r.CustomerLifetimeDays),
		})
	}
	return printTable(w, fmt.Sprintf("Top %d customers by spend", limit), []string{
		"ID", "NAME", "COUNTRY", "ORDERS", "SPENT", "AVG ORDER", "TOP CATEGORY", "FAVORITE PRODUCT",
		"ITEMS", "AVG RATING", "LAST ORDER", "LIFETIME DAYS",
	}, table)
}

func printProducts(w io.Writer, engine *report.Engine, limit int) error {
	rows, err := engine.ProductPerformance(limit)
	if err != nil {
		return err
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			strconv.Itoa(r.ProductID), r.ProductName, r.Category, amount(r.CurrentPrice),
			strconv.Itoa(r.NumberOfOrders), strconv.Itoa(r.TotalQuantitySold), amount(r.TotalRevenue),
			strconv.Itoa(r.TotalReviews), amount(r.AverageRating), fmt.Sprintf("%.1f%%", r.FiveStarPercentage),
		})
	}
	return printTable(w, fmt.Sprintf("Top %d products by revenue", limit), []string{
		"ID", "PRODUCT", "CATEGORY", "PRICE", "ORDERS", "UNITS", "REVENUE", "REVIEWS", "AVG RATING", "5 STAR",
	}, table)
}

func printCategories(w io.Writer, engine *report.Engine) error {
	rows, err := engine.CategoryPerformance()
	if err != nil {
		return err
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.Category, strconv.Itoa(r.TotalProducts), strconv.Itoa(r.TotalOrders), strconv.Itoa(r.TotalUnitsSold),
			amount(r.TotalRevenue), amount(r.AvgProductPrice), amount(r.AvgCategoryRating), strconv.Itoa(r.TotalReviews),
		})
	}
	return printTable(w, "Category performance", []string{
		"CATEGORY", "PRODUCTS", "ORDERS", "UNITS", "REVENUE", "AVG PRICE", "AVG RATING", "REVIEWS",
	}, table)
}

func amount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func printTable(w io.Writer, title string, header []string, rows [][]string) error {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
