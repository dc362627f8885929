package csvfile

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"insureAdvisor/domain"
)

// Loader reads the customer and product tables from CSV files. Missing
// required columns fail with domain.SchemaError; blank numeric cells are
// loaded as NaN so the normalizer can mean-fill them.
type Loader struct {
	customersFile string
	productsFile  string
}

func NewLoader(customersFile, productsFile string) *Loader {
	return &Loader{
		customersFile: customersFile,
		productsFile:  productsFile,
	}
}

var customerColumns = []string{
	"customer_id", "age", "income", "marital_status", "has_children",
	"health_condition", "risk_tolerance", "recent_life_event",
}

var productColumns = []string{
	"product_id", "product_name", "coverage_type", "premium", "risk_level",
	"recommended_age_min", "recommended_age_max", "coverage_limit",
}

func (l *Loader) LoadCustomers() ([]domain.Customer, error) {
	rows, idx, err := readTable(l.customersFile, "customers", customerColumns)
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(rows))
	for i, row := range rows {
		id, err := parseUint(row[idx["customer_id"]])
		if err != nil {
			return nil, fmt.Errorf("customers row %d: invalid customer_id: %w", i+1, err)
		}

		customers = append(customers, domain.Customer{
			CustomerID:      uint(id),
			Age:             parseNumber(row[idx["age"]]),
			Income:          parseNumber(row[idx["income"]]),
			MaritalStatus:   row[idx["marital_status"]],
			HasChildren:     parseCount(row[idx["has_children"]]),
			HealthCondition: row[idx["health_condition"]],
			RiskTolerance:   row[idx["risk_tolerance"]],
			RecentLifeEvent: row[idx["recent_life_event"]],
		})
	}

	return customers, nil
}

func (l *Loader) LoadProducts() ([]domain.Product, error) {
	rows, idx, err := readTable(l.productsFile, "products", productColumns)
	if err != nil {
		return nil, err
	}

	// description is optional
	descIdx, hasDesc := idx["description"]

	products := make([]domain.Product, 0, len(rows))
	for i, row := range rows {
		id, err := parseUint(row[idx["product_id"]])
		if err != nil {
			return nil, fmt.Errorf("products row %d: invalid product_id: %w", i+1, err)
		}

		p := domain.Product{
			ProductID:         id,
			ProductName:       row[idx["product_name"]],
			CoverageType:      row[idx["coverage_type"]],
			Premium:           parseNumber(row[idx["premium"]]),
			RiskLevel:         row[idx["risk_level"]],
			RecommendedAgeMin: parseNumber(row[idx["recommended_age_min"]]),
			RecommendedAgeMax: parseNumber(row[idx["recommended_age_max"]]),
			CoverageLimit:     parseNumber(row[idx["coverage_limit"]]),
		}
		if hasDesc {
			p.Description = row[descIdx]
		}
		products = append(products, p)
	}

	return products, nil
}

// readTable loads a CSV file, validates the required header columns and
// returns the data rows plus a column-name index.
func readTable(path, table string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s table: %w", table, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s table: %w", table, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s table is empty", table)
	}

	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[name] = i
	}

	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, nil, domain.SchemaError{Table: table, Column: col}
		}
	}

	return records[1:], idx, nil
}

// parseNumber reads a float cell; blank or unparseable cells become NaN
// and are mean-filled by the normalizer.
func parseNumber(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseCount reads has_children, accepting either a count or a boolean.
func parseCount(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil && b {
		return 1
	}
	return 0
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
