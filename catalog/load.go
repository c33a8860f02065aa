package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"
)

// LoadPaths loads and merges every catalog file matched by the given glob
// patterns. Patterns support doublestar syntax (e.g. "data/**/*.csv").
// Files are loaded in sorted path order so catalogs are deterministic.
func LoadPaths(patterns ...string) (*Catalog, error) {
	var paths []string
	seen := map[string]bool{}
	for _, pattern := range patterns {
		base, pat := doublestar.SplitPattern(pattern)
		matches, err := doublestar.Glob(os.DirFS(base), pat)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			path := filepath.Join(base, match)
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files matched patterns %v", patterns)
	}
	sort.Strings(paths)

	var products []Product
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		products = append(products, loaded...)
	}
	return New(products), nil
}

// LoadFile loads products from a single catalog file. The format is chosen
// by extension: .csv, .yml or .yaml.
func LoadFile(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		products, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog csv %q: %w", path, err)
		}
		return products, nil
	case ".yml", ".yaml":
		products, err := ReadYAML(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog yaml %q: %w", path, err)
		}
		return products, nil
	default:
		return nil, fmt.Errorf("unsupported catalog file format: %q", path)
	}
}

// ReadCSV reads catalog rows from CSV data with a header row. Recognized
// columns are ProductID, ProductName, ProductCategory, ProductDescription,
// ProductPrice and ProductImageURL; unknown columns are ignored.
func ReadCSV(r io.Reader) ([]Product, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("missing header row: %w", err)
	}
	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns["ProductID"]; !ok {
		return nil, fmt.Errorf("missing required column %q", "ProductID")
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var products []Product
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		product := Product{
			ProductID:          field(row, "ProductID"),
			ProductName:        field(row, "ProductName"),
			ProductCategory:    field(row, "ProductCategory"),
			ProductDescription: field(row, "ProductDescription"),
			ProductImageURL:    field(row, "ProductImageURL"),
		}
		if raw := field(row, "ProductPrice"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid price %q: %w", line, raw, err)
			}
			product.ProductPrice = price
		}
		products = append(products, product)
	}
	return products, nil
}

// ReadYAML reads catalog entries from a YAML document holding a "products"
// list, or a bare list of products.
func ReadYAML(r io.Reader) ([]Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Products []Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Products) > 0 {
		return doc.Products, nil
	}
	var products []Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}
