package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var catalogHeader = []string{"product_name", "price", "quantity"}

// LoadCatalogFile reads the seed catalog. The first row must be the
// header; every following row carries one product with a two-decimal
// price and a non-negative quantity.
func LoadCatalogFile(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	if !matchesHeader(header, catalogHeader) {
		return nil, fmt.Errorf("unexpected catalog header %q", strings.Join(header, ","))
	}

	var products []Product
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}
		if len(record) != 3 {
			return nil, fmt.Errorf("catalog row has %d fields, want 3", len(record))
		}

		name := strings.TrimSpace(record[0])
		price, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid price for product %q: %w", name, err)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil || quantity < 0 {
			return nil, fmt.Errorf("invalid quantity for product %q", name)
		}

		products = append(products, Product{
			Name:     name,
			Price:    price,
			Quantity: int32(quantity),
		})
	}

	return products, nil
}

// WriteCatalogFile replaces the catalog file with header plus all rows.
// The new content is written to a temp file in the same directory and
// renamed over the target, so readers never observe a partial file.
func WriteCatalogFile(path string, rows []Product) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	records := make([][]string, 0, len(rows)+1)
	records = append(records, catalogHeader)
	for _, row := range rows {
		records = append(records, []string{
			row.Name,
			row.Price.StringFixed(2),
			strconv.Itoa(int(row.Quantity)),
		})
	}
	if err := w.WriteAll(records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// EnsureCatalogFile loads the catalog from disk, seeding and writing a
// default catalog when the file does not exist yet.
func EnsureCatalogFile(path string, logger *slog.Logger) ([]Product, error) {
	products, err := LoadCatalogFile(path)
	if err == nil {
		return products, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	logger.Info("catalog file not found, seeding default catalog", "path", path)
	products = SeedCatalog()
	if err := WriteCatalogFile(path, products); err != nil {
		return nil, fmt.Errorf("failed to write seed catalog: %w", err)
	}
	return products, nil
}

// SeedCatalog returns the default product set used when no catalog file
// exists yet.
func SeedCatalog() []Product {
	seed := []struct {
		name  string
		price string
	}{
		{"Tux", "19.99"},
		{"Whale", "25.99"},
		{"Elephant", "14.49"},
		{"Dolphin", "17.95"},
		{"Fox", "12.75"},
		{"Python", "21.50"},
		{"Lion", "23.25"},
		{"Bear", "18.80"},
		{"Rabbit", "9.99"},
		{"Giraffe", "27.45"},
	}

	products := make([]Product, 0, len(seed))
	for _, s := range seed {
		products = append(products, Product{
			Name:     s.name,
			Price:    decimal.RequireFromString(s.price),
			Quantity: 100,
		})
	}
	return products
}

func matchesHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if strings.TrimSpace(got[i]) != want[i] {
			return false
		}
	}
	return true
}
