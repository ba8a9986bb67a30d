package sqlite

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"storefront/internal/domain"
)

//go:embed sample_catalog.yaml
var sampleCatalog string

// seedFile is the on-disk catalog seed format
type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Price string `yaml:"price"`
}

// LoadSeed decodes a YAML catalog seed. Products without an id get a random
// one; positions follow file order.
func LoadSeed(r io.Reader) ([]domain.Product, error) {
	var f seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	products := make([]domain.Product, 0, len(f.Products))
	for i, sp := range f.Products {
		id := strings.TrimSpace(sp.ID)
		if id == "" {
			id = uuid.NewString()
		}
		products = append(products, domain.Product{
			ID:        id,
			Title:     strings.TrimSpace(sp.Title),
			PriceText: strings.TrimSpace(sp.Price),
			Position:  i,
		})
	}
	return products, nil
}

// LoadSeedFile decodes the seed at path
func LoadSeedFile(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}

// WriteSeed encodes products in the seed format LoadSeed reads
func WriteSeed(w io.Writer, products []domain.Product) error {
	f := seedFile{Products: make([]seedProduct, 0, len(products))}
	for _, p := range products {
		f.Products = append(f.Products, seedProduct{ID: p.ID, Title: p.Title, Price: p.PriceText})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}
	return enc.Close()
}

// SampleProducts returns the built-in demo catalog
func SampleProducts() []domain.Product {
	products, err := LoadSeed(strings.NewReader(sampleCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded sample catalog is invalid: %v", err))
	}
	return products
}
