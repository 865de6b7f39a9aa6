package app

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk shape of a seed dataset. Records are loaded
// through the same services as interactive input, so invalid entries are
// rejected with the same validation and not-found errors.
type seedFile struct {
	Clients []struct {
		Name  string `yaml:"name"`
		NumCI string `yaml:"num_ci"`
		Email string `yaml:"email"`
	} `yaml:"clients"`
	Products []struct {
		ID   string  `yaml:"id"`
		Name string  `yaml:"name"`
		Cost float64 `yaml:"cost"`
	} `yaml:"products"`
	Sales []struct {
		ID      string `yaml:"id"`
		Client  string `yaml:"client"`  // numCI of an entry in clients
		Product string `yaml:"product"` // id of an entry in products
		Sold    *bool  `yaml:"sold"`    // defaults to true
	} `yaml:"sales"`
}

// loadSeed populates the stores from the YAML dataset at path. Clients and
// products load before sales so the sales can resolve their references.
func (a *App) loadSeed(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return err
	}

	for _, c := range seed.Clients {
		if _, err := a.ClientService.Add(ctx, c.Name, c.NumCI, c.Email); err != nil {
			return fmt.Errorf("client %q: %w", c.NumCI, err)
		}
	}

	for _, p := range seed.Products {
		if _, err := a.ProductService.Add(ctx, p.ID, p.Name, p.Cost); err != nil {
			return fmt.Errorf("product %q: %w", p.ID, err)
		}
	}

	for _, rec := range seed.Sales {
		sale, err := a.SalesService.Add(ctx, rec.Client, rec.Product, rec.ID)
		if err != nil {
			return fmt.Errorf("sale %q: %w", rec.ID, err)
		}
		if rec.Sold != nil && !*rec.Sold {
			if _, err := a.SalesService.MarkSold(ctx, sale.ID(), false); err != nil {
				return fmt.Errorf("sale %q: %w", rec.ID, err)
			}
		}
	}

	return nil
}
