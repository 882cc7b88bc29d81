// Package catalog loads the price list and photographer directory from a
// YAML file and serves it as a read-only catalog repository.
package catalog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type serviceRecord struct {
	ID             string   `yaml:"id" validate:"required"`
	Name           string   `yaml:"name" validate:"required"`
	Description    string   `yaml:"description"`
	BasePrice      string   `yaml:"base_price" validate:"required,numeric"`
	EligibleAddons []string `yaml:"eligible_addons" validate:"dive,required"`
}

type addonRecord struct {
	ID                 string   `yaml:"id" validate:"required"`
	Name               string   `yaml:"name" validate:"required"`
	Price              string   `yaml:"price" validate:"required,numeric"`
	ApplicableServices []string `yaml:"applicable_services" validate:"min=1,dive,required"`
}

type photographerRecord struct {
	ID             string   `yaml:"id" validate:"required"`
	Name           string   `yaml:"name" validate:"required"`
	Specialties    []string `yaml:"specialties" validate:"min=1,dive,required"`
	AvailableDates []string `yaml:"available_dates" validate:"dive,datetime=2006-01-02"`
	TravelFee      string   `yaml:"travel_fee" validate:"required,numeric"`
	Rating         float64  `yaml:"rating" validate:"gte=0,lte=5"`
	CompletedJobs  int      `yaml:"completed_jobs" validate:"gte=0"`
}

type fileRecord struct {
	Services      []serviceRecord      `yaml:"services" validate:"required,min=1,dive"`
	Addons        []addonRecord        `yaml:"addons" validate:"dive"`
	Photographers []photographerRecord `yaml:"photographers" validate:"dive"`
}

// Catalog is the parsed content of a catalog file.
type Catalog struct {
	Services      []entities.Service
	Addons        []entities.AddonService
	Photographers []entities.Photographer
}

var validate = validator.New()

// LoadFile reads and parses the catalog file at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML. Prices are exact decimals and
// every cross reference (add-on <-> service) must resolve.
func Parse(data []byte) (*Catalog, error) {
	var rec fileRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Catalog{}
	serviceIDs := map[string]struct{}{}
	for _, s := range rec.Services {
		if _, dup := serviceIDs[s.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate service %q", s.ID)
		}
		serviceIDs[s.ID] = struct{}{}
		price, err := parsePrice(s.BasePrice, "service "+s.ID)
		if err != nil {
			return nil, err
		}
		c.Services = append(c.Services, entities.Service{
			ID:               s.ID,
			Name:             strings.TrimSpace(s.Name),
			Description:      strings.TrimSpace(s.Description),
			BasePrice:        price,
			EligibleAddonIDs: nonNil(s.EligibleAddons),
		})
	}

	addonIDs := map[string]struct{}{}
	for _, a := range rec.Addons {
		if _, dup := addonIDs[a.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate addon %q", a.ID)
		}
		addonIDs[a.ID] = struct{}{}
		for _, sid := range a.ApplicableServices {
			if _, ok := serviceIDs[sid]; !ok {
				return nil, fmt.Errorf("invalid catalog: addon %q applies to unknown service %q", a.ID, sid)
			}
		}
		price, err := parsePrice(a.Price, "addon "+a.ID)
		if err != nil {
			return nil, err
		}
		c.Addons = append(c.Addons, entities.AddonService{
			ID:                   a.ID,
			Name:                 strings.TrimSpace(a.Name),
			Price:                price,
			ApplicableServiceIDs: a.ApplicableServices,
		})
	}
	for _, s := range c.Services {
		for _, aid := range s.EligibleAddonIDs {
			if _, ok := addonIDs[aid]; !ok {
				return nil, fmt.Errorf("invalid catalog: service %q lists unknown addon %q", s.ID, aid)
			}
		}
	}

	photographerIDs := map[string]struct{}{}
	for _, p := range rec.Photographers {
		if _, dup := photographerIDs[p.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate photographer %q", p.ID)
		}
		photographerIDs[p.ID] = struct{}{}
		fee, err := parsePrice(p.TravelFee, "photographer "+p.ID)
		if err != nil {
			return nil, err
		}
		dates := make([]time.Time, 0, len(p.AvailableDates))
		for _, raw := range p.AvailableDates {
			d, err := entities.ParseDate(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid catalog: photographer %q date %q: %w", p.ID, raw, err)
			}
			dates = append(dates, d)
		}
		c.Photographers = append(c.Photographers, entities.Photographer{
			ID:             p.ID,
			Name:           strings.TrimSpace(p.Name),
			Specialties:    p.Specialties,
			AvailableDates: dates,
			TravelFee:      fee,
			Rating:         p.Rating,
			CompletedJobs:  p.CompletedJobs,
		})
	}
	return c, nil
}

func parsePrice(raw, owner string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid catalog: %s price %q: %w", owner, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid catalog: %s price %q is negative", owner, raw)
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, fmt.Errorf("invalid catalog: %s price %q has more than 2 decimal places", owner, raw)
	}
	return d, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
