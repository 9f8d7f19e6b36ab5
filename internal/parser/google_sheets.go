package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/koolabhinay07/Lollyzz/internal/catalog"
	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsParser loads a menu catalog from a spreadsheet at startup, for
// deployments that maintain the menu outside the binary. The loaded catalog
// goes through the same invariant validation as the embedded one and is just
// as immutable afterwards.
type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseCatalog reads columns A:F. Row shapes:
//
//	section row:  id | <empty> | title | subtitle
//	item row:     id | name | VEG or NONVEG | variant id | label | price
//	variant row:  <empty> | <empty> | <empty> | variant id | label | price
//
// Variant rows attach to the most recent item row.
func (p *GoogleSheetsParser) ParseCatalog(ctx context.Context, spreadsheetID string) (*catalog.Catalog, error) {
	readRange := "A:F"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	var sections []domain.MenuSection
	var currentSection *domain.MenuSection
	var currentItem *domain.MenuItem

	flushItem := func() {
		if currentItem != nil && currentSection != nil {
			currentSection.Items = append(currentSection.Items, *currentItem)
		}
		currentItem = nil
	}
	flushSection := func() {
		flushItem()
		if currentSection != nil {
			sections = append(sections, *currentSection)
		}
		currentSection = nil
	}

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) == 0 {
			continue
		}

		// section row: first cell set, second empty
		if cell(row, 0) != "" && cell(row, 1) == "" {
			flushSection()
			currentSection = &domain.MenuSection{
				ID:       cell(row, 0),
				Title:    cell(row, 2),
				Subtitle: cell(row, 3),
			}
			continue
		}

		// item row: first and second cells set
		if cell(row, 0) != "" && cell(row, 1) != "" {
			flushItem()
			currentItem = &domain.MenuItem{
				ID:   cell(row, 0),
				Name: cell(row, 1),
				Veg:  strings.EqualFold(cell(row, 2), "VEG"),
			}
		}

		// variant columns, present on item rows and continuation rows
		if currentItem != nil && cell(row, 3) != "" {
			price, err := strconv.Atoi(strings.TrimSpace(cell(row, 5)))
			if err != nil || price < 0 {
				return nil, fmt.Errorf("item %s variant %s has invalid price %q", currentItem.ID, cell(row, 3), cell(row, 5))
			}
			currentItem.Variants = append(currentItem.Variants, domain.Variant{
				ID:    cell(row, 3),
				Label: cell(row, 4),
				Price: price,
			})
		}
	}

	flushSection()

	c, err := catalog.New(sections)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet menu failed validation: %w", err)
	}

	return c, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}
