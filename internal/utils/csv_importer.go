package utils

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/repositories"
)

// ImportResult summarises a legacy-register CSV import run
type ImportResult struct {
	TotalRows int      `json:"totalRows"`
	Imported  int      `json:"imported"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
}

// CSVImporter imports homestays from the legacy paper register export into
// the public directory collection.
type CSVImporter struct {
	propertyRepo repositories.PropertyRepository
}

// NewCSVImporter creates a new CSVImporter
func NewCSVImporter(propertyRepo repositories.PropertyRepository) *CSVImporter {
	return &CSVImporter{
		propertyRepo: propertyRepo,
	}
}

// ImportProperties reads the legacy register CSV and inserts one directory
// entry per valid row. Rows with a registration number already present are
// skipped so the import can be re-run safely.
func (i *CSVImporter) ImportProperties(ctx context.Context, filePath string) (*ImportResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	regNoIdx := findColumnIndex(header, []string{"Registration No", "Reg No", "RegistrationNumber"})
	nameIdx := findColumnIndex(header, []string{"Homestay Name", "Property Name", "Name"})
	ownerIdx := findColumnIndex(header, []string{"Owner Name", "Owner"})
	districtIdx := findColumnIndex(header, []string{"District"})
	tehsilIdx := findColumnIndex(header, []string{"Tehsil", "Sub Division"})
	categoryIdx := findColumnIndex(header, []string{"Category"})
	roomsIdx := findColumnIndex(header, []string{"Rooms", "No of Rooms"})
	bedsIdx := findColumnIndex(header, []string{"Beds", "No of Beds"})
	phoneIdx := findColumnIndex(header, []string{"Phone", "Contact", "Mobile"})

	if regNoIdx == -1 || nameIdx == -1 || districtIdx == -1 {
		return nil, fmt.Errorf("registration number, name and district columns are required")
	}

	result := &ImportResult{Errors: []string{}}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Error reading row: %v", err))
			continue
		}

		result.TotalRows++

		regNo := strings.TrimSpace(row[regNoIdx])
		name := strings.TrimSpace(row[nameIdx])
		district := strings.TrimSpace(row[districtIdx])
		if regNo == "" || name == "" || district == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: registration number, name and district must not be empty", result.TotalRows))
			result.Skipped++
			continue
		}

		if _, err := i.propertyRepo.FindByRegistrationNo(ctx, regNo); err == nil {
			result.Skipped++
			continue
		}

		property := &models.Property{
			RegistrationNo: regNo,
			Name:           name,
			District:       district,
			Source:         models.SourceLegacy,
			ApprovedAt:     time.Now(),
		}
		if ownerIdx != -1 {
			property.OwnerName = strings.TrimSpace(row[ownerIdx])
		}
		if tehsilIdx != -1 {
			property.Tehsil = strings.TrimSpace(row[tehsilIdx])
		}
		if phoneIdx != -1 {
			property.Phone = strings.TrimSpace(row[phoneIdx])
		}
		if categoryIdx != -1 {
			category := models.Category(strings.ToLower(strings.TrimSpace(row[categoryIdx])))
			if models.IsValidCategory(category) {
				property.Category = category
			} else {
				// Legacy registrations predate the category system.
				property.Category = models.CategorySilver
			}
		} else {
			property.Category = models.CategorySilver
		}
		if roomsIdx != -1 {
			property.Rooms = parseCount(row[roomsIdx])
		}
		if bedsIdx != -1 {
			property.Beds = parseCount(row[bedsIdx])
		}

		if err := i.propertyRepo.Create(ctx, property); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: failed to insert %s: %v", result.TotalRows, regNo, err))
			result.Skipped++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// findColumnIndex finds the index of the first matching column name
func findColumnIndex(header []string, names []string) int {
	for i, col := range header {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(col), name) {
				return i
			}
		}
	}
	return -1
}

func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
