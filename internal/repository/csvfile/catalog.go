package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vpnAdvisor/domain"
)

// CatalogRepository reads the cleaned catalog produced by the upstream ETL
// stage: a comma-delimited file with a header row. Parsing happens on every
// FindAll; callers that need a process-shared snapshot wrap this in the redis
// cache decorator.
type CatalogRepository struct {
	path string
}

func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{path: path}
}

var requiredColumns = []string{
	"name",
	"country",
	"speed",
	"price",
	"max_devices",
	"logging_policy",
	"encryption",
	"handshake_encryption",
	"trial_available",
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.VPNService, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("catalog file missing column %q", name)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	services := make([]domain.VPNService, 0, len(records))
	for i, rec := range records {
		svc, err := parseRow(rec, col)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", i+2, err)
		}
		// Rows without a name cannot be ranked; the ETL stage should have
		// dropped them already.
		if svc.Name == "" {
			continue
		}
		services = append(services, svc)
	}

	return services, nil
}

func parseRow(rec []string, col map[string]int) (domain.VPNService, error) {
	field := func(name string) string {
		return strings.TrimSpace(rec[col[name]])
	}

	speed, err := strconv.ParseFloat(field("speed"), 64)
	if err != nil {
		return domain.VPNService{}, fmt.Errorf("invalid speed %q", field("speed"))
	}

	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return domain.VPNService{}, fmt.Errorf("invalid price %q", field("price"))
	}

	devices, err := strconv.Atoi(field("max_devices"))
	if err != nil {
		return domain.VPNService{}, fmt.Errorf("invalid max_devices %q", field("max_devices"))
	}

	return domain.VPNService{
		Name:                field("name"),
		Country:             field("country"),
		Speed:               speed,
		Price:               price,
		MaxDevices:          devices,
		LoggingPolicy:       field("logging_policy"),
		Encryption:          field("encryption"),
		HandshakeEncryption: field("handshake_encryption"),
		TrialAvailable:      strings.EqualFold(field("trial_available"), "yes"),
	}, nil
}
