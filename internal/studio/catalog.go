package studio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// catalogDocument mirrors the upstream catalog JSON: {"studios": [...]}.
type catalogDocument struct {
	Studios []Studio `json:"studios"`
}

// LoadCatalogFile reads a catalog snapshot from a local JSON document.
func LoadCatalogFile(path string) ([]Studio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return decodeCatalog(data)
}

// FetchCatalog retrieves a catalog snapshot with a one-shot GET. The
// snapshot is fetched once at startup and consumed synchronously
// afterwards.
func FetchCatalog(ctx context.Context, url string) ([]Studio, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	var doc catalogDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return doc.Studios, nil
}

func decodeCatalog(data []byte) ([]Studio, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return doc.Studios, nil
}
