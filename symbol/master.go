package symbol

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/tradecal"
)

// The master list is the full exchange listing, cached on disk as a
// (symbol, name) CSV next to a sidecar JSON carrying the refresh
// timestamp. It is only ever refreshed on explicit request.

const (
	masterFilename  = "master.csv"
	sidecarFilename = "master.json"
)

// DefaultMirrors is the ordered list of listing mirrors tried on
// refresh; the first that answers wins.
var DefaultMirrors = []string{
	"https://www.jpx.co.jp/markets/statistics-equities/misc/data_j.csv",
	"https://raw.githubusercontent.com/jpx-mirror/listed-issues/main/data_j.csv",
}

const refreshTimeout = 15 * time.Second

// MasterList holds the cached listing and its refresh metadata.
type MasterList struct {
	Candidates  []Candidate
	LastUpdated time.Time
}

type sidecar struct {
	LastUpdated string `json:"lastUpdated"`
}

// LoadMaster reads the cached master list from dir. A missing cache is
// a normal state and yields an empty list.
func LoadMaster(dir string) (*MasterList, error) {
	f, err := os.Open(filepath.Join(dir, masterFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return &MasterList{}, nil
	}
	if err != nil {
		return &MasterList{}, fmt.Errorf("cannot open master list: %w", err)
	}
	defer f.Close()

	m := &MasterList{}
	m.Candidates, err = readListing(f)
	if err != nil {
		return &MasterList{}, fmt.Errorf("cannot read master list: %w", err)
	}

	if raw, err := os.ReadFile(filepath.Join(dir, sidecarFilename)); err == nil {
		var s sidecar
		if json.Unmarshal(raw, &s) == nil {
			if ts, err := time.Parse(time.RFC3339, s.LastUpdated); err == nil {
				m.LastUpdated = ts
			}
		}
	}
	return m, nil
}

// RefreshMaster fetches the listing from the mirrors in order and
// rewrites the cache in dir with fresh metadata. When every mirror
// fails it reports a NetworkError and leaves the existing cache
// untouched.
func RefreshMaster(ctx context.Context, dir string, mirrors []string) (*MasterList, error) {
	if len(mirrors) == 0 {
		mirrors = DefaultMirrors
	}
	client := &http.Client{Timeout: refreshTimeout}

	var lastErr error
	for _, mirror := range mirrors {
		candidates, err := fetchListing(ctx, client, mirror)
		if err != nil {
			lastErr = err
			continue
		}
		m := &MasterList{Candidates: candidates, LastUpdated: time.Now().UTC()}
		if err := writeCache(dir, m); err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, &tradecal.NetworkError{Op: "refresh master list", Err: lastErr}
}

func fetchListing(ctx context.Context, client *http.Client, addr string) ([]Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot GET %s: %s", addr, resp.Status)
	}
	candidates, err := readListing(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot parse listing from %s: %w", addr, err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("empty listing from %s", addr)
	}
	return candidates, nil
}

// readListing parses (symbol, name) pairs, tolerating extra columns and
// skipping short rows. Bare numeric codes are canonicalized.
func readListing(r io.Reader) ([]Candidate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var out []Candidate
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			continue
		}
		out = append(out, Candidate{Symbol: Canonicalize(record[0]), Name: record[1]})
	}
}

func writeCache(dir string, m *MasterList) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create master cache dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, masterFilename))
	if err != nil {
		return fmt.Errorf("cannot write master list: %w", err)
	}
	cw := csv.NewWriter(f)
	for _, c := range m.Candidates {
		if err := cw.Write([]string{c.Symbol, c.Name}); err != nil {
			f.Close()
			return fmt.Errorf("cannot write master list: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("cannot write master list: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write master list: %w", err)
	}

	raw, err := json.Marshal(sidecar{LastUpdated: m.LastUpdated.Format(time.RFC3339)})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, sidecarFilename), raw, 0o644); err != nil {
		return fmt.Errorf("cannot write master list metadata: %w", err)
	}
	return nil
}
