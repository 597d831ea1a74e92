// Package scanlog keeps the history of activity scans, keyed by wallet
// fingerprint. Only public data is stored: addresses, transaction counts and
// lookup errors.
package scanlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Klingon-tech/walletscan/internal/log"
	"github.com/Klingon-tech/walletscan/internal/storage"
	"github.com/Klingon-tech/walletscan/pkg/coin"
)

// ErrInvalidRecord is returned by Record for a record that cannot be keyed.
var ErrInvalidRecord = errors.New("invalid scan record")

// Record is one coin's result in one scan.
type Record struct {
	Fingerprint string    `json:"fingerprint"`
	Coin        coin.Type `json:"coin"`
	Address     string    `json:"address"`
	TxCount     int       `json:"tx_count"`
	Error       string    `json:"error,omitempty"`
	CheckedAt   time.Time `json:"checked_at"`
}

// Store persists scan records. A later record for the same wallet and coin
// replaces the earlier one.
type Store struct {
	db  storage.DB
	now func() time.Time
}

// New returns a store writing into the "s/" keyspace of db.
func New(db storage.DB) *Store {
	return &Store{db: storage.NewPrefixDB(db, []byte("s/")), now: time.Now}
}

func recordKey(fingerprint string, c coin.Type) []byte {
	return []byte(fingerprint + "/" + strconv.FormatUint(uint64(c), 10))
}

// Record stores r. A zero CheckedAt is set to the current time.
func (s *Store) Record(r Record) error {
	if r.Fingerprint == "" || strings.Contains(r.Fingerprint, "/") {
		return fmt.Errorf("%w: fingerprint %q", ErrInvalidRecord, r.Fingerprint)
	}
	if r.CheckedAt.IsZero() {
		r.CheckedAt = s.now().UTC()
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal scan record: %w", err)
	}
	key := recordKey(r.Fingerprint, r.Coin)
	replaced, err := s.db.Has(key)
	if err != nil {
		return fmt.Errorf("look up scan record: %w", err)
	}
	if err := s.db.Put(key, data); err != nil {
		return fmt.Errorf("store scan record: %w", err)
	}
	log.Storage.Debug().
		Str("fingerprint", r.Fingerprint).
		Str("coin", r.Coin.Name()).
		Int("tx_count", r.TxCount).
		Bool("replaced", replaced).
		Msg("Scan recorded")
	return nil
}

// Latest returns the stored record of one wallet and coin. ok is false when
// the wallet was never scanned for that coin.
func (s *Store) Latest(fingerprint string, c coin.Type) (r Record, ok bool, err error) {
	data, err := s.db.Get(recordKey(fingerprint, c))
	if errors.Is(err, storage.ErrNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("load scan record: %w", err)
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, false, fmt.Errorf("decode scan record: %w", err)
	}
	return r, true, nil
}

// Forget deletes every record of one wallet and returns how many there were.
func (s *Store) Forget(fingerprint string) (int, error) {
	n, err := storage.NewPrefixDB(s.db, []byte(fingerprint+"/")).DeleteAll()
	if err != nil {
		return n, fmt.Errorf("forget scan history: %w", err)
	}
	log.Storage.Debug().Str("fingerprint", fingerprint).Int("records", n).Msg("Scan history forgotten")
	return n, nil
}

// List returns the records of one wallet ordered by coin tag.
func (s *Store) List(fingerprint string) ([]Record, error) {
	var records []Record
	err := s.db.ForEach([]byte(fingerprint+"/"), func(key, value []byte) error {
		var r Record
		if err := json.Unmarshal(value, &r); err != nil {
			return fmt.Errorf("decode scan record %s: %w", key, err)
		}
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b Record) int {
		switch {
		case a.Coin < b.Coin:
			return -1
		case a.Coin > b.Coin:
			return 1
		}
		return 0
	})
	return records, nil
}

// Fingerprints returns every wallet with at least one record, sorted.
func (s *Store) Fingerprints() ([]string, error) {
	seen := make(map[string]struct{})
	err := s.db.ForEach(nil, func(key, _ []byte) error {
		fp, _, ok := strings.Cut(string(key), "/")
		if ok {
			seen[fp] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fps := make([]string, 0, len(seen))
	for fp := range seen {
		fps = append(fps, fp)
	}
	slices.Sort(fps)
	return fps, nil
}
