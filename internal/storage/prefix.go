package storage

// PrefixDB is a view of a DB where every key lives under a fixed prefix.
// Views nest, so a store's namespace can be narrowed further per wallet.
type PrefixDB struct {
	inner  DB
	prefix []byte
}

// NewPrefixDB returns a view of inner under prefix.
func NewPrefixDB(inner DB, prefix []byte) *PrefixDB {
	return &PrefixDB{inner: inner, prefix: append([]byte(nil), prefix...)}
}

func (p *PrefixDB) key(k []byte) []byte {
	return append(append(make([]byte, 0, len(p.prefix)+len(k)), p.prefix...), k...)
}

func (p *PrefixDB) Get(key []byte) ([]byte, error) { return p.inner.Get(p.key(key)) }

func (p *PrefixDB) Put(key, value []byte) error { return p.inner.Put(p.key(key), value) }

func (p *PrefixDB) Delete(key []byte) error { return p.inner.Delete(p.key(key)) }

func (p *PrefixDB) Has(key []byte) (bool, error) { return p.inner.Has(p.key(key)) }

// ForEach visits the view's keys under prefix. Keys are passed to fn
// without the view's prefix.
func (p *PrefixDB) ForEach(prefix []byte, fn func(key, value []byte) error) error {
	n := len(p.prefix)
	return p.inner.ForEach(p.key(prefix), func(key, value []byte) error {
		return fn(key[n:], value)
	})
}

// DeleteAll removes every key in the view and returns how many were removed.
func (p *PrefixDB) DeleteAll() (int, error) {
	// Collect first; badger forbids writes inside a read transaction.
	var keys [][]byte
	err := p.inner.ForEach(p.prefix, func(key, _ []byte) error {
		keys = append(keys, append([]byte(nil), key...))
		return nil
	})
	if err != nil {
		return 0, err
	}
	for i, key := range keys {
		if err := p.inner.Delete(key); err != nil {
			return i, err
		}
	}
	return len(keys), nil
}

// Close is a no-op; the inner DB owns the lifecycle.
func (p *PrefixDB) Close() error {
	return nil
}
