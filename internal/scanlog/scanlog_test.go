package scanlog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Klingon-tech/walletscan/internal/storage"
	"github.com/Klingon-tech/walletscan/pkg/coin"
)

func TestStore_RecordAndList(t *testing.T) {
	s := New(storage.NewMemory())
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Ethereum, Address: "0xabc", TxCount: 7, CheckedAt: at}))
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Bitcoin, Address: "bc1q", TxCount: 2, CheckedAt: at}))
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Cosmos, Address: "cosmos1", Error: "timeout", CheckedAt: at}))
	require.NoError(t, s.Record(Record{Fingerprint: "bb", Coin: coin.Bitcoin, Address: "bc1other", CheckedAt: at}))

	got, err := s.List("aa")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []coin.Type{coin.Bitcoin, coin.Ethereum, coin.Cosmos},
		[]coin.Type{got[0].Coin, got[1].Coin, got[2].Coin})
	require.Equal(t, 7, got[1].TxCount)
	require.Equal(t, "timeout", got[2].Error)
	require.True(t, got[0].CheckedAt.Equal(at))
}

func TestStore_ReplacesPerCoin(t *testing.T) {
	s := New(storage.NewMemory())
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Bitcoin, TxCount: 1}))
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Bitcoin, TxCount: 5}))

	got, err := s.List("aa")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 5, got[0].TxCount)
}

func TestStore_StampsTime(t *testing.T) {
	s := New(storage.NewMemory())
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Bitcoin}))
	got, err := s.List("aa")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].CheckedAt.Equal(fixed))
}

func TestStore_InvalidFingerprint(t *testing.T) {
	s := New(storage.NewMemory())
	for _, fp := range []string{"", "a/b"} {
		err := s.Record(Record{Fingerprint: fp, Coin: coin.Bitcoin})
		require.True(t, errors.Is(err, ErrInvalidRecord), "fingerprint %q: %v", fp, err)
	}
}

func TestStore_PrefixIsolation(t *testing.T) {
	db := storage.NewMemory()
	s := New(db)
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Bitcoin}))
	require.NoError(t, s.Record(Record{Fingerprint: "aab", Coin: coin.Bitcoin}))

	got, err := s.List("aa")
	require.NoError(t, err)
	require.Len(t, got, 1)

	ok, err := db.Has([]byte("s/aa/0"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestStore_Fingerprints(t *testing.T) {
	s := New(storage.NewMemory())
	fps, err := s.Fingerprints()
	require.NoError(t, err)
	require.Empty(t, fps)

	for _, fp := range []string{"cc", "aa", "cc"} {
		require.NoError(t, s.Record(Record{Fingerprint: fp, Coin: coin.Ethereum}))
	}
	fps, err = s.Fingerprints()
	require.NoError(t, err)
	require.Equal(t, []string{"aa", "cc"}, fps)
}

func TestStore_Badger(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.NewBadger(dir)
	require.NoError(t, err)
	s := New(db)
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Tron, Address: "T1", TxCount: 4}))
	require.NoError(t, db.Close())

	db, err = storage.NewBadger(dir)
	require.NoError(t, err)
	defer db.Close()
	got, err := New(db).List("aa")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "T1", got[0].Address)
	require.Equal(t, 4, got[0].TxCount)
}

func TestStore_Latest(t *testing.T) {
	s := New(storage.NewMemory())

	_, ok, err := s.Latest("aa", coin.Bitcoin)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Bitcoin, Address: "bc1q", TxCount: 4}))
	got, ok, err := s.Latest("aa", coin.Bitcoin)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, got.TxCount)
	require.Equal(t, "bc1q", got.Address)

	_, ok, err = s.Latest("aa", coin.Ethereum)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_Forget(t *testing.T) {
	s := New(storage.NewMemory())
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Bitcoin}))
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Ethereum}))
	require.NoError(t, s.Record(Record{Fingerprint: "aab", Coin: coin.Bitcoin}))

	n, err := s.Forget("aa")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	got, err := s.List("aa")
	require.NoError(t, err)
	require.Empty(t, got)

	fps, err := s.Fingerprints()
	require.NoError(t, err)
	require.Equal(t, []string{"aab"}, fps)

	n, err = s.Forget("aa")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStore_ForgetBadger(t *testing.T) {
	db, err := storage.NewBadger(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	s := New(db)
	require.NoError(t, s.Record(Record{Fingerprint: "aa", Coin: coin.Bitcoin, TxCount: 1}))
	n, err := s.Forget("aa")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, ok, err := s.Latest("aa", coin.Bitcoin)
	require.NoError(t, err)
	require.False(t, ok)
}
