package storage

import (
	"errors"
	"testing"
)

func TestPrefixDB_GetPutDelete(t *testing.T) {
	inner := NewMemory()
	db := NewPrefixDB(inner, []byte("s/"))

	if err := db.Put([]byte("fp/0"), []byte("btc")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := inner.Get([]byte("s/fp/0"))
	if err != nil || string(got) != "btc" {
		t.Fatalf("inner.Get = %q, %v", got, err)
	}
	if ok, _ := db.Has([]byte("fp/0")); !ok {
		t.Fatal("Has = false, want true")
	}
	if err := db.Delete([]byte("fp/0")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := db.Get([]byte("fp/0")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete error = %v, want ErrNotFound", err)
	}
}

func TestPrefixDB_Isolation(t *testing.T) {
	inner := NewMemory()
	scans := NewPrefixDB(inner, []byte("s/"))
	meta := NewPrefixDB(inner, []byte("m/"))

	scans.Put([]byte("key"), []byte("scan"))
	meta.Put([]byte("key"), []byte("meta"))

	if got, _ := scans.Get([]byte("key")); string(got) != "scan" {
		t.Errorf("scans.Get = %q", got)
	}
	if got, _ := meta.Get([]byte("key")); string(got) != "meta" {
		t.Errorf("meta.Get = %q", got)
	}
	if ok, _ := scans.Has([]byte("m/key")); ok {
		t.Error("scans should not see the meta keyspace")
	}
}

func TestPrefixDB_ForEachStripsPrefix(t *testing.T) {
	inner := NewMemory()
	db := NewPrefixDB(inner, []byte("s/"))
	db.Put([]byte("fp1/60"), []byte("eth"))
	db.Put([]byte("fp1/0"), []byte("btc"))
	db.Put([]byte("fp2/0"), []byte("btc"))

	var keys []string
	err := db.ForEach([]byte("fp1/"), func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	if len(keys) != 2 || keys[0] != "fp1/0" || keys[1] != "fp1/60" {
		t.Fatalf("ForEach keys = %v, want [fp1/0 fp1/60]", keys)
	}
}

func TestPrefixDB_DeleteAll(t *testing.T) {
	inner := NewMemory()
	a := NewPrefixDB(inner, []byte("a/"))
	b := NewPrefixDB(inner, []byte("b/"))
	a.Put([]byte("k1"), []byte("v1"))
	a.Put([]byte("k2"), []byte("v2"))
	b.Put([]byte("k1"), []byte("other"))

	if n, err := a.DeleteAll(); err != nil || n != 2 {
		t.Fatalf("DeleteAll = %d, %v; want 2, nil", n, err)
	}
	for _, k := range []string{"k1", "k2"} {
		if ok, _ := a.Has([]byte(k)); ok {
			t.Fatalf("a still has %q after DeleteAll", k)
		}
	}
	if got, err := b.Get([]byte("k1")); err != nil || string(got) != "other" {
		t.Fatalf("b.Get = %q, %v", got, err)
	}
	if n, err := NewPrefixDB(inner, []byte("empty/")).DeleteAll(); err != nil || n != 0 {
		t.Fatalf("DeleteAll on empty = %d, %v", n, err)
	}
}

func TestPrefixDB_CloseIsNoop(t *testing.T) {
	inner := NewMemory()
	db := NewPrefixDB(inner, []byte("x/"))
	db.Put([]byte("key"), []byte("val"))

	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got, err := inner.Get([]byte("x/key")); err != nil || string(got) != "val" {
		t.Fatalf("inner.Get after Close = %q, %v", got, err)
	}
}
