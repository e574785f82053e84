package gsregress

import (
	"bytes"
	"encoding/gob"
	"sync"
)

// SyncMap is a map guarded by a read-write mutex.
//
// The zero value is ready to use. It implements gob.GobEncoder and gob.GobDecoder,
// which is how the Manifest persists its entries.
type SyncMap[K comparable, V any] struct {
	sync.RWMutex
	M map[K]V
}

// NewSyncMap creates an empty SyncMap.
func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{M: map[K]V{}}
}

// Set adds or updates a key-value pair.
func (sm *SyncMap[K, V]) Set(key K, val V) {
	sm.Lock()
	defer sm.Unlock()

	if sm.M == nil {
		sm.M = map[K]V{}
	}
	sm.M[key] = val
}

// Get retrieves the value stored under key.
//
// Returns:
//   - V: The value, or the zero value when absent.
//   - bool: True if the key exists in the map, false otherwise.
func (sm *SyncMap[K, V]) Get(key K) (val V, ok bool) {
	sm.RLock()
	defer sm.RUnlock()

	val, ok = sm.M[key]

	return
}

// Del removes key from the map.
func (sm *SyncMap[K, V]) Del(key K) {
	sm.Lock()
	defer sm.Unlock()

	delete(sm.M, key)
}

// Len returns the number of entries.
func (sm *SyncMap[K, V]) Len() int {
	sm.RLock()
	defer sm.RUnlock()

	return len(sm.M)
}

// Range calls fun for every entry until it returns false.
// The read lock is held for the whole iteration, so fun must not write to the map.
func (sm *SyncMap[K, V]) Range(fun func(K, V) bool) {
	sm.RLock()
	defer sm.RUnlock()

	for k, v := range sm.M {
		if !fun(k, v) {
			return
		}
	}
}

// Clear removes every entry.
func (sm *SyncMap[K, V]) Clear() {
	sm.Lock()
	defer sm.Unlock()

	sm.M = map[K]V{}
}

// Keys returns the keys in no particular order.
func (sm *SyncMap[K, V]) Keys() (keys []K) {
	sm.RLock()
	defer sm.RUnlock()

	for k := range sm.M {
		keys = append(keys, k)
	}

	return
}

// GobEncode encodes the underlying map.
func (sm *SyncMap[K, V]) GobEncode() ([]byte, error) {
	sm.RLock()
	defer sm.RUnlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sm.M); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode replaces the underlying map with the decoded one.
func (sm *SyncMap[K, V]) GobDecode(data []byte) error {
	sm.Lock()
	defer sm.Unlock()

	m := map[K]V{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return err
	}
	sm.M = m

	return nil
}
