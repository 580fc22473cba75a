package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/ppiankov/gostcite/internal/model"
)

// Cache stores formatted citations keyed by record content
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
	Clear() error
}

// Key derives a cache key from the formatter scope and the record's kind and
// field values. Scope identifies what produced the citation (formatter and
// template), so a changed template or a custom formatter never reads another's entry.
func Key(scope string, r model.Record) (string, error) {
	data, err := json.Marshal(model.Deref(r))
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(scope))
	h.Write([]byte{0})
	h.Write([]byte(r.Kind().String()))
	h.Write([]byte{0})
	h.Write(data)
	return "gostcite:" + hex.EncodeToString(h.Sum(nil)), nil
}
