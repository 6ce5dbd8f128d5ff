// pkg/api/records_v1.go
package api

// GeneRecordV1 is the stable JSON/JSONL schema for one parsed gene record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GeneRecordV1 struct {
	Order       int    `json:"order"`
	Gene        string `json:"gene"`
	Translation string `json:"translation"`
	Location    string `json:"location,omitempty"`
	Line        int    `json:"line,omitempty"`
}

// CachedRecordV1 is one value of the record cache.
type CachedRecordV1 struct {
	Gene        string `json:"gene"`
	Translation string `json:"translation"`
}

// RecordCacheV1 is the on-disk record cache: order index -> record.
// encoding/json writes the integer keys as sorted strings.
type RecordCacheV1 map[int]CachedRecordV1
