// Package shape normalizes raw store rows into the API field convention.
package shape

// GeoResultKeys maps the store-native column names of the geo search rows
// to their API field names. Keys outside this set pass through unchanged.
var GeoResultKeys = map[string]string{
	"user_id":     "userId",
	"n_bedrooms":  "nBedrooms",
	"n_bathrooms": "nBathrooms",
	"area_m2":     "areaM2",
	"avail_from":  "availableFrom",
}

// RenameKeys returns a copy of records with keys renamed according to
// mapping. Record order and values are preserved; keys absent from the
// mapping are kept as-is. An empty input yields an empty output.
func RenameKeys(records []map[string]any, mapping map[string]string) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, record := range records {
		renamed := make(map[string]any, len(record))
		for key, value := range record {
			if replacement, ok := mapping[key]; ok {
				key = replacement
			}
			renamed[key] = value
		}
		out[i] = renamed
	}
	return out
}
