package database

import (
	"sort"

	"rentnest/server/internal/apperrors"
	"rentnest/server/internal/geo"
)

// DistanceKey is the name under which the computed distance (kilometers)
// is attached to each geo search row.
const DistanceKey = "distance"

// ApartmentsWithinRadius is the geo-distance search: every non-deleted
// apartment with stored coordinates within radiusKm of ref, annotated with
// its computed distance and sorted nearest first. Rows come back with the
// store's native column names; callers are expected to normalize them.
//
// Rows with NULL coordinates cannot participate in the distance
// computation and are excluded up front.
func (d *Database) ApartmentsWithinRadius(ref geo.Point, radiusKm float64) ([]map[string]any, error) {
	if err := geo.ValidateSearch(ref, radiusKm); err != nil {
		return nil, err
	}

	// Coarse bounding-box prefilter to keep the scan small; the
	// authoritative radius cut is the distance computation below.
	bound := geo.SearchBound(ref, radiusKm)

	rows := make([]map[string]any, 0)
	err := d.db.Raw(`
		SELECT * FROM apartments
		WHERE deleted IS NULL
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
		  AND latitude BETWEEN ? AND ?
		  AND longitude BETWEEN ? AND ?`,
		bound.Min.Lat(), bound.Max.Lat(),
		bound.Min.Lon(), bound.Max.Lon(),
	).Find(&rows).Error
	if err != nil {
		return nil, apperrors.StoreUnavailable("geo query failed", err)
	}

	within := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		lat, okLat := asFloat(row["latitude"])
		lon, okLon := asFloat(row["longitude"])
		if !okLat || !okLon {
			continue
		}
		distance := geo.Distance(ref, lat, lon)
		if distance <= radiusKm {
			row[DistanceKey] = distance
			within = append(within, row)
		}
	}

	sort.SliceStable(within, func(i, j int) bool {
		return within[i][DistanceKey].(float64) < within[j][DistanceKey].(float64)
	})
	return within, nil
}

// asFloat unwraps the numeric types the sqlite driver hands back.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
