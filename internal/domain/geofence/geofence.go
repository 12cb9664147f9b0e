// Package geofence evaluates circular regions around saved reminders.
package geofence

import (
	"math"
	"sync"

	"locationreminder/internal/domain/entity"
)

// DefaultRadiusMeters is the radius registered for every reminder region.
const DefaultRadiusMeters = 100.0

const earthRadiusMeters = 6371008.8

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Region is a circular geofence identified by the reminder ID.
type Region struct {
	RequestID    string
	Center       Point
	RadiusMeters float64
}

// Contains reports whether p lies inside or on the boundary of the region.
func (r Region) Contains(p Point) bool {
	return Distance(r.Center, p) <= r.RadiusMeters
}

// Distance returns the haversine great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// RegionsFor builds one region per reminder that has coordinates.
// Reminders without coordinates cannot be geofenced and are skipped.
func RegionsFor(reminders []*entity.Reminder, radiusMeters float64) []Region {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	regions := make([]Region, 0, len(reminders))
	for _, r := range reminders {
		if r == nil || !r.HasCoordinates() {
			continue
		}
		regions = append(regions, Region{
			RequestID:    r.ID,
			Center:       Point{Latitude: *r.Latitude, Longitude: *r.Longitude},
			RadiusMeters: radiusMeters,
		})
	}
	return regions
}

// Tracker remembers which regions each device is currently inside so that
// only ENTER transitions are reported. The first report for a device behaves
// as an initial trigger: every region it is already inside counts as entered.
// Only devices inside at least one region are kept, so the state is bounded
// by the devices currently within a reminder region.
type Tracker struct {
	mu     sync.Mutex
	inside map[string]map[string]struct{} // deviceID -> set of request IDs
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{inside: make(map[string]map[string]struct{})}
}

// Update records the device position and returns the regions it just entered.
func (t *Tracker) Update(deviceID string, p Point, regions []Region) []Region {
	t.mu.Lock()
	defer t.mu.Unlock()

	previous := t.inside[deviceID]
	current := make(map[string]struct{}, len(regions))
	var entered []Region
	for _, region := range regions {
		if !region.Contains(p) {
			continue
		}
		current[region.RequestID] = struct{}{}
		if _, was := previous[region.RequestID]; !was {
			entered = append(entered, region)
		}
	}
	if len(current) == 0 {
		delete(t.inside, deviceID)
	} else {
		t.inside[deviceID] = current
	}
	return entered
}

// Tracked returns the number of devices with state kept.
func (t *Tracker) Tracked() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inside)
}

// Forget drops the state kept for a device.
func (t *Tracker) Forget(deviceID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inside, deviceID)
}
