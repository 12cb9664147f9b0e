package geofence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locationreminder/internal/domain/entity"
	"locationreminder/internal/domain/geofence"
)

func ptr[T any](v T) *T { return &v }

func TestDistance(t *testing.T) {
	tests := []struct {
		name    string
		a, b    geofence.Point
		want    float64
		epsilon float64
	}{
		{
			name:    "same point",
			a:       geofence.Point{Latitude: 35.6812, Longitude: 139.7671},
			b:       geofence.Point{Latitude: 35.6812, Longitude: 139.7671},
			want:    0,
			epsilon: 1e-9,
		},
		{
			name:    "one degree of latitude",
			a:       geofence.Point{Latitude: 0, Longitude: 0},
			b:       geofence.Point{Latitude: 1, Longitude: 0},
			want:    111195,
			epsilon: 5,
		},
		{
			name:    "tokyo to osaka",
			a:       geofence.Point{Latitude: 35.6812, Longitude: 139.7671},
			b:       geofence.Point{Latitude: 34.7025, Longitude: 135.4959},
			want:    403000,
			epsilon: 2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, geofence.Distance(tt.a, tt.b), tt.epsilon)
		})
	}
}

func TestRegionContains(t *testing.T) {
	region := geofence.Region{
		RequestID:    "r1",
		Center:       geofence.Point{Latitude: 0, Longitude: 0},
		RadiusMeters: geofence.DefaultRadiusMeters,
	}

	// 0.0008 degrees of latitude is roughly 89 meters.
	assert.True(t, region.Contains(geofence.Point{Latitude: 0.0008, Longitude: 0}))
	// 0.001 degrees of latitude is roughly 111 meters.
	assert.False(t, region.Contains(geofence.Point{Latitude: 0.001, Longitude: 0}))
}

func TestRegionsFor(t *testing.T) {
	reminders := []*entity.Reminder{
		{ID: "with-coords", Latitude: ptr(1.5), Longitude: ptr(2.5)},
		{ID: "no-longitude", Latitude: ptr(1.5)},
		{ID: "no-coords"},
		nil,
	}

	t.Run("skips reminders without coordinates", func(t *testing.T) {
		regions := geofence.RegionsFor(reminders, 250)

		require.Len(t, regions, 1)
		assert.Equal(t, "with-coords", regions[0].RequestID)
		assert.Equal(t, geofence.Point{Latitude: 1.5, Longitude: 2.5}, regions[0].Center)
		assert.Equal(t, 250.0, regions[0].RadiusMeters)
	})

	t.Run("falls back to the default radius", func(t *testing.T) {
		regions := geofence.RegionsFor(reminders, 0)

		require.Len(t, regions, 1)
		assert.Equal(t, geofence.DefaultRadiusMeters, regions[0].RadiusMeters)
	})
}

func TestTrackerUpdate(t *testing.T) {
	regions := []geofence.Region{
		{RequestID: "a", Center: geofence.Point{Latitude: 0, Longitude: 0}, RadiusMeters: 100},
		{RequestID: "b", Center: geofence.Point{Latitude: 1, Longitude: 1}, RadiusMeters: 100},
	}
	insideA := geofence.Point{Latitude: 0.0001, Longitude: 0}
	outside := geofence.Point{Latitude: 0.5, Longitude: 0.5}

	t.Run("initial report triggers regions already inside", func(t *testing.T) {
		tracker := geofence.NewTracker()

		entered := tracker.Update("device", insideA, regions)

		require.Len(t, entered, 1)
		assert.Equal(t, "a", entered[0].RequestID)
	})

	t.Run("dwelling does not trigger again", func(t *testing.T) {
		tracker := geofence.NewTracker()
		tracker.Update("device", insideA, regions)

		entered := tracker.Update("device", insideA, regions)

		assert.Empty(t, entered)
	})

	t.Run("leaving and re-entering triggers again", func(t *testing.T) {
		tracker := geofence.NewTracker()
		tracker.Update("device", insideA, regions)
		assert.Empty(t, tracker.Update("device", outside, regions))

		entered := tracker.Update("device", insideA, regions)

		require.Len(t, entered, 1)
		assert.Equal(t, "a", entered[0].RequestID)
	})

	t.Run("devices are tracked independently", func(t *testing.T) {
		tracker := geofence.NewTracker()
		tracker.Update("first", insideA, regions)

		entered := tracker.Update("second", insideA, regions)

		assert.Len(t, entered, 1)
	})

	t.Run("forget resets the device", func(t *testing.T) {
		tracker := geofence.NewTracker()
		tracker.Update("device", insideA, regions)
		tracker.Forget("device")

		entered := tracker.Update("device", insideA, regions)

		assert.Len(t, entered, 1)
	})
}

func TestTrackerKeepsOnlyDevicesInsideRegions(t *testing.T) {
	regions := []geofence.Region{
		{RequestID: "a", Center: geofence.Point{Latitude: 0, Longitude: 0}, RadiusMeters: 100},
	}
	inside := geofence.Point{Latitude: 0.0001, Longitude: 0}
	outside := geofence.Point{Latitude: 0.5, Longitude: 0.5}
	tracker := geofence.NewTracker()

	for _, id := range []string{"d1", "d2", "d3"} {
		assert.Empty(t, tracker.Update(id, outside, regions))
	}
	assert.Equal(t, 0, tracker.Tracked())

	tracker.Update("d1", inside, regions)
	assert.Equal(t, 1, tracker.Tracked())

	tracker.Update("d1", outside, regions)
	assert.Equal(t, 0, tracker.Tracked())

	entered := tracker.Update("d1", inside, regions)
	require.Len(t, entered, 1)
	assert.Equal(t, "a", entered[0].RequestID)
}
