package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{
			name:      "valid point",
			latitude:  41.311,
			longitude: 69.240,
			wantErr:   false,
		},
		{
			name:      "valid point at min bounds",
			latitude:  kernel.LatitudeMin,
			longitude: kernel.LongitudeMin,
			wantErr:   false,
		},
		{
			name:      "valid point at max bounds",
			latitude:  kernel.LatitudeMax,
			longitude: kernel.LongitudeMax,
			wantErr:   false,
		},
		{
			name:      "latitude too small",
			latitude:  kernel.LatitudeMin - 1,
			longitude: 0,
			wantErr:   true,
		},
		{
			name:      "latitude too large",
			latitude:  kernel.LatitudeMax + 1,
			longitude: 0,
			wantErr:   true,
		},
		{
			name:      "longitude too small",
			latitude:  0,
			longitude: kernel.LongitudeMin - 1,
			wantErr:   true,
		},
		{
			name:      "longitude too large",
			latitude:  0,
			longitude: kernel.LongitudeMax + 1,
			wantErr:   true,
		},
		{
			name:      "both coordinates invalid",
			latitude:  kernel.LatitudeMin - 1,
			longitude: kernel.LongitudeMax + 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, point)
			} else {
				require.NoError(t, err)
				assert.InDelta(t, tt.latitude, point.Latitude(), 0)
				assert.InDelta(t, tt.longitude, point.Longitude(), 0)
				assert.NoError(t, point.Validate())
			}
		})
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(41.311, 69.240)
		require.NoError(t, err)
		assert.NoError(t, point.Validate())
	})

	t.Run("zero value point", func(t *testing.T) {
		var point kernel.GeoPoint
		err := point.Validate()
		assert.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(41.311, 69.24)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(41.311000,69.240000)", point.String())
}

func TestGeoPoint_IsEqual(t *testing.T) {
	tests := []struct {
		name    string
		point1  kernel.GeoPoint
		point2  kernel.GeoPoint
		want    bool
		wantErr bool
	}{
		{
			name:   "equal points",
			point1: mustNewGeoPoint(t, 41.311, 69.240),
			point2: mustNewGeoPoint(t, 41.311, 69.240),
			want:   true,
		},
		{
			name:   "different latitude",
			point1: mustNewGeoPoint(t, 41.311, 69.240),
			point2: mustNewGeoPoint(t, 40.0, 69.240),
			want:   false,
		},
		{
			name:   "different longitude",
			point1: mustNewGeoPoint(t, 41.311, 69.240),
			point2: mustNewGeoPoint(t, 41.311, 70.0),
			want:   false,
		},
		{
			name:    "first point not constructed",
			point1:  kernel.GeoPoint{},
			point2:  mustNewGeoPoint(t, 41.311, 69.240),
			wantErr: true,
		},
		{
			name:    "second point not constructed",
			point1:  mustNewGeoPoint(t, 41.311, 69.240),
			point2:  kernel.GeoPoint{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.point1.IsEqual(tt.point2)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func mustNewGeoPoint(t *testing.T, latitude, longitude float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)
	return point
}
