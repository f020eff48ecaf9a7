package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RBP-ReservationService/pkg/ptr"
)

func TestEffectiveCapacity(t *testing.T) {
	tests := []struct {
		name           string
		windowCapacity *int
		tenantCapacity *int
		want           int
		bounded        bool
	}{
		{
			name:           "window capacity wins over tenant capacity",
			windowCapacity: ptr.Ptr(10),
			tenantCapacity: ptr.Ptr(50),
			want:           10,
			bounded:        true,
		},
		{
			name:           "tenant capacity as fallback",
			tenantCapacity: ptr.Ptr(50),
			want:           50,
			bounded:        true,
		},
		{
			name:    "no capacity anywhere means unlimited",
			bounded: false,
		},
		{
			name:           "zero window capacity falls through to tenant",
			windowCapacity: ptr.Ptr(0),
			tenantCapacity: ptr.Ptr(30),
			want:           30,
			bounded:        true,
		},
		{
			name:           "non-positive everywhere means unlimited",
			windowCapacity: ptr.Ptr(0),
			tenantCapacity: ptr.Ptr(-5),
			bounded:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Window{StartMinute: 18 * 60, EndMinute: 21 * 60, Capacity: tt.windowCapacity}

			capacity, bounded := EffectiveCapacity(w, tt.tenantCapacity)

			require.Equal(t, tt.bounded, bounded)
			if tt.bounded {
				assert.Equal(t, tt.want, capacity)
			}
		})
	}
}
