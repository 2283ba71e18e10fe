package trips

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmind/tripmind/internal/app/models"
)

func sampleTrip() *models.Trip {
	return &models.Trip{
		Destination: "北京",
		Duration:    "3天2晚",
		TravelType:  "文化观光",
		Days: []models.TripDay{
			{
				Title: "故宫与天安门广场",
				Activities: []models.Activity{
					{Time: "上午 9:00", Title: "天安门广场", Location: "北京市东城区"},
					{Time: "上午 10:30", Title: "故宫博物院", Location: "北京市东城区景山前街4号"},
				},
			},
		},
		Notes: []string{"故宫需要提前网上预约门票"},
	}
}

func TestShareLinkRoundTrip(t *testing.T) {
	link, err := ShareLink("https://example.com", sampleTrip())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, "https://example.com/share/?data="))

	data := strings.TrimPrefix(link, "https://example.com/share/?data=")
	decoded, err := DecodeShared(data)
	require.NoError(t, err)
	assert.Equal(t, "北京", decoded.Destination)
	assert.Equal(t, "3天2晚", decoded.Duration)
	require.Len(t, decoded.Days, 1)
	assert.Len(t, decoded.Days[0].Activities, 2)
}

func TestShareLinkTrimsTrailingSlash(t *testing.T) {
	link, err := ShareLink("https://example.com/", sampleTrip())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://example.com/share/?data="))
}

func TestShareLinkRejectsInvalidTrip(t *testing.T) {
	tests := []struct {
		name string
		trip *models.Trip
	}{
		{"nil trip", nil},
		{"no destination", &models.Trip{Days: []models.TripDay{{Activities: []models.Activity{{Title: "x"}}}}}},
		{"no days", &models.Trip{Destination: "北京"}},
		{"empty day", &models.Trip{Destination: "北京", Days: []models.TripDay{{Title: "第一天"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShareLink("https://example.com", tt.trip)
			assert.Error(t, err)
		})
	}
}

func TestDecodeSharedRejectsGarbage(t *testing.T) {
	_, err := DecodeShared("%zz")
	assert.Error(t, err)

	_, err = DecodeShared("not-json")
	assert.Error(t, err)

	_, err = DecodeShared("%7B%22destination%22%3A%22%22%7D")
	assert.Error(t, err, "decoded trip must still validate")
}
