package domain

import (
	"math"
	"testing"
)

func TestParseLatLng(t *testing.T) {
	t.Run("parses a lat,lng pair", func(t *testing.T) {
		lat, lng, err := ParseLatLng("34.1117,-118.1136")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if lat != 34.1117 || lng != -118.1136 {
			t.Fatalf("expected (34.1117, -118.1136), got (%v, %v)", lat, lng)
		}
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		lat, lng, err := ParseLatLng(" 10.5 , 20.25 ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if lat != 10.5 || lng != 20.25 {
			t.Fatalf("expected (10.5, 20.25), got (%v, %v)", lat, lng)
		}
	})

	invalid := []string{"", "34.1117", "34.1117,", ",-118.1136", "a,b", "34.1117,-118.1136,5"}
	for _, in := range invalid {
		if _, _, err := ParseLatLng(in); err == nil {
			t.Fatalf("ParseLatLng(%q): expected error, got nil", in)
		}
	}
}

func TestAngularRadius(t *testing.T) {
	if got := AngularRadius(3963.2, "mi"); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected one earth radius in miles to be 1 radian, got %v", got)
	}
	if got := AngularRadius(6378.1, "km"); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected one earth radius in kilometers to be 1 radian, got %v", got)
	}
	if got := AngularRadius(0, "mi"); got != 0 {
		t.Fatalf("expected zero distance to be zero radians, got %v", got)
	}
}

func TestDistanceMultiplier(t *testing.T) {
	if got := DistanceMultiplier("mi"); got != 0.000621371 {
		t.Fatalf("expected miles multiplier, got %v", got)
	}
	if got := DistanceMultiplier("km"); got != 0.001 {
		t.Fatalf("expected kilometers multiplier, got %v", got)
	}
	// anything that is not miles falls back to kilometers
	if got := DistanceMultiplier("furlongs"); got != 0.001 {
		t.Fatalf("expected kilometers fallback, got %v", got)
	}
}
