package analytics

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseRegionFilter(t *testing.T) {
	tests := []struct {
		raw     string
		all     bool
		region  string
		wantErr bool
	}{
		{raw: "all", all: true},
		{raw: " ALL ", all: true},
		{raw: "Europe", region: "Europe"},
		{raw: "  Asia ", region: "Asia"},
		{raw: "", wantErr: true},
		{raw: "   ", wantErr: true},
	}
	for _, tt := range tests {
		f, err := ParseRegionFilter(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrEmptyRegion) {
				t.Errorf("ParseRegionFilter(%q) err = %v, want ErrEmptyRegion", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRegionFilter(%q): %v", tt.raw, err)
		}
		if f.IsAll() != tt.all {
			t.Errorf("ParseRegionFilter(%q).IsAll() = %v", tt.raw, f.IsAll())
		}
		if !tt.all && f.String() != tt.region {
			t.Errorf("ParseRegionFilter(%q) = %q", tt.raw, f.String())
		}
	}
}

func TestRegionFilterMatches(t *testing.T) {
	if !AllRegions().Matches("anything") || !AllRegions().Matches("") {
		t.Error("AllRegions must match every region")
	}
	europe := OnlyRegion("Europe")
	if !europe.Matches("Europe") || europe.Matches("Asia") {
		t.Error("OnlyRegion must match exactly one region")
	}
	// A region literally named "all" is not the same as no filter.
	if OnlyRegion("all").IsAll() {
		t.Error("OnlyRegion(\"all\") must stay a single-region filter")
	}
}

func TestRegionFilterJSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Filter RegionFilter `json:"filter"`
	}{OnlyRegion("Asia")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"filter":"Asia"}` {
		t.Errorf("json = %s", raw)
	}
}
