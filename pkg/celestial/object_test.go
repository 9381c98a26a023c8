package celestial

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func validSnapshot() Snapshot {
	return Snapshot{
		ID:       "gaia",
		Name:     "Gaia",
		Category: CategoryPlanet,
		Position: mgl64.Vec3{10, 0, -4},
		Radius:   2.5,
		Mass:     5.97e24,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Snapshot)
		wantErr bool
	}{
		{"valid", func(s *Snapshot) {}, false},
		{"empty id", func(s *Snapshot) { s.ID = "" }, true},
		{"zero radius", func(s *Snapshot) { s.Radius = 0 }, true},
		{"negative radius", func(s *Snapshot) { s.Radius = -1 }, true},
		{"nan radius", func(s *Snapshot) { s.Radius = math.NaN() }, true},
		{"inf radius", func(s *Snapshot) { s.Radius = math.Inf(1) }, true},
		{"nan position", func(s *Snapshot) { s.Position[1] = math.NaN() }, true},
		{"inf position", func(s *Snapshot) { s.Position[2] = math.Inf(-1) }, true},
		{"zero mass ok", func(s *Snapshot) { s.Mass = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := validSnapshot()
			tt.mutate(&snap)

			err := snap.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if tt.wantErr && !errors.Is(err, ErrMissingData) {
				t.Errorf("error %v does not wrap ErrMissingData", err)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   Diff
	}{
		{"no change", func(s *Snapshot) {}, Diff{}},
		{"moved", func(s *Snapshot) { s.Position[0] += 5 }, Diff{Moved: true}},
		{"resized", func(s *Snapshot) { s.Radius = 3 }, Diff{Resized: true}},
		{"recolored", func(s *Snapshot) { s.Color.R = 99 }, Diff{Recolor: true}},
		{"reclassified", func(s *Snapshot) { s.Category = CategoryMoon }, Diff{Reclass: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := validSnapshot()
			next := validSnapshot()
			tt.mutate(&next)

			got := Compare(&prev, &next)
			if got != tt.want {
				t.Errorf("Compare() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDiffMaterial(t *testing.T) {
	if (Diff{Moved: true}).Material() {
		t.Error("move alone should not be a material change")
	}
	if !(Diff{Resized: true}).Material() {
		t.Error("resize is a material change")
	}
	if !(Diff{Reclass: true}).Material() {
		t.Error("reclassification is a material change")
	}
	if (Diff{}).Any() {
		t.Error("empty diff reports Any")
	}
	if !(Diff{Recolor: true}).Any() {
		t.Error("recolor diff should report Any")
	}
}
