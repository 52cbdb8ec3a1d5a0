package scene

import "testing"

func TestFirstTexture(t *testing.T) {
	tests := []struct {
		name    string
		handles []uint32
		want    uint32
	}{
		{"descriptor map wins", []uint32{4, 7, 1}, 4},
		{"mesh texture next", []uint32{0, 7, 1}, 7},
		{"fallback last", []uint32{0, 0, 1}, 1},
		{"none", []uint32{0, 0}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstTexture(tt.handles...); got != tt.want {
				t.Errorf("firstTexture(%v) = %d, want %d", tt.handles, got, tt.want)
			}
		})
	}
}
