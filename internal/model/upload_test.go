package model

import "testing"

func TestIsAllowedImageExt(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"rex.jpg", true},
		{"rex.jpeg", true},
		{"rex.png", true},
		{"rex.gif", true},
		{"REX.JPG", true},
		{"rex.pdf", false},
		{"rex.exe", false},
		{"rex", false},
		{"rex.jpg.exe", false},
		{".jpg", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := IsAllowedImageExt(tt.filename); got != tt.want {
				t.Errorf("IsAllowedImageExt(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}
