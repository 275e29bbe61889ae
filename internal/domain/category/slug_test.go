package category

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Medicine", "medicine"},
		{"Pain Relief", "pain-relief"},
		{"pain-relief", "pain-relief"},
		{"  Cough & Cold  ", "cough-cold"},
		{"Vitamin B12", "vitamin-b12"},
		{"---Tablets---", "tablets"},
		{"First   Aid!!!", "first-aid"},
		{"über", "ber"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.name); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
