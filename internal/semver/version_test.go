package semver

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"3.5.0", "3.5.0", false},
		{"v1.2.3", "1.2.3", false},
		{" 1.2.3\n", "1.2.3", false},
		{"1.0.0-rc.1", "1.0.0-rc.1", false},
		{"1.0.0-rc.1+build.5", "1.0.0-rc.1+build.5", false},
		{"1.2", "", true},
		{"3.5.0a1", "", true},
		{"01.2.3", "", true},
		{"not-a-version", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("ParseVersion(%q) err = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseVersion(%q) = %q, want %q", tt.input, v.String(), tt.want)
			}
		})
	}
}

func TestParseVersion_TooLong(t *testing.T) {
	long := "1.2.3-"
	for len(long) <= maxVersionLength {
		long += "a"
	}
	if _, err := ParseVersion(long); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("expected ErrInvalidVersion for overlong input, got %v", err)
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		input   string
		want    SemVersion
		wantErr bool
	}{
		{"2.1", SemVersion{Major: 2, Minor: 1}, false},
		{"v3", SemVersion{Major: 3}, false},
		{"3.5.0", SemVersion{Major: 3, Minor: 5}, false},
		{"1.10.2", SemVersion{Major: 1, Minor: 10, Patch: 2}, false},
		{"3.0.0-rc.1", SemVersion{Major: 3, PreRelease: "rc.1"}, false},
		{"3.0.0a1", SemVersion{Major: 3, PreRelease: "a1"}, false},
		{"latest", SemVersion{}, true},
		{"", SemVersion{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLabel(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLabel(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "2.0.0", -1},
		{"1.2.0", "1.10.0", -1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0", "1.0.0-rc.1", 1},
		{"1.0.0-alpha.1", "1.0.0-alpha.beta", -1},
		{"1.0.0-rc.2", "1.0.0-rc.10", -1},
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0+build.1", "1.0.0+build.2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, err := ParseVersion(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := ParseVersion(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
