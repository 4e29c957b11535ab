//go:build linux
// +build linux

package main

import (
	"reflect"
	"testing"
)

func TestParseBoolOrAuto(t *testing.T) {
	for _, test := range []struct {
		in      string
		want    *bool
		wantErr bool
	}{
		{"", nil, false},
		{"auto", nil, false},
		{"AUTO", nil, false},
		{"true", boolPtr(true), false},
		{"1", boolPtr(true), false},
		{"false", boolPtr(false), false},
		{"0", boolPtr(false), false},
		{"junk", nil, true},
	} {
		got, err := parseBoolOrAuto(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("parseBoolOrAuto(%q) error = %v, wantErr %v", test.in, err, test.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if (got == nil) != (test.want == nil) || (got != nil && *got != *test.want) {
			t.Errorf("parseBoolOrAuto(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func TestParseAttributes(t *testing.T) {
	attrs, err := parseAttributes("", "", "", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Cpus != nil || attrs.Mems != nil || attrs.MemoryMigrate != nil ||
		attrs.CpuExclusive != nil || attrs.MemHardwall != nil || attrs.SchedRelaxDomainLevel != nil {
		t.Errorf("empty flags produced %+v", attrs)
	}

	attrs, err = parseAttributes("0-2,7", "0", "true", "", "false", "4")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 7}; !reflect.DeepEqual(attrs.Cpus, want) {
		t.Errorf("Cpus = %v, want %v", attrs.Cpus, want)
	}
	if want := []int{0}; !reflect.DeepEqual(attrs.Mems, want) {
		t.Errorf("Mems = %v, want %v", attrs.Mems, want)
	}
	if attrs.MemoryMigrate == nil || !*attrs.MemoryMigrate {
		t.Errorf("MemoryMigrate = %v", attrs.MemoryMigrate)
	}
	if attrs.CpuExclusive != nil {
		t.Errorf("CpuExclusive = %v, want nil", *attrs.CpuExclusive)
	}
	if attrs.MemHardwall == nil || *attrs.MemHardwall {
		t.Errorf("MemHardwall = %v", attrs.MemHardwall)
	}
	if attrs.SchedRelaxDomainLevel == nil || *attrs.SchedRelaxDomainLevel != 4 {
		t.Errorf("SchedRelaxDomainLevel = %v", attrs.SchedRelaxDomainLevel)
	}

	for _, bad := range [][6]string{
		{"x", "", "", "", "", ""},
		{"", "3-1", "", "", "", ""},
		{"", "", "maybe", "", "", ""},
		{"", "", "", "", "", "high"},
	} {
		if _, err := parseAttributes(bad[0], bad[1], bad[2], bad[3], bad[4], bad[5]); err == nil {
			t.Errorf("parseAttributes(%v) did not fail", bad)
		}
	}
}
