package api

import (
	"bytes"
	"errors"
	"go/format"
	"os"
	"reflect"
	"testing"
	"time"
)

func TestTableLayoutMatchesSlotNames(t *testing.T) {
	typ := reflect.TypeOf(Table{})
	if typ.NumField() != len(SlotNames) {
		t.Fatalf("Table has %d fields, SlotNames has %d", typ.NumField(), len(SlotNames))
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Type.Kind() != reflect.Func {
			t.Fatalf("field %s is %s, want func", f.Name, f.Type.Kind())
		}
		if got := f.Tag.Get("slot"); got != SlotNames[i] {
			t.Fatalf("slot %d is %q (%s), want %q", i, got, f.Name, SlotNames[i])
		}
	}
	if SlotNames[0] != "api_version_get" {
		t.Fatalf("first slot = %q, version query must come first", SlotNames[0])
	}
}

func TestVersion(t *testing.T) {
	v := NewVersion(1, 2, 3)
	if v.Major() != 1 || v.Minor() != 2 || v.Patch() != 3 {
		t.Fatalf("NewVersion(1, 2, 3) unpacks to %d.%d.%d", v.Major(), v.Minor(), v.Patch())
	}
	if got := v.String(); got != "1.2.3" {
		t.Fatalf("String() = %q, want %q", got, "1.2.3")
	}
	if APIVersion != NewVersion(0, 11, 0) {
		t.Fatalf("APIVersion = %s, want 0.11.0", APIVersion)
	}
}

func TestVersionCompatible(t *testing.T) {
	tests := []struct {
		have, want Version
		ok         bool
	}{
		{NewVersion(0, 11, 0), NewVersion(0, 11, 4), true},
		{NewVersion(0, 12, 0), NewVersion(0, 11, 0), false},
		{NewVersion(1, 3, 0), NewVersion(1, 2, 0), true},
		{NewVersion(1, 1, 0), NewVersion(1, 2, 0), false},
		{NewVersion(2, 0, 0), NewVersion(1, 0, 0), false},
	}
	for _, tt := range tests {
		if got := tt.have.Compatible(tt.want); got != tt.ok {
			t.Fatalf("%s.Compatible(%s) = %v, want %v", tt.have, tt.want, got, tt.ok)
		}
	}
}

func TestErrorsMatchByValue(t *testing.T) {
	var err error = UnsupportedConfiguration(0)
	if !errors.Is(err, UnsupportedConfiguration(0)) {
		t.Fatal("UnsupportedConfiguration(0) does not match itself")
	}
	if errors.Is(err, UnsupportedConfiguration(1)) {
		t.Fatal("reason codes are ignored by errors.Is")
	}
	if errors.Is(err, ErrUnimplemented) {
		t.Fatal("different kinds match")
	}
	if KindOf(ErrInvalidDevice) != KindInvalidDevice {
		t.Fatalf("KindOf(ErrInvalidDevice) = %s", KindOf(ErrInvalidDevice))
	}
	if KindOf(errors.New("other")) != 0 {
		t.Fatal("KindOf(foreign error) != 0")
	}
	if got := UnsupportedConfiguration(7).Error(); got != "api: unsupported_configuration(7)" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestTimeGo(t *testing.T) {
	got := Time{Secs: 86400, Nsecs: 5}.Go()
	want := time.Date(2000, time.January, 2, 0, 0, 0, 5, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Go() = %v, want %v", got, want)
	}
}

func TestTableSourceIsFormatted(t *testing.T) {
	src, err := os.ReadFile("table.go")
	if err != nil {
		t.Fatal(err)
	}
	got, err := format.Source(src)
	if err != nil {
		t.Fatalf("format.Source: %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Fatal("table.go is not gofmt-formatted")
	}
}
