package api

import "strconv"

// Version is a packed major.minor.patch triple.
type Version uint32

// NewVersion packs a version triple.
func NewVersion(major, minor, patch uint8) Version {
	return Version(uint32(major)<<16 | uint32(minor)<<8 | uint32(patch))
}

// APIVersion is the layout of Table this firmware implements. A consumer
// must check the major and minor numbers before calling any other slot.
const APIVersion Version = 0<<16 | 11<<8 | 0

func (v Version) Major() uint8 { return uint8(v >> 16) }
func (v Version) Minor() uint8 { return uint8(v >> 8) }
func (v Version) Patch() uint8 { return uint8(v) }

// Compatible reports whether a consumer built against want can use v.
// Before 1.0 every minor release may change the layout.
func (v Version) Compatible(want Version) bool {
	if v.Major() != want.Major() {
		return false
	}
	if v.Major() == 0 {
		return v.Minor() == want.Minor()
	}
	return v.Minor() >= want.Minor()
}

func (v Version) String() string {
	return strconv.Itoa(int(v.Major())) + "." + strconv.Itoa(int(v.Minor())) + "." + strconv.Itoa(int(v.Patch()))
}
