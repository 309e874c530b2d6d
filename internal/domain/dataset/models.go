package dataset

import "time"

// Device is the client platform a record was captured on.
type Device string

const (
	DeviceWeb     Device = "Web"
	DeviceIOS     Device = "iOS"
	DeviceAndroid Device = "Android"
)

// Devices is the closed set of valid device values, in generation draw order.
var Devices = []Device{DeviceWeb, DeviceIOS, DeviceAndroid}

// Status is the review state of a record.
type Status string

const (
	StatusActive   Status = "active"
	StatusIdle     Status = "idle"
	StatusReviewed Status = "reviewed"
)

// Statuses is the closed set of valid status values, in generation draw order.
var Statuses = []Status{StatusActive, StatusIdle, StatusReviewed}

// Pages is the closed set of page paths a record can reference.
var Pages = []string{
	"/home", "/dashboard", "/profile", "/settings", "/products",
	"/checkout", "/cart", "/search", "/about", "/contact",
	"/blog", "/docs", "/pricing", "/features", "/help",
}

// Record is one synthetic user event row. Records are immutable once
// generated; derived views always work on copies.
type Record struct {
	UserID    string    `json:"user_id"`
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
	Device    Device    `json:"device"`
	Status    Status    `json:"status"`
}

// DateRange is an inclusive instant interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Sentinel filter values meaning "no constraint". The casing difference is
// inherited from the dashboard UI, which sends "All" for devices and "all"
// for statuses.
const (
	DeviceAll = "All"
	StatusAll = "all"
)

// FilterSpec is a declarative record filter. A zero-value field (or its
// sentinel) places no constraint; present constraints combine with AND.
type FilterSpec struct {
	DateRange *DateRange `json:"dateRange,omitempty"`
	Device    string     `json:"device,omitempty"`
	Status    string     `json:"status,omitempty"`
}

// Matches reports whether rec satisfies every present constraint.
func (f FilterSpec) Matches(rec Record) bool {
	if f.DateRange != nil && !f.DateRange.Contains(rec.Timestamp) {
		return false
	}
	if f.Device != "" && f.Device != DeviceAll && string(rec.Device) != f.Device {
		return false
	}
	if f.Status != "" && f.Status != StatusAll && string(rec.Status) != f.Status {
		return false
	}
	return true
}
