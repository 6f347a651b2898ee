package fleet

import (
	"fmt"
	"strings"
)

// Category is one kind of remote fleet resource with its own column schema.
type Category int

const (
	// CoreDevices are Greengrass core devices.
	CoreDevices Category = iota
	// ThingGroups are IoT Core thing groups.
	ThingGroups
	// Deployments are Greengrass deployments (latest revision only).
	Deployments
)

// Categories lists every category in tab order.
var Categories = []Category{CoreDevices, ThingGroups, Deployments}

// Title returns the tab title of the category.
func (c Category) Title() string {
	switch c {
	case CoreDevices:
		return "Core Devices"
	case ThingGroups:
		return "Thing Groups"
	case Deployments:
		return "Deployments"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Slug returns the lowercase identifier used in config files and exports.
func (c Category) Slug() string {
	switch c {
	case CoreDevices:
		return "devices"
	case ThingGroups:
		return "groups"
	case Deployments:
		return "deployments"
	default:
		return fmt.Sprintf("category-%d", int(c))
	}
}

// Headers returns the fixed column names of the category.
func (c Category) Headers() []string {
	switch c {
	case CoreDevices:
		return []string{"Name", "Status", "Last Status Update"}
	case ThingGroups:
		return []string{"Name", "ARN"}
	case Deployments:
		return []string{"Name", "Status", "Created"}
	default:
		return nil
	}
}

// StatusColumn returns the index of the Status column, or -1 when the
// category has none.
func (c Category) StatusColumn() int {
	for i, h := range c.Headers() {
		if h == "Status" {
			return i
		}
	}
	return -1
}

// Index returns the position of c in Categories, or 0 if unknown.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return 0
}

// ParseCategory accepts a slug ("devices") or a title ("Core Devices").
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if s == c.Slug() || s == strings.ToLower(c.Title()) {
			return c, nil
		}
	}
	return CoreDevices, fmt.Errorf("unknown category %q", s)
}
