// Package dnsname normalizes names and record content entered on the command line.
package dnsname

import "strings"

// Apex is the shorthand for the zone itself.
const Apex = "@"

// Canonical ensures the name has a trailing dot.
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasSuffix(name, ".") {
		return name
	}

	return name + "."
}

// Qualify turns a record name relative to zone into a canonical name.
// "@" and "" denote the apex, names with a trailing dot are kept.
func Qualify(name, zone string) string {
	name = strings.TrimSpace(name)
	zone = Canonical(zone)

	switch {
	case name == "" || name == Apex:
		return zone
	case strings.HasSuffix(name, "."):
		return name
	case strings.EqualFold(name+".", zone):
		return zone
	case strings.HasSuffix(strings.ToLower(name), "."+strings.ToLower(strings.TrimSuffix(zone, "."))):
		return name + "."
	}

	return name + "." + zone
}

// Relative strips the zone suffix from a record name, "@" for the apex.
func Relative(fullName, zone string) string {
	zoneWithoutDot := strings.TrimSuffix(zone, ".")

	switch {
	case fullName == zone || fullName == zoneWithoutDot:
		return Apex
	case strings.HasSuffix(fullName, "."+zoneWithoutDot+"."):
		return strings.TrimSuffix(fullName, "."+zoneWithoutDot+".")
	case strings.HasSuffix(fullName, "."+zoneWithoutDot):
		return strings.TrimSuffix(fullName, "."+zoneWithoutDot)
	}

	return fullName
}

// IsReverse reports whether zone is an in-addr.arpa or ip6.arpa zone.
func IsReverse(zone string) bool {
	zone = Canonical(strings.ToLower(zone))

	return strings.HasSuffix(zone, "in-addr.arpa.") || strings.HasSuffix(zone, "ip6.arpa.")
}
