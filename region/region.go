// Package region maps the canonical region names used by the host application (US_EAST_1) to
// AWS regions.
package region

import "strings"

// Region is an AWS region known to this package.
type Region int

// Unknown is returned for any name that is not in the table.
const Unknown Region = 0

const (
	USEast1 Region = iota + 1
	USEast2
	USWest1
	USWest2
	EUWest1
	EUWest2
	EUWest3
	EUCentral1
	EUNorth1
	CACentral1
	CNNorth1
	CNNorthwest1
	SAEast1
	APNortheast1
	APNortheast2
	APSoutheast1
	APSoutheast2
	APSouth1
	APEast1
	MESouth1
	USGovEast1
	USGovWest1
)

type entry struct {
	name string
	code string
}

var table = map[Region]entry{
	USEast1:      {"US_EAST_1", "us-east-1"},
	USEast2:      {"US_EAST_2", "us-east-2"},
	USWest1:      {"US_WEST_1", "us-west-1"},
	USWest2:      {"US_WEST_2", "us-west-2"},
	EUWest1:      {"EU_WEST_1", "eu-west-1"},
	EUWest2:      {"EU_WEST_2", "eu-west-2"},
	EUWest3:      {"EU_WEST_3", "eu-west-3"},
	EUCentral1:   {"EU_CENTRAL_1", "eu-central-1"},
	EUNorth1:     {"EU_NORTH_1", "eu-north-1"},
	CACentral1:   {"CA_CENTRAL_1", "ca-central-1"},
	CNNorth1:     {"CN_NORTH_1", "cn-north-1"},
	CNNorthwest1: {"CN_NORTHWEST_1", "cn-northwest-1"},
	SAEast1:      {"SA_EAST_1", "sa-east-1"},
	APNortheast1: {"AP_NORTHEAST_1", "ap-northeast-1"},
	APNortheast2: {"AP_NORTHEAST_2", "ap-northeast-2"},
	APSoutheast1: {"AP_SOUTHEAST_1", "ap-southeast-1"},
	APSoutheast2: {"AP_SOUTHEAST_2", "ap-southeast-2"},
	APSouth1:     {"AP_SOUTH_1", "ap-south-1"},
	APEast1:      {"AP_EAST_1", "ap-east-1"},
	MESouth1:     {"ME_SOUTH_1", "me-south-1"},
	USGovEast1:   {"US_GOV_EAST_1", "us-gov-east-1"},
	USGovWest1:   {"us-gov-west-1", "us-gov-west-1"},
}

var (
	byName = make(map[string]Region, len(table))
	byCode = make(map[string]Region, len(table))
)

func init() {
	for r, e := range table {
		byName[e.name] = r
		byCode[e.code] = r
	}
}

// Resolve returns the Region for a canonical name. Matching is case-sensitive; anything not in
// the table is Unknown.
func Resolve(name string) Region {
	return byName[name]
}

// Parse is the lenient form of Resolve used for configuration values. It accepts a canonical
// name, an SDK code ("us-east-1") or the upper-case dashed form ("US-EAST-1").
func Parse(s string) Region {
	if r := Resolve(s); r != Unknown {
		return r
	}
	return byCode[strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))]
}

// All returns every known Region in declaration order.
func All() []Region {
	all := make([]Region, 0, len(table))
	for r := USEast1; r <= USGovWest1; r++ {
		all = append(all, r)
	}
	return all
}

// String returns the canonical name, or "UNKNOWN".
func (r Region) String() string {
	if e, ok := table[r]; ok {
		return e.name
	}
	return "UNKNOWN"
}

// Code returns the SDK region code, or "" for Unknown so the SDK's own region resolution applies.
func (r Region) Code() string {
	return table[r].code
}

// Known reports whether r is in the table.
func (r Region) Known() bool {
	_, ok := table[r]
	return ok
}
