package region

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type regionTestSuite struct {
	suite.Suite
}

func (ts *regionTestSuite) TestResolveKnownNames() {
	tests := map[string]Region{
		"US_EAST_1":      USEast1,
		"US_EAST_2":      USEast2,
		"EU_WEST_1":      EUWest1,
		"EU_WEST_2":      EUWest2,
		"EU_WEST_3":      EUWest3,
		"EU_CENTRAL_1":   EUCentral1,
		"EU_NORTH_1":     EUNorth1,
		"CA_CENTRAL_1":   CACentral1,
		"CN_NORTH_1":     CNNorth1,
		"CN_NORTHWEST_1": CNNorthwest1,
		"SA_EAST_1":      SAEast1,
		"US_WEST_1":      USWest1,
		"US_WEST_2":      USWest2,
		"AP_NORTHEAST_1": APNortheast1,
		"AP_NORTHEAST_2": APNortheast2,
		"AP_SOUTHEAST_1": APSoutheast1,
		"AP_SOUTHEAST_2": APSoutheast2,
		"AP_SOUTH_1":     APSouth1,
		"AP_EAST_1":      APEast1,
		"ME_SOUTH_1":     MESouth1,
		"US_GOV_EAST_1":  USGovEast1,
		"us-gov-west-1":  USGovWest1,
	}

	seen := map[Region]string{}
	for name, want := range tests {
		got := Resolve(name)
		ts.Equal(want, got, "Resolve(%q)", name)
		ts.Equal(name, got.String())
		if prev, ok := seen[got]; ok {
			ts.Failf("duplicate region", "%s and %s resolve to the same region", prev, name)
		}
		seen[got] = name
	}
	ts.Len(All(), len(tests), "every table entry should be covered")
}

func (ts *regionTestSuite) TestResolveUnknown() {
	for _, name := range []string{"", "us_east_1", "US-EAST-1", "us-east-1", "MARS_NORTH_1", " US_EAST_1"} {
		ts.Equal(Unknown, Resolve(name), "Resolve(%q) should be Unknown", name)
	}
	ts.Equal("UNKNOWN", Unknown.String())
	ts.Equal("", Unknown.Code())
	ts.False(Unknown.Known())
}

func (ts *regionTestSuite) TestParse() {
	ts.Equal(USEast1, Parse("US_EAST_1"))
	ts.Equal(USEast1, Parse("us-east-1"))
	ts.Equal(APSoutheast2, Parse("AP-SOUTHEAST-2"))
	ts.Equal(EUCentral1, Parse(" eu-central-1 "))
	ts.Equal(USGovWest1, Parse("US_GOV_WEST_1"))
	ts.Equal(Unknown, Parse("nowhere-1"))
}

func (ts *regionTestSuite) TestCode() {
	ts.Equal("us-east-1", USEast1.Code())
	ts.Equal("cn-northwest-1", CNNorthwest1.Code())
	ts.Equal("us-gov-west-1", USGovWest1.Code())
	for _, r := range All() {
		ts.NotEmpty(r.Code(), "%s has no code", r)
		ts.True(r.Known())
		ts.Equal(r, Parse(r.Code()))
	}
}

func TestRegion(t *testing.T) {
	suite.Run(t, new(regionTestSuite))
}
