package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedaudit/internal/codebook"
	"feedaudit/internal/feed"
)

func prop(ref string) feed.Property {
	return feed.Property{
		ExternalReference: ref,
		HasImages:         true,
		HasDocuments:      true,
		Address:           feed.Address{Postcode: "LS1 4AB"},
		Size:              feed.SizeRange{Present: true, From: "100", To: "200"},
	}
}

func TestBlankPhones(t *testing.T) {
	agents := []feed.Agent{
		{Name: "Has Phone", Email: "a@x.com", Telephone: feed.Field{Present: true, Text: "01234"}},
		{Name: "Zero Phone", Email: "b@x.com", Telephone: feed.Field{Present: true, Text: "0"}},
		{Name: "Space Phone", Email: "c@x.com", Telephone: feed.Field{Present: true, Text: "   "}},
		{Name: "No Phone", Email: "d@x.com"},
		{Telephone: feed.Field{Present: true, Text: ""}},
	}
	got := blankPhones(agents)
	require.Len(t, got, 3)
	assert.Equal(t, Contact{Name: "Space Phone", Email: "c@x.com"}, got[0])
	assert.Equal(t, Contact{Name: "No Phone", Email: "d@x.com"}, got[1])
	assert.Equal(t, Contact{Name: "[No Name]", Email: "[No Email]"}, got[2])
}

func TestRefUsageAccounting(t *testing.T) {
	props := []feed.Property{
		prop("A"), prop("B"), prop("B"), prop("C"), prop("C"), prop("C"), prop(""),
	}
	usage := refUsage(props)

	assert.Equal(t, 2, usage.Unique) // A and the empty ref
	assert.Equal(t, map[string]int{"B": 2, "C": 3}, usage.Duplicates)

	// Every record is accounted for exactly once.
	total := usage.Unique
	for _, c := range usage.Duplicates {
		total += c
	}
	assert.Equal(t, len(props), total)
}

func TestStatusCountsUnknownBucket(t *testing.T) {
	props := []feed.Property{
		{SalesStatus: "1"}, {SalesStatus: "1"}, {SalesStatus: "3"},
		{SalesStatus: "99"}, {SalesStatus: ""},
	}
	counts, unknown := statusCounts(props)

	require.Len(t, counts, len(codebook.SalesStatusCodes))
	assert.Equal(t, CodeCount{Code: "1", Label: "Available", Count: 2}, counts[0])
	assert.Equal(t, CodeCount{Code: "3", Label: "Sold", Count: 1}, counts[2])
	assert.Equal(t, map[string]int{"99": 1, "": 1}, unknown)
}

func TestLeaseholdToLetPerBasis(t *testing.T) {
	p := prop("R1")
	p.SaleBases = []feed.SaleBasis{
		{TenureType: codebook.TenureFreehold, SaleType: codebook.SaleTypeToLet},
		{TenureType: codebook.TenureLeasehold, SaleType: codebook.SaleTypeToLet},
		{TenureType: codebook.TenureNA, SaleType: codebook.SaleTypeToLet},
	}
	clean := prop("R2")
	clean.SaleBases = []feed.SaleBasis{
		{TenureType: codebook.TenureFreehold, SaleType: codebook.SaleTypeForSale},
	}
	// Two conflicting bases, so R1 appears twice.
	assert.Equal(t, []string{"R1", "R1"}, leaseholdToLet([]feed.Property{p, clean}))
}

func TestForSalePriceType(t *testing.T) {
	hit := prop("H")
	hit.SaleBases = []feed.SaleBasis{
		{SaleType: codebook.SaleTypeForSale, TenureType: codebook.TenureNA, GuidePriceType: "1"},
	}
	naPrice := prop("N")
	naPrice.SaleBases = []feed.SaleBasis{
		{SaleType: codebook.SaleTypeForSale, TenureType: codebook.TenureNA, GuidePriceType: codebook.GuidePriceTypeNA},
	}
	toLet := prop("T")
	toLet.SaleBases = []feed.SaleBasis{
		{SaleType: codebook.SaleTypeToLet, TenureType: codebook.TenureNA, GuidePriceType: "1"},
	}
	assert.Equal(t, []string{"H"}, forSalePriceType([]feed.Property{hit, naPrice, toLet}))
}

func TestConflictRulesAreDisjointPerBasis(t *testing.T) {
	// A single basis can never trip both tenure conflicts: one requires To
	// Let, the other For Sale.
	p := prop("X")
	p.SaleBases = []feed.SaleBasis{
		{TenureType: codebook.TenureLeasehold, SaleType: codebook.SaleTypeToLet, GuidePriceType: "1"},
	}
	props := []feed.Property{p}
	assert.NotEmpty(t, leaseholdToLet(props))
	assert.Empty(t, forSalePriceType(props))
}

func TestMissingContainers(t *testing.T) {
	emptyButPresent := prop("E") // HasImages/HasDocuments true, no entries
	absent := prop("A")
	absent.HasImages = false
	absent.HasDocuments = false

	rep := Run(&feed.Document{Properties: []feed.Property{emptyButPresent, absent}})
	assert.Equal(t, []string{"A"}, rep.MissingImages)
	assert.Equal(t, []string{"A"}, rep.MissingDocuments)
}

func TestDuplicateAddresses(t *testing.T) {
	dup := prop("D")
	dup.Name = "Riverside House"
	dup.Address = feed.Address{Address1: "Riverside House", TownCity: "Leeds", Postcode: "LS1"}

	empties := prop("E")
	empties.Address = feed.Address{Postcode: "LS1"} // repeated empty strings do not count

	clean := prop("C")
	clean.Name = "Unit 1"
	clean.Address = feed.Address{Address1: "Unit 2", TownCity: "Leeds", Postcode: "LS2"}

	got := duplicateAddresses([]feed.Property{dup, empties, clean})
	require.Len(t, got, 1)
	assert.Equal(t, "D", got[0].Ref)
	assert.Equal(t, "Riverside House", got[0].Name)
}

func TestBlankCoordinates(t *testing.T) {
	bothBlank := prop("B")
	bothBlank.Location = feed.Location{
		Present:   true,
		Latitude:  feed.Field{Present: true, Text: " "},
		Longitude: feed.Field{Present: true, Text: ""},
	}
	oneBlank := prop("O")
	oneBlank.Location = feed.Location{
		Present:   true,
		Latitude:  feed.Field{Present: true, Text: "53.8"},
		Longitude: feed.Field{Present: true, Text: "  "},
	}
	// Latitude present but empty while longitude is absent entirely: the rule
	// only applies when both tags exist.
	lonAbsent := prop("L")
	lonAbsent.Location = feed.Location{
		Present:  true,
		Latitude: feed.Field{Present: true, Text: ""},
	}
	good := prop("G")
	good.Location = feed.Location{
		Present:   true,
		Latitude:  feed.Field{Present: true, Text: "53.8"},
		Longitude: feed.Field{Present: true, Text: "-1.5"},
	}
	noLocation := prop("N")

	got := blankCoordinates([]feed.Property{bothBlank, oneBlank, lonAbsent, good, noLocation})
	assert.Equal(t, []string{"B", "O"}, got)
}

func TestInvalidSizes(t *testing.T) {
	good := prop("G")
	good.Size = feed.SizeRange{Present: true, From: " 1200 ", To: "2400.5"}
	badTo := prop("B")
	badTo.Size = feed.SizeRange{Present: true, From: "100", To: "POA"}
	missing := prop("M")
	missing.Size = feed.SizeRange{} // absent size fails the numeric parse

	got := invalidSizes([]feed.Property{good, badTo, missing})
	assert.Equal(t, []string{"B", "M"}, got)
}

func TestBlankPostcodes(t *testing.T) {
	has := prop("H")
	none := prop("N")
	none.Address.Postcode = ""
	spaces := prop("S")
	spaces.Address.Postcode = "  " // whitespace counts as a value here

	got := blankPostcodes([]feed.Property{has, none, spaces})
	assert.Equal(t, []string{"N"}, got)
}

func TestRunAggregates(t *testing.T) {
	p1 := prop("A")
	p1.PropertyType = "2"
	p1.PropertySubtype = "25"
	p1.SalesStatus = "1"
	p2 := prop("A") // duplicate ref
	p2.PropertyType = "2"
	p2.PropertySubtype = "25"
	p2.SalesStatus = "2"
	p3 := prop("B")
	p3.PropertyType = "3"
	p3.SalesStatus = "1"

	rep := Run(&feed.Document{Properties: []feed.Property{p1, p2, p3}})

	assert.Equal(t, 1, rep.References.Unique)
	assert.Equal(t, map[string]int{"A": 2}, rep.References.Duplicates)
	assert.Equal(t, 2, rep.SubtypeCount)
	// ("2","25") and ("3","") are the two distinct combinations.
	assert.Equal(t, 2, rep.TypeSubtypeCombos)
	assert.Equal(t, 2, rep.StatusCounts[0].Count) // Available
	assert.Equal(t, 2, rep.TypeCounts[1].Count)   // Industrial
}
