package flatten

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedaudit/internal/feed"
)

func col(t *testing.T, name string) int {
	t.Helper()
	for i, h := range Header() {
		if h == name {
			return i
		}
	}
	t.Fatalf("no column %q", name)
	return -1
}

func TestHeaderRowShapeAgree(t *testing.T) {
	p := feed.Property{
		ExternalReference: "REF-1",
		Images:            []feed.Image{{Caption: "front", Type: "1", URL: "u"}},
		Documents:         []feed.Doc{{Description: "brochure", Type: "1", URL: "d"}},
		Links:             []feed.Link{{Name: "tour", Type: "3", URL: "l"}},
		SaleBases:         []feed.SaleBasis{{TenureType: "1"}},
	}
	rows := Rows(&feed.Document{Properties: []feed.Property{p}}, Options{})
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(Header()))
}

func TestRowTranslatesCodes(t *testing.T) {
	p := feed.Property{
		ExternalReference: "REF-1",
		Name:              "Unit 5",
		Address:           feed.Address{TownCity: "Leeds", Postcode: "LS1"},
		Location:          feed.Location{Present: true, Accuracy: "4", Latitude: feed.Field{Present: true, Text: "53.8"}},
		PropertyType:      "2",
		PropertySubtype:   "25",
		SalesStatus:       "1",
		Size:              feed.SizeRange{Present: true, Unit: "2", From: "1200", To: "2400"},
		SaleBases: []feed.SaleBasis{
			{TenureType: "1", SaleType: "1", GuidePrice: "250000", GuidePriceType: "3"},
		},
		Agents:      []feed.AgentRef{{MainAgent: "0", Email: "other@x.com"}, {MainAgent: "1", Email: "main@x.com"}},
		ForceUpdate: "1",
	}
	row := Rows(&feed.Document{Properties: []feed.Property{p}}, Options{})[0]

	assert.Equal(t, "Industrial", row[col(t, "property_type")])
	assert.Equal(t, "Available", row[col(t, "sales_status")])
	assert.Equal(t, "Exact", row[col(t, "location_accuracy")])
	assert.Equal(t, "Sq Ft", row[col(t, "size type")])
	assert.Equal(t, "Freehold", row[col(t, "tenure type 1")])
	assert.Equal(t, "For Sale", row[col(t, "sale type 1")])
	assert.Equal(t, "NA", row[col(t, "guide price type 1")])
	assert.Equal(t, "main@x.com", row[col(t, "email")])
	assert.Equal(t, "YES", row[col(t, "force_update")])
}

func TestRowSubtypeSentinel(t *testing.T) {
	p := feed.Property{PropertyType: "3", PropertySubtype: "n/a"}
	row := Rows(&feed.Document{Properties: []feed.Property{p}}, Options{})[0]
	assert.Equal(t, "exc field from xml", row[col(t, "property_subtype")])

	// Unmapped combinations pass the raw subtype through.
	p2 := feed.Property{PropertyType: "2", PropertySubtype: "999"}
	row2 := Rows(&feed.Document{Properties: []feed.Property{p2}}, Options{})[0]
	assert.Equal(t, "999", row2[col(t, "property_subtype")])
}

func TestRowSaleBasisCap(t *testing.T) {
	p := feed.Property{
		SaleBases: []feed.SaleBasis{
			{TenureType: "1", SaleType: "1"},
			{TenureType: "2", SaleType: "2"},
			{TenureType: "3", SaleType: "1"}, // third basis gets no columns
		},
	}
	header := Header()
	row := Rows(&feed.Document{Properties: []feed.Property{p}}, Options{})[0]

	assert.Equal(t, "Freehold", row[col(t, "tenure type 1")])
	assert.Equal(t, "Leasehold", row[col(t, "tenure type 2")])
	for _, h := range header {
		assert.False(t, strings.HasSuffix(h, " 3"), "unexpected column %q", h)
	}
}

func TestRowDescriptionsFixedColumns(t *testing.T) {
	p := feed.Property{
		Descriptions: []feed.Description{
			{Type: "2", Text: "Near the station."},
			{Type: "1", Text: "First general."},
			{Type: "1", Text: "Second general wins."},
			{Type: "9", Text: "Unknown type is dropped."},
		},
	}
	row := Rows(&feed.Document{Properties: []feed.Property{p}}, Options{})[0]

	assert.Equal(t, "Second general wins.", row[col(t, "General")])
	assert.Equal(t, "Near the station.", row[col(t, "Location")])
	assert.Equal(t, "", row[col(t, "Terms")])
}

func TestRowMediaJoinsArePositional(t *testing.T) {
	p := feed.Property{
		Images: []feed.Image{
			{Caption: "front", Type: "1", URL: "https://x/1.jpg"},
			{Type: "3", AbsolutePath: "/srv/plans/2.png"}, // caption missing, url falls back
			{Caption: "rear", URL: "https://x/3.jpg"},
		},
	}
	row := Rows(&feed.Document{Properties: []feed.Property{p}}, Options{})[0]

	assert.Equal(t, "front, , rear", row[col(t, "image caption")])
	assert.Equal(t, "Photo, Floorplan, ", row[col(t, "image_type")])
	assert.Equal(t, "https://x/1.jpg, /srv/plans/2.png, https://x/3.jpg", row[col(t, "image")])
}

func TestRowDocumentURLFallback(t *testing.T) {
	p := feed.Property{
		Documents: []feed.Doc{
			{URL: "https://x/a.pdf", AbsolutePath: "/ignored", Data: "ignored"},
			{AbsolutePath: "/srv/b.pdf", Data: "ignored"},
			{Data: "base64payload"},
		},
	}
	row := Rows(&feed.Document{Properties: []feed.Property{p}}, Options{})[0]
	assert.Equal(t, "https://x/a.pdf, /srv/b.pdf, base64payload", row[col(t, "brochure")])
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("é", 40) // multibyte, so byte-based cuts would corrupt
	p := feed.Property{Links: []feed.Link{{URL: long}}}
	row := Rows(&feed.Document{Properties: []feed.Property{p}}, Options{TruncateLimit: 10})[0]

	got := row[col(t, "url")]
	assert.Equal(t, strings.Repeat("é", 10)+TruncateMarker, got)

	// At or under the limit nothing changes.
	short := Rows(&feed.Document{Properties: []feed.Property{{Links: []feed.Link{{URL: "abc"}}}}}, Options{TruncateLimit: 10})[0]
	assert.Equal(t, "abc", short[col(t, "url")])
}

func TestRowsKeepDuplicatesAndOrder(t *testing.T) {
	doc := &feed.Document{Properties: []feed.Property{
		{ExternalReference: "A"}, {ExternalReference: "B"}, {ExternalReference: "A"},
	}}
	rows := Rows(doc, Options{})
	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0][0])
	assert.Equal(t, "B", rows[1][0])
	assert.Equal(t, "A", rows[2][0])

	// Flattening is a pure function of the document.
	assert.Equal(t, rows, Rows(doc, Options{}))
}
