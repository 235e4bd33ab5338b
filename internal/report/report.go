// Package report runs the data-quality checks (rules a–n) over a normalized
// feed document. Rules are independent and order-insensitive; each one makes
// its own pass and never fails the batch for a malformed record.
package report

import (
	"strconv"
	"strings"

	"feedaudit/internal/codebook"
	"feedaudit/internal/feed"
)

// Contact identifies a roster agent flagged by rule a.
type Contact struct {
	Name  string
	Email string
}

// RefUsage is rule b's accounting: refs seen exactly once, and a count per
// ref seen more than once.
type RefUsage struct {
	Unique     int
	Duplicates map[string]int
}

// CodeCount is one row of a fixed-table tally (rules c and d).
type CodeCount struct {
	Code  string
	Label string
	Count int
}

// AddressDup is one rule-k hit: the record plus the address fields that were
// inspected, in schema order.
type AddressDup struct {
	Ref    string
	Name   string
	Fields []string // address1..3, town_city, county, postcode
}

// Report aggregates the findings of every rule over one document.
type Report struct {
	BlankPhones        []Contact      // a
	References         RefUsage       // b
	StatusCounts       []CodeCount    // c, fixed six-code order
	UnknownStatuses    map[string]int // c, codes outside the table
	TypeCounts         []CodeCount    // d
	SubtypeCount       int            // e
	TypeSubtypeCombos  int            // f
	LeaseholdToLet     []string       // g, one entry per conflicting basis
	ForSalePriceType   []string       // h
	MissingImages      []string       // i
	MissingDocuments   []string       // j
	DuplicateAddresses []AddressDup   // k
	BlankCoordinates   []string       // l
	InvalidSizes       []string       // m
	BlankPostcodes     []string       // n
}

// Run executes every rule over the document and returns the combined report.
func Run(doc *feed.Document) *Report {
	r := &Report{
		BlankPhones:        blankPhones(doc.Agents),
		References:         refUsage(doc.Properties),
		SubtypeCount:       subtypePresence(doc.Properties),
		TypeSubtypeCombos:  typeSubtypeCombos(doc.Properties),
		LeaseholdToLet:     leaseholdToLet(doc.Properties),
		ForSalePriceType:   forSalePriceType(doc.Properties),
		MissingImages:      missingContainer(doc.Properties, func(p feed.Property) bool { return p.HasImages }),
		MissingDocuments:   missingContainer(doc.Properties, func(p feed.Property) bool { return p.HasDocuments }),
		DuplicateAddresses: duplicateAddresses(doc.Properties),
		BlankCoordinates:   blankCoordinates(doc.Properties),
		InvalidSizes:       invalidSizes(doc.Properties),
		BlankPostcodes:     blankPostcodes(doc.Properties),
	}
	r.StatusCounts, r.UnknownStatuses = statusCounts(doc.Properties)
	r.TypeCounts = typeCounts(doc.Properties)
	return r
}

// blankPhones (a): roster agents whose telephone is missing or blank after
// trimming. "0" is a phone number; " " is not.
func blankPhones(agents []feed.Agent) []Contact {
	var out []Contact
	for _, a := range agents {
		if !a.Telephone.Present || strings.TrimSpace(a.Telephone.Text) == "" {
			name, email := a.Name, a.Email
			if name == "" {
				name = "[No Name]"
			}
			if email == "" {
				email = "[No Email]"
			}
			out = append(out, Contact{Name: name, Email: email})
		}
	}
	return out
}

// refUsage (b): counts each external reference across the set; empty refs
// count like any other value.
func refUsage(props []feed.Property) RefUsage {
	counts := make(map[string]int, len(props))
	for _, p := range props {
		counts[p.ExternalReference]++
	}
	usage := RefUsage{Duplicates: make(map[string]int)}
	for ref, c := range counts {
		if c == 1 {
			usage.Unique++
		} else {
			usage.Duplicates[ref] = c
		}
	}
	return usage
}

// statusCounts (c): tally per fixed status table; codes outside the table
// (including the empty string) land in the unknown bucket.
func statusCounts(props []feed.Property) ([]CodeCount, map[string]int) {
	tally := make(map[string]int)
	for _, p := range props {
		tally[p.SalesStatus]++
	}
	counts := make([]CodeCount, 0, len(codebook.SalesStatusCodes))
	for _, code := range codebook.SalesStatusCodes {
		counts = append(counts, CodeCount{Code: code, Label: codebook.SalesStatus[code], Count: tally[code]})
		delete(tally, code)
	}
	unknown := make(map[string]int)
	for code, c := range tally {
		unknown[code] = c
	}
	return counts, unknown
}

// typeCounts (d): tally per fixed property-type table.
func typeCounts(props []feed.Property) []CodeCount {
	tally := make(map[string]int)
	for _, p := range props {
		tally[p.PropertyType]++
	}
	counts := make([]CodeCount, 0, len(codebook.PropertyTypeCodes))
	for _, code := range codebook.PropertyTypeCodes {
		counts = append(counts, CodeCount{Code: code, Label: codebook.PropertyType[code], Count: tally[code]})
	}
	return counts
}

// subtypePresence (e): properties carrying a non-empty subtype.
func subtypePresence(props []feed.Property) int {
	n := 0
	for _, p := range props {
		if p.PropertySubtype != "" {
			n++
		}
	}
	return n
}

// typeSubtypeCombos (f): distinct (type, subtype) pairs, empty strings
// included as members.
func typeSubtypeCombos(props []feed.Property) int {
	combos := make(map[codebook.TypeSubtype]struct{})
	for _, p := range props {
		combos[codebook.TypeSubtype{Type: p.PropertyType, Subtype: p.PropertySubtype}] = struct{}{}
	}
	return len(combos)
}

// leaseholdToLet (g): a Freehold or Leasehold basis marked To Let. One entry
// per conflicting basis, so a property can appear more than once.
func leaseholdToLet(props []feed.Property) []string {
	var refs []string
	for _, p := range props {
		for _, b := range p.SaleBases {
			if (b.TenureType == codebook.TenureFreehold || b.TenureType == codebook.TenureLeasehold) &&
				b.SaleType == codebook.SaleTypeToLet {
				refs = append(refs, p.ExternalReference)
			}
		}
	}
	return refs
}

// forSalePriceType (h): a For Sale basis with tenure N/A but a concrete guide
// price type. The asymmetry (price type present while tenure is N/A) is the
// upstream business rule; keep the condition exactly as-is.
func forSalePriceType(props []feed.Property) []string {
	var refs []string
	for _, p := range props {
		for _, b := range p.SaleBases {
			if b.SaleType == codebook.SaleTypeForSale &&
				b.TenureType == codebook.TenureNA &&
				b.GuidePriceType != codebook.GuidePriceTypeNA {
				refs = append(refs, p.ExternalReference)
			}
		}
	}
	return refs
}

// missingContainer (i, j): properties whose media container element is absent
// entirely. An empty-but-present container does not count.
func missingContainer(props []feed.Property, has func(feed.Property) bool) []string {
	var refs []string
	for _, p := range props {
		if !has(p) {
			refs = append(refs, p.ExternalReference)
		}
	}
	return refs
}

// duplicateAddresses (k): among name and the six address lines, any non-empty
// value appearing twice flags the record.
func duplicateAddresses(props []feed.Property) []AddressDup {
	var out []AddressDup
	for _, p := range props {
		fields := []string{
			p.Address.Address1, p.Address.Address2, p.Address.Address3,
			p.Address.TownCity, p.Address.County, p.Address.Postcode,
		}
		seen := make(map[string]struct{}, len(fields)+1)
		dup := false
		for _, v := range append([]string{p.Name}, fields...) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				dup = true
				break
			}
			seen[v] = struct{}{}
		}
		if dup {
			out = append(out, AddressDup{Ref: p.ExternalReference, Name: p.Name, Fields: fields})
		}
	}
	return out
}

// blankCoordinates (l): latitude and longitude elements both exist, but at
// least one is blank after trimming. A property missing either element is not
// this rule's business.
func blankCoordinates(props []feed.Property) []string {
	var refs []string
	for _, p := range props {
		lat, lon := p.Location.Latitude, p.Location.Longitude
		if lat.Present && lon.Present && (lat.Blank() || lon.Blank()) {
			refs = append(refs, p.ExternalReference)
		}
	}
	return refs
}

// invalidSizes (m): size_from or size_to does not parse as a number. Absent
// values fail the parse and are flagged too.
func invalidSizes(props []feed.Property) []string {
	var refs []string
	for _, p := range props {
		if !parsesAsNumber(p.Size.From) || !parsesAsNumber(p.Size.To) {
			refs = append(refs, p.ExternalReference)
		}
	}
	return refs
}

func parsesAsNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// blankPostcodes (n): postcode missing or empty.
func blankPostcodes(props []feed.Property) []string {
	var refs []string
	for _, p := range props {
		if p.Address.Postcode == "" {
			refs = append(refs, p.ExternalReference)
		}
	}
	return refs
}
