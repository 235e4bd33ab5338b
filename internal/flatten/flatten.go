// Package flatten converts normalized property records into flat rows with a
// fixed column schema, suitable for a single-sheet spreadsheet export.
package flatten

import (
	"strconv"
	"strings"

	"feedaudit/internal/codebook"
	"feedaudit/internal/feed"
)

// DefaultTruncateLimit caps any single media/link URL value so rows survive
// downstream cell-size limits.
const DefaultTruncateLimit = 30000

// TruncateMarker is appended to values cut at the limit.
const TruncateMarker = "… [TRUNCATED]"

// listSep joins repeated sub-structure attributes into one cell. Segments
// stay positional: a missing attribute contributes an empty segment, never a
// shorter list.
const listSep = ", "

// saleBasisCap limits how many sale bases produce columns. Later bases are
// dropped silently.
const saleBasisCap = 2

// Options tunes the flattening pass. The zero value uses the defaults.
type Options struct {
	TruncateLimit int
}

// Header returns the column names in their fixed order. The slice is freshly
// allocated each call so callers may take ownership.
func Header() []string {
	h := []string{
		"external_reference", "action", "name",
		"address1", "address2", "address3", "town_city", "county", "postcode", "country",
		"location_accuracy", "latitude", "longitude",
		"property_type", "property_subtype", "sales_status",
		"email",
		"size type", "size_from", "size_to",
	}
	for i := 1; i <= saleBasisCap; i++ {
		suffix := " " + strconv.Itoa(i)
		h = append(h, "tenure type"+suffix, "sale type"+suffix, "guide price"+suffix, "guide price type"+suffix)
	}
	h = append(h, codebook.DescriptionLabels...)
	h = append(h,
		"image caption", "image_type", "image",
		"document description", "document type", "show_on_site", "brochure",
		"link name", "link type", "url", "width", "height",
		"last_updated", "force_update",
	)
	return h
}

// Rows flattens every property into one row, in document order. Duplicate
// references flatten per occurrence; nothing is deduplicated.
func Rows(doc *feed.Document, opts Options) [][]string {
	limit := opts.TruncateLimit
	if limit <= 0 {
		limit = DefaultTruncateLimit
	}
	rows := make([][]string, 0, len(doc.Properties))
	for _, p := range doc.Properties {
		rows = append(rows, row(p, limit))
	}
	return rows
}

func row(p feed.Property, limit int) []string {
	r := []string{
		p.ExternalReference, p.Action, p.Name,
		p.Address.Address1, p.Address.Address2, p.Address.Address3,
		p.Address.TownCity, p.Address.County, p.Address.Postcode, p.Address.Country,
		codebook.LocationAccuracy[p.Location.Accuracy],
		p.Location.Latitude.Text, p.Location.Longitude.Text,
		codebook.PropertyType[strings.TrimSpace(p.PropertyType)],
		codebook.SubtypeLabel(strings.TrimSpace(p.PropertyType), strings.TrimSpace(p.PropertySubtype)),
		codebook.SalesStatus[p.SalesStatus],
		mainAgentEmail(p.Agents),
		codebook.SizeUnit[p.Size.Unit], p.Size.From, p.Size.To,
	}

	for i := 0; i < saleBasisCap; i++ {
		if i < len(p.SaleBases) {
			b := p.SaleBases[i]
			r = append(r,
				codebook.Tenure[b.TenureType],
				codebook.SaleType[b.SaleType],
				b.GuidePrice,
				codebook.GuidePriceType[b.GuidePriceType],
			)
		} else {
			r = append(r, "", "", "", "")
		}
	}

	r = append(r, descriptionColumns(p.Descriptions)...)

	imgCaptions := make([]string, len(p.Images))
	imgTypes := make([]string, len(p.Images))
	imgURLs := make([]string, len(p.Images))
	for i, img := range p.Images {
		imgCaptions[i] = img.Caption
		imgTypes[i] = codebook.ImageType[img.Type]
		imgURLs[i] = truncate(firstNonEmpty(img.URL, img.AbsolutePath, img.Data), limit)
	}
	r = append(r, strings.Join(imgCaptions, listSep), strings.Join(imgTypes, listSep), strings.Join(imgURLs, listSep))

	docDescs := make([]string, len(p.Documents))
	docTypes := make([]string, len(p.Documents))
	docShow := make([]string, len(p.Documents))
	docURLs := make([]string, len(p.Documents))
	for i, d := range p.Documents {
		docDescs[i] = d.Description
		docTypes[i] = codebook.DocumentType[d.Type]
		docShow[i] = d.ShowOnSite
		docURLs[i] = truncate(firstNonEmpty(d.URL, d.AbsolutePath, d.Data), limit)
	}
	r = append(r, strings.Join(docDescs, listSep), strings.Join(docTypes, listSep),
		strings.Join(docShow, listSep), strings.Join(docURLs, listSep))

	linkNames := make([]string, len(p.Links))
	linkTypes := make([]string, len(p.Links))
	linkURLs := make([]string, len(p.Links))
	linkWidths := make([]string, len(p.Links))
	linkHeights := make([]string, len(p.Links))
	for i, l := range p.Links {
		linkNames[i] = l.Name
		linkTypes[i] = codebook.LinkType[l.Type]
		linkURLs[i] = truncate(l.URL, limit)
		linkWidths[i] = l.Width
		linkHeights[i] = l.Height
	}
	r = append(r, strings.Join(linkNames, listSep), strings.Join(linkTypes, listSep),
		strings.Join(linkURLs, listSep), strings.Join(linkWidths, listSep), strings.Join(linkHeights, listSep))

	r = append(r, p.LastUpdated, codebook.ForceUpdate[p.ForceUpdate])
	return r
}

// descriptionColumns places each description under its label's fixed column.
// A later entry with the same type code overwrites an earlier one.
func descriptionColumns(descs []feed.Description) []string {
	byLabel := make(map[string]string, len(descs))
	for _, d := range descs {
		if label, ok := codebook.DescriptionType[d.Type]; ok {
			byLabel[label] = d.Text
		}
	}
	cols := make([]string, len(codebook.DescriptionLabels))
	for i, label := range codebook.DescriptionLabels {
		cols[i] = byLabel[label]
	}
	return cols
}

// mainAgentEmail returns the first agent reference flagged as main agent. No
// fallback: a property without a flagged agent gets an empty email.
func mainAgentEmail(agents []feed.AgentRef) string {
	for _, a := range agents {
		if a.MainAgent == codebook.MainAgentFlag {
			return a.Email
		}
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// truncate cuts by runes, not bytes, so the marker never lands mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + TruncateMarker
}
