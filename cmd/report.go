package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"feedaudit/internal/codebook"
	"feedaudit/internal/feed"
	"feedaudit/internal/report"
)

// runReport prints the full quality report. When stdin is a terminal the user
// is offered an interactive browse of every flagged property afterwards.
func runReport(doc *feed.Document, askBrowse bool) {
	rep := report.Run(doc)
	printReport(os.Stdout, rep)

	if !askBrowse {
		return
	}
	refs, lines := flaggedProperties(rep)
	if len(refs) == 0 {
		return
	}
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("\nBrowse %d flagged properties? (y/N): ", len(refs))
	resp, _ := reader.ReadString('\n')
	resp = strings.ToLower(strings.TrimSpace(resp))
	if resp != "y" && resp != "yes" {
		return
	}

	byRef := make(map[string]feed.Property, len(doc.Properties))
	for _, p := range doc.Properties {
		if _, ok := byRef[p.ExternalReference]; !ok {
			byRef[p.ExternalReference] = p // first occurrence wins for display
		}
	}
	fmt.Println("Use ↑/↓ and Enter for details, Esc to exit.")
	interactiveSelect(lines, func(i int) {
		if p, ok := byRef[refs[i]]; ok {
			renderProperty(p)
		} else {
			fmt.Printf("No property found for reference: %s\n", refs[i])
		}
	})
}

// printReport writes sections a)–n) to w.
func printReport(w io.Writer, rep *report.Report) {
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "Feed quality report")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	fmt.Fprintf(w, "\na) Agents with blank phone numbers: %d\n", len(rep.BlankPhones))
	for _, c := range rep.BlankPhones {
		fmt.Fprintf(w, "   - Name: %s, Email: %s\n", c.Name, c.Email)
	}

	fmt.Fprintf(w, "\nb) External references: unique %d | duplicated %d\n",
		rep.References.Unique, len(rep.References.Duplicates))
	for _, ref := range sortedKeys(rep.References.Duplicates) {
		fmt.Fprintf(w, "   - %s (x%d)\n", displayRef(ref), rep.References.Duplicates[ref])
	}

	fmt.Fprintln(w, "\nc) Sales status counts")
	for _, c := range rep.StatusCounts {
		fmt.Fprintf(w, "   %-12s: %d\n", c.Label, c.Count)
	}
	for _, code := range sortedKeys(rep.UnknownStatuses) {
		fmt.Fprintf(w, "   unknown %-4q: %d\n", code, rep.UnknownStatuses[code])
	}

	fmt.Fprintln(w, "\nd) Property type counts")
	for _, c := range rep.TypeCounts {
		fmt.Fprintf(w, "   %-12s: %d\n", c.Label, c.Count)
	}

	fmt.Fprintf(w, "\ne) Properties with a subtype: %d\n", rep.SubtypeCount)
	fmt.Fprintf(w, "\nf) Unique type + subtype combinations: %d\n", rep.TypeSubtypeCombos)

	printRefSection(w, "g) Leasehold/To Let conflicts", rep.LeaseholdToLet)
	printRefSection(w, "h) For Sale/price type conflicts", rep.ForSalePriceType)
	printRefSection(w, "i) Properties missing images", rep.MissingImages)
	printRefSection(w, "j) Properties missing documents", rep.MissingDocuments)

	fmt.Fprintf(w, "\nk) Duplicate address lines: %d\n", len(rep.DuplicateAddresses))
	for _, d := range rep.DuplicateAddresses {
		fmt.Fprintf(w, "   - %s | %s | %s\n", displayRef(d.Ref), d.Name, strings.Join(d.Fields, " | "))
	}

	printRefSection(w, "l) Lat/long tags present but blank", rep.BlankCoordinates)
	printRefSection(w, "m) Invalid or missing sizes", rep.InvalidSizes)
	printRefSection(w, "n) Blank postcodes", rep.BlankPostcodes)
}

func printRefSection(w io.Writer, title string, refs []string) {
	fmt.Fprintf(w, "\n%s: %d\n", title, len(refs))
	if len(refs) == 0 {
		return
	}
	shown := make([]string, len(refs))
	for i, r := range refs {
		shown[i] = displayRef(r)
	}
	fmt.Fprintf(w, "   %s\n", strings.Join(shown, ", "))
}

// flaggedProperties collapses the per-rule ref lists into one browsable list,
// one line per distinct reference with the rules that hit it.
func flaggedProperties(rep *report.Report) (refs []string, lines []string) {
	flags := make(map[string][]string)
	add := func(ref, flag string) {
		// the tenure conflict checks emit one entry per basis; collapse repeats
		if existing := flags[ref]; len(existing) == 0 || existing[len(existing)-1] != flag {
			flags[ref] = append(flags[ref], flag)
		}
	}
	for ref := range rep.References.Duplicates {
		add(ref, "dupRef")
	}
	for _, ref := range rep.LeaseholdToLet {
		add(ref, "leaseholdToLet")
	}
	for _, ref := range rep.ForSalePriceType {
		add(ref, "forSalePriceType")
	}
	for _, ref := range rep.MissingImages {
		add(ref, "noImages")
	}
	for _, ref := range rep.MissingDocuments {
		add(ref, "noDocuments")
	}
	for _, d := range rep.DuplicateAddresses {
		add(d.Ref, "dupAddress")
	}
	for _, ref := range rep.BlankCoordinates {
		add(ref, "blankCoords")
	}
	for _, ref := range rep.InvalidSizes {
		add(ref, "badSize")
	}
	for _, ref := range rep.BlankPostcodes {
		add(ref, "noPostcode")
	}

	refs = sortedKeys(flags)
	lines = make([]string, len(refs))
	for i, ref := range refs {
		lines[i] = fmt.Sprintf("%-24s | %s", displayRef(ref), strings.Join(flags[ref], ","))
	}
	return refs, lines
}

// renderProperty prints one property's details in a readable layout.
func renderProperty(p feed.Property) {
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Reference         : %s\n", displayRef(p.ExternalReference))
	fmt.Printf("Name              : %s\n", p.Name)

	addr := joinNonEmpty(", ",
		p.Address.Address1, p.Address.Address2, p.Address.Address3,
		p.Address.TownCity, p.Address.County, p.Address.Postcode, p.Address.Country)
	fmt.Printf("Address           : %s\n", addr)

	fmt.Printf("Status            : %s\n", labelOrRaw(codebook.SalesStatus, p.SalesStatus))
	fmt.Printf("Type / Subtype    : %s / %s\n",
		labelOrRaw(codebook.PropertyType, p.PropertyType),
		codebook.SubtypeLabel(strings.TrimSpace(p.PropertyType), strings.TrimSpace(p.PropertySubtype)))

	if p.Size.Present {
		fmt.Printf("Size              : %s – %s %s\n", p.Size.From, p.Size.To, codebook.SizeUnit[p.Size.Unit])
	}
	if p.Location.Present {
		fmt.Printf("Coordinates       : lat=%q lon=%q (accuracy: %s)\n",
			p.Location.Latitude.Text, p.Location.Longitude.Text,
			labelOrRaw(codebook.LocationAccuracy, p.Location.Accuracy))
	}
	for i, b := range p.SaleBases {
		fmt.Printf("Sale basis %d      : %s | %s | %s %s\n", i+1,
			labelOrRaw(codebook.Tenure, b.TenureType),
			labelOrRaw(codebook.SaleType, b.SaleType),
			b.GuidePrice,
			labelOrRaw(codebook.GuidePriceType, b.GuidePriceType))
	}
	fmt.Printf("Media             : %d images, %d documents, %d links\n",
		len(p.Images), len(p.Documents), len(p.Links))
	if email := mainAgentEmail(p.Agents); email != "" {
		fmt.Printf("Main agent        : %s\n", email)
	}
	if p.LastUpdated != "" {
		fmt.Printf("Last updated      : %s\n", p.LastUpdated)
	}
	fmt.Println(strings.Repeat("-", 80))
}

func mainAgentEmail(agents []feed.AgentRef) string {
	for _, a := range agents {
		if a.MainAgent == codebook.MainAgentFlag {
			return a.Email
		}
	}
	return ""
}

func labelOrRaw(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}

// displayRef makes empty references visible in listings.
func displayRef(ref string) string {
	if strings.TrimSpace(ref) == "" {
		return "[no ref]"
	}
	return ref
}

func joinNonEmpty(sep string, vals ...string) string {
	var parts []string
	for _, v := range vals {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
