package feed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Parse reads the whole feed into a Document. The only error it returns is a
// structurally unparsable input; missing or empty elements on individual
// records normalize to zero values instead.
func Parse(r io.Reader) (*Document, error) {
	tree, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	root := xmlquery.FindOne(tree, "/*")
	if root == nil {
		return nil, errors.New("parse feed: no root element")
	}

	doc := &Document{}
	for _, n := range xmlquery.Find(root, "agents/agent") {
		doc.Agents = append(doc.Agents, agentFromNode(n))
	}
	// Property records may sit anywhere under the root, not just at the top
	// level.
	for _, n := range xmlquery.Find(root, ".//property") {
		doc.Properties = append(doc.Properties, propertyFromNode(n))
	}
	return doc, nil
}

func agentFromNode(n *xmlquery.Node) Agent {
	return Agent{
		Name:      childText(n, "name"),
		Email:     childText(n, "email"),
		Telephone: childField(n, "telephone"),
	}
}

func propertyFromNode(n *xmlquery.Node) Property {
	p := Property{
		ExternalReference: childText(n, "external_reference"),
		Action:            childText(n, "action"),
		Name:              childText(n, "name"),
		PropertyType:      childText(n, "property_type"),
		PropertySubtype:   childText(n, "property_subtype"),
		SalesStatus:       childText(n, "sales_status"),
		LastUpdated:       childText(n, "last_updated"),
		ForceUpdate:       childText(n, "force_update"),
	}

	if addr := n.SelectElement("address"); addr != nil {
		p.Address = Address{
			Address1: childText(addr, "address1"),
			Address2: childText(addr, "address2"),
			Address3: childText(addr, "address3"),
			TownCity: childText(addr, "town_city"),
			County:   childText(addr, "county"),
			Postcode: childText(addr, "postcode"),
			Country:  childText(addr, "country"),
		}
	}

	if loc := n.SelectElement("location"); loc != nil {
		p.Location = Location{
			Present:   true,
			Accuracy:  loc.SelectAttr("accuracy"),
			Latitude:  childField(loc, "latitude"),
			Longitude: childField(loc, "longitude"),
		}
	}

	if size := n.SelectElement("size"); size != nil {
		p.Size = SizeRange{
			Present: true,
			Unit:    size.SelectAttr("type"),
			From:    childText(size, "size_from"),
			To:      childText(size, "size_to"),
		}
	}

	// Feeds in the wild wrap sale bases in <sale_basises> or drop them bare
	// under the property. First non-empty form wins.
	bases := xmlquery.Find(n, "sale_basises/sale_basis")
	if len(bases) == 0 {
		bases = xmlquery.Find(n, "sale_basis")
	}
	for _, b := range bases {
		p.SaleBases = append(p.SaleBases, SaleBasis{
			TenureType:     childText(b, "tenure_type"),
			SaleType:       childText(b, "sale_type"),
			GuidePrice:     childText(b, "guide_price"),
			GuidePriceType: childText(b, "guide_price_type"),
		})
	}

	for _, d := range xmlquery.Find(n, "descriptions/description") {
		p.Descriptions = append(p.Descriptions, Description{
			Type: d.SelectAttr("type"),
			Text: strings.TrimSpace(d.InnerText()),
		})
	}

	if imgs := n.SelectElement("images"); imgs != nil {
		p.HasImages = true
		for _, i := range xmlquery.Find(imgs, "image") {
			p.Images = append(p.Images, Image{
				Caption:      childText(i, "caption"),
				Type:         childText(i, "type"),
				URL:          childText(i, "url"),
				AbsolutePath: childText(i, "absolute_path"),
				Data:         childText(i, "data"),
			})
		}
	}

	if docs := n.SelectElement("documents"); docs != nil {
		p.HasDocuments = true
		for _, d := range xmlquery.Find(docs, "document") {
			p.Documents = append(p.Documents, Doc{
				Description:  childText(d, "description"),
				Type:         childText(d, "type"),
				ShowOnSite:   childText(d, "show_on_site"),
				URL:          childText(d, "url"),
				AbsolutePath: childText(d, "absolute_path"),
				Data:         childText(d, "data"),
			})
		}
	}

	for _, l := range xmlquery.Find(n, "links/link") {
		p.Links = append(p.Links, Link{
			Name:   childText(l, "name"),
			Type:   childText(l, "type"),
			URL:    childText(l, "url"),
			Width:  childText(l, "width"),
			Height: childText(l, "height"),
		})
	}

	for _, a := range xmlquery.Find(n, "agents/agent") {
		p.Agents = append(p.Agents, AgentRef{
			MainAgent: childText(a, "main_agent"),
			Email:     childText(a, "email"),
		})
	}

	return p
}

// childText returns the text of a direct child element, or "" when the child
// is missing. Use childField where the caller needs to tell those apart.
func childText(n *xmlquery.Node, name string) string {
	c := n.SelectElement(name)
	if c == nil {
		return ""
	}
	return c.InnerText()
}

func childField(n *xmlquery.Node, name string) Field {
	c := n.SelectElement(name)
	if c == nil {
		return Field{}
	}
	return Field{Present: true, Text: c.InnerText()}
}
