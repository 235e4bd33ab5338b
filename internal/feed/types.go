package feed

import "strings"

// Document is the normalized form of one listing feed: the global agent
// roster plus every property record found in the file. It is read-only for
// the duration of a run; each action takes its own pass over it.
type Document struct {
	Agents     []Agent
	Properties []Property
}

// Field carries an optional scalar together with whether its element existed
// at all. The feed uses "tag absent" and "tag present but empty" to mean
// different things depending on the field, so the distinction must survive
// normalization.
type Field struct {
	Present bool
	Text    string
}

// Blank reports whether the element exists but holds no usable text.
func (f Field) Blank() bool {
	return f.Present && strings.TrimSpace(f.Text) == ""
}

// Property holds one listing. Every field defaults to its zero value when the
// underlying element is missing; add more as the feed grows.
type Property struct {
	ExternalReference string
	Action            string
	Name              string

	Address  Address
	Location Location

	PropertyType    string
	PropertySubtype string
	SalesStatus     string

	Size      SizeRange
	SaleBases []SaleBasis

	Descriptions []Description

	// HasImages/HasDocuments record whether the container element exists at
	// all. An empty <images/> is present; a missing one is not.
	HasImages    bool
	HasDocuments bool
	Images       []Image
	Documents    []Doc
	Links        []Link

	Agents []AgentRef

	LastUpdated string
	ForceUpdate string
}

// Agent is one entry of the global roster at the top of the feed.
type Agent struct {
	Name      string
	Email     string
	Telephone Field
}

// AgentRef is an agent reference local to a single property. MainAgent is the
// raw flag value; "1" marks the main agent.
type AgentRef struct {
	MainAgent string
	Email     string
}

type Address struct {
	Address1 string
	Address2 string
	Address3 string
	TownCity string
	County   string
	Postcode string
	Country  string
}

type Location struct {
	Present   bool
	Accuracy  string // attribute, coded
	Latitude  Field
	Longitude Field
}

type SaleBasis struct {
	TenureType     string
	SaleType       string
	GuidePrice     string
	GuidePriceType string
}

type SizeRange struct {
	Present bool
	Unit    string // attribute "type", coded
	From    string
	To      string
}

type Description struct {
	Type string // attribute, coded
	Text string
}

type Image struct {
	Caption      string
	Type         string
	URL          string
	AbsolutePath string
	Data         string
}

// Doc is an attached document (brochure etc.), not to be confused with the
// feed Document itself.
type Doc struct {
	Description  string
	Type         string
	ShowOnSite   string
	URL          string
	AbsolutePath string
	Data         string
}

type Link struct {
	Name   string
	Type   string
	URL    string
	Width  string
	Height string
}
