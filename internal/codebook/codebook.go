// Package codebook holds the static code→label tables used by the feed. The
// tables are fixed at build time; a code absent from its table degrades per
// the caller's policy (usually an empty label) rather than erroring.
package codebook

// Well-known codes referenced by validation rules.
const (
	TenureFreehold  = "1"
	TenureLeasehold = "2"
	TenureNA        = "3"

	SaleTypeForSale = "1"
	SaleTypeToLet   = "2"

	GuidePriceTypeNA = "3"

	MainAgentFlag = "1"
)

// SalesStatusCodes fixes the report ordering of the status table.
var SalesStatusCodes = []string{"1", "2", "3", "4", "5", "6"}

var SalesStatus = map[string]string{
	"1": "Available",
	"2": "Under Offer",
	"3": "Sold",
	"4": "Withdrawn",
	"5": "Let",
	"6": "Unconfirmed",
}

// PropertyTypeCodes fixes the report ordering of the type table.
var PropertyTypeCodes = []string{"1", "2", "3", "4", "5", "6"}

var PropertyType = map[string]string{
	"1": "Offices",
	"2": "Industrial",
	"3": "Land",
	"4": "Retail",
	"5": "Leisure",
	"6": "Other",
}

var LocationAccuracy = map[string]string{
	"0": "Unknown",
	"1": "Low",
	"2": "Medium",
	"3": "High",
	"4": "Exact",
}

var SizeUnit = map[string]string{
	"1": "Sq Mt",
	"2": "Sq Ft",
	"3": "Acres",
	"4": "Hectare",
}

var Tenure = map[string]string{
	"1": "Freehold",
	"2": "Leasehold",
	"3": "NA",
}

var SaleType = map[string]string{
	"1": "For Sale",
	"2": "To Let",
}

var GuidePriceType = map[string]string{
	"1": "Per Sq Ft",
	"2": "Per Annum",
	"3": "NA",
	"4": "Per Sq M",
	"5": "Per Hectare",
	"6": "Per Acre",
	"7": "Per Month",
}

var ForceUpdate = map[string]string{
	"1": "YES",
	"0": "NO",
}

// DescriptionLabels fixes both the code→label mapping and the order of the
// description columns in the export.
var DescriptionLabels = []string{"General", "Location", "Accommodation", "Terms", "Specification"}

var DescriptionType = map[string]string{
	"1": "General",
	"2": "Location",
	"3": "Accommodation",
	"4": "Terms",
	"5": "Specification",
}

var ImageType = map[string]string{
	"1": "Photo",
	"2": "Artist Impression",
	"3": "Floorplan",
	"4": "Site Plan",
}

var DocumentType = map[string]string{
	"1": "PDF",
	"2": "Word",
	"4": "Excel",
}

var LinkType = map[string]string{
	"1": "Virtual Tour",
	"2": "3d Tour",
	"3": "Video",
	"4": "Website",
}

// TypeSubtype keys the subtype table; subtypes are only meaningful within
// their parent property type.
type TypeSubtype struct {
	Type    string
	Subtype string
}

// PropertySubtype maps (type, subtype) pairs to labels. The ("3","n/a") row
// is a legitimate upstream sentinel, not an error case.
var PropertySubtype = map[TypeSubtype]string{
	{"1", "57"}: "Offices", {"1", "58"}: "Business Park", {"1", "59"}: "Serviced Office",
	{"1", "60"}: "Science Park", {"1", "61"}: "Healthcare - Surgeries", {"1", "84"}: "Traditional",
	{"1", "85"}: "Modern", {"1", "86"}: "Refurbished", {"1", "87"}: "Grade A", {"1", "88"}: "Grade B",
	{"1", "113"}: "Design & Build", {"1", "115"}: "Research & Development", {"1", "119"}: "Investment",
	{"1", "125"}: "Mixed Use", {"1", "126"}: "Non residential Institution", {"1", "137"}: "Land/Development",
	{"1", "139"}: "Class E - incl Retail Leisure Healthcare", {"1", "140"}: "Or Retail Use",
	{"1", "141"}: "With industrial",

	{"2", "62"}: "General Industrial", {"2", "63"}: "Light Industrial",
	{"2", "64"}: "Warehouse / Distribution", {"2", "65"}: "Industrial Park", {"2", "66"}: "Trade Park",
	{"2", "67"}: "Non Food Retail Warehouse", {"2", "68"}: "Self Storage",
	{"2", "69"}: "Motor Trade - showroom/vehicle repair", {"2", "89"}: "Bonded Warehouse",
	{"2", "90"}: "Warehouse", {"2", "91"}: "Business Unit", {"2", "92"}: "High Tech Unit",
	{"2", "93"}: "Food Production", {"2", "94"}: "Lab Space", {"2", "95"}: "Managed Workshop",
	{"2", "96"}: "Manufacturing/Production", {"2", "97"}: "Workshop Studio", {"2", "98"}: "Distribution",
	{"2", "99"}: "Yard Area", {"2", "100"}: "Other Industrial", {"2", "112"}: "Design & Build",
	{"2", "116"}: "Research & Development", {"2", "118"}: "Investment", {"2", "124"}: "Data Centres",
	{"2", "127"}: "Land/Development", {"2", "128"}: "Mixed Use", {"2", "142"}: "Trade Counter",
	{"2", "143"}: "Class E - incl Office Retail Leisure Healthcare", {"2", "151"}: "Open Storage",

	{"3", "101"}: "Mixed Use", {"3", "102"}: "Agricultural", {"3", "103"}: "Serviced",
	{"3", "104"}: "Sub-Serviced", {"3", "105"}: "Residential", {"3", "106"}: "Science Park",
	{"3", "107"}: "Vacant Site", {"3", "108"}: "Business Park",
	{"3", "109"}: "Industrial Scottish Planning use 4", {"3", "110"}: "Industrial Scottish Planning use 5",
	{"3", "111"}: "Industrial Scottish Planning use 6", {"3", "114"}: "Design & Build",
	{"3", "117"}: "Farm", {"3", "122"}: "Investment", {"3", "129"}: "Non residential Institution",
	{"3", "130"}: "Residential Institution", {"3", "152"}: "Open Storage", {"3", "153"}: "Development",
	{"3", "n/a"}: "exc field from xml",

	{"4", "70"}: "General Retail", {"4", "71"}: "Retail - High Street",
	{"4", "72"}: "Retail - out of town", {"4", "73"}: "Shopping Centre unit",
	{"4", "74"}: "Motor Trade - filling station", {"4", "75"}: "Retail Park",
	{"4", "120"}: "Investment", {"4", "131"}: "Mixed Use", {"4", "132"}: "Motor Trade - showroom",
	{"4", "144"}: "Class E - incl Office Leisure Healthcare", {"4", "145"}: "Or Office Use",
	{"4", "146"}: "Business for sale", {"4", "154"}: "Land/Development",

	{"5", "76"}: "Hotel",
	{"5", "77"}: "General Leisure", {"5", "78"}: "Restaurants / Cafes", {"5", "79"}: "Pubs/Bars/Clubs",
	{"5", "121"}: "Investment", {"5", "133"}: "Leisure Park", {"5", "134"}: "Mixed Use",
	{"5", "147"}: "Class E - incl Office Retail Healthcare", {"5", "148"}: "Business for sale",
	{"5", "155"}: "Land/Development",

	{"6", "80"}: "Residential", {"6", "81"}: "Residential Institution",
	{"6", "82"}: "Non residential Institution", {"6", "83"}: "Healthcare - hospitals",
	{"6", "123"}: "Investment", {"6", "135"}: "Healthcare - Consulting Rooms/Medical Offices",
	{"6", "136"}: "Mixed Use", {"6", "138"}: "Healthcare - General", {"6", "149"}: "Business for sale",
	{"6", "150"}: "Class E - incl Office Retail Leisure Healthcare", {"6", "156"}: "Land/Development",
}

// SubtypeLabel resolves a (type, subtype) pair. Unknown pairs pass the raw
// subtype through unchanged so no upstream value is lost.
func SubtypeLabel(ptype, subtype string) string {
	if label, ok := PropertySubtype[TypeSubtype{ptype, subtype}]; ok {
		return label
	}
	return subtype
}
