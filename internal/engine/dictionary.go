package engine

import (
	"regexp"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// DictionaryVersion identifies the synonym knowledge base baked into
// this build. Bump it whenever phrase lists change.
const DictionaryVersion = "2026.08"

// Canonical field keys. Lane and rate tables share the port, airport
// and equipment keys so both groups resolve against the same phrases.
const (
	FieldBidName      = "bid_name"
	FieldCustomer     = "customer"
	FieldValidFrom    = "valid_from"
	FieldValidTo      = "valid_to"
	FieldContactName  = "contact_name"
	FieldContactEmail = "contact_email"
	FieldCurrency     = "currency"

	FieldMode             = "mode"
	FieldIncoterm         = "incoterm"
	FieldOriginCountry    = "origin_country"
	FieldOriginCity       = "origin_city"
	FieldOriginPort       = "origin_port"
	FieldOriginAirport    = "origin_airport"
	FieldDestCountry      = "dest_country"
	FieldDestCity         = "dest_city"
	FieldDestPort         = "dest_port"
	FieldDestAirport      = "dest_airport"
	FieldServiceLevel     = "service_level"
	FieldEquipment        = "equipment"
	FieldWeightKg         = "weight_kg"
	FieldVolumeCbm        = "volume_cbm"
	FieldShipmentsPerYear = "shipments_per_year"

	FieldUOM        = "uom"
	FieldRate       = "rate"
	FieldMin        = "min"
	FieldChargeName = "charge_name"
)

// FieldSynonyms lists the header phrases recognized for one canonical
// field. Phrases are matched as substrings of the reduced header key,
// so they contain only lowercase letters, digits and single spaces.
type FieldSynonyms struct {
	Field   string
	Phrases []string
}

// Shared phrase lists. Two and three letter codes like "pol" and "uom"
// are paired with an even shorter fragment of themselves so a header
// consisting of nothing but the code still clears the two-point
// acceptance floor of BestColumn.
var (
	modePhrases      = []string{"mode", "transport mode", "mode of transport", "carriage"}
	equipmentPhrases = []string{"equipment", "container type", "container", "cntr", "unit type"}
	currencyPhrases  = []string{"currency", "curr", "ccy"}

	originPortPhrases = []string{"pol", "po", "port of loading", "origin port", "loading port", "from port", "departure port"}
	destPortPhrases   = []string{"pod", "po", "port of discharge", "destination port", "discharge port", "to port", "arrival port"}
	originAirPhrases  = []string{"origin airport", "airport of departure", "from airport", "departure airport"}
	destAirPhrases    = []string{"destination airport", "airport of destination", "to airport", "arrival airport"}
)

// MetaSynonyms covers header-level quote information found on small
// summary sheets.
var MetaSynonyms = []FieldSynonyms{
	{FieldBidName, []string{"bid name", "tender", "rfq", "quotation name", "quote name", "bid"}},
	{FieldCustomer, []string{"customer", "client", "account", "customer name"}},
	{FieldValidFrom, []string{"valid from", "validity start", "effective date", "effective from", "start date"}},
	{FieldValidTo, []string{"valid to", "valid until", "validity end", "expiry", "expiration", "end date"}},
	{FieldContactName, []string{"contact", "contact name", "contact person"}},
	{FieldContactEmail, []string{"email", "e mail", "contact email", "mail address"}},
	{FieldCurrency, currencyPhrases},
}

// LaneSynonyms covers the fifteen fields of a shipping lane row.
var LaneSynonyms = []FieldSynonyms{
	{FieldMode, modePhrases},
	{FieldIncoterm, []string{"incoterm", "incoterms", "term", "terms"}},
	{FieldOriginCountry, []string{"origin country", "country of origin", "from country", "export country"}},
	{FieldOriginCity, []string{"origin city", "from city", "pickup city", "place of receipt"}},
	{FieldOriginPort, originPortPhrases},
	{FieldOriginAirport, originAirPhrases},
	{FieldDestCountry, []string{"destination country", "dest country", "to country", "import country"}},
	{FieldDestCity, []string{"destination city", "dest city", "to city", "delivery city", "place of delivery"}},
	{FieldDestPort, destPortPhrases},
	{FieldDestAirport, destAirPhrases},
	{FieldServiceLevel, []string{"service level", "service", "service type", "transit time"}},
	{FieldEquipment, equipmentPhrases},
	{FieldWeightKg, []string{"weight", "avg weight", "weight kg", "gross weight", "chargeable weight"}},
	{FieldVolumeCbm, []string{"volume", "cbm", "avg volume", "volume cbm", "cubic"}},
	{FieldShipmentsPerYear, []string{"shipments", "shipment", "per year", "annual", "yearly", "per annum"}},
}

// RateSynonyms covers the columns of a rate table row.
var RateSynonyms = []FieldSynonyms{
	{FieldMode, modePhrases},
	{FieldEquipment, equipmentPhrases},
	{FieldUOM, []string{"uom", "uo", "unit", "basis", "per unit", "unit of measure", "rate basis"}},
	{FieldRate, []string{"rate", "price", "amount", "unit price", "cost", "buy rate", "sell rate"}},
	{FieldMin, []string{"minimum", "min charge", "minimum charge", "min"}},
	{FieldCurrency, currencyPhrases},
	{FieldOriginPort, originPortPhrases},
	{FieldDestPort, destPortPhrases},
	{FieldOriginAirport, originAirPhrases},
	{FieldDestAirport, destAirPhrases},
	{FieldChargeName, []string{"charge", "charge name", "surcharge", "fee", "charge description", "line item", "charge type"}},
}

// Regex hints, used as fallbacks when phrase matching is ambiguous.
// Only the unit detectors drive behavior today (UOM canonicalization);
// the rest are published for callers that post-process raw cells.
var (
	ReIATACode   = regexp.MustCompile(`^[A-Z]{3}$`)
	ReCountryISO = regexp.MustCompile(`^[A-Z]{2}$`)
	ReHSPrefix   = regexp.MustCompile(`^\d{4}`)
	ReWeightUnit = regexp.MustCompile(`(?i)\b(kgs?|kilos?|lbs?|tons?|tonnes?|mt)\b`)
	ReVolumeUnit = regexp.MustCompile(`(?i)\b(cbm|m3|cum|cft)\b`)
	ReCurrency   = regexp.MustCompile(`(?i)\b(usd|eur|gbp|cny|rmb|jpy|inr|aed|sgd|hkd)\b`)
	ReMoney      = regexp.MustCompile(`[-+]?\d[\d,]*(?:\.\d+)?`)
)

// UOMCanon binds one canonical unit of measure to the substrings that
// select it. Order matters: canonUom checks entries top to bottom and
// the first hint hit wins.
type UOMCanon struct {
	UOM   model.UOM
	Hints []string
}

// UOMCanonOrder is the declared canonicalization order.
var UOMCanonOrder = []UOMCanon{
	{model.UOMPerKg, []string{"kg", "/kg", "per kg", "kilo"}},
	{model.UOMPerCbm, []string{"cbm", "/cbm", "per cbm", "m3", "cubic"}},
	{model.UOMPerCnt, []string{"cnt", "container", "per container", "ctr", "ctnr", "teu", "feu", "box"}},
	{model.UOMPerShpt, []string{"shpt", "shipment", "per shipment", "hbl", "awb", "per bl"}},
	{model.UOMFlat, []string{"flat", "lump sum", "lumpsum", "fixed"}},
}

// phrasesFor returns the synonym list for one field of a group.
func phrasesFor(group []FieldSynonyms, field string) []string {
	for _, fs := range group {
		if fs.Field == field {
			return fs.Phrases
		}
	}
	return nil
}
