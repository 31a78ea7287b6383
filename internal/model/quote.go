package model

// Mode is the transport mode of a lane or rate.
type Mode string

const (
	ModeOcean Mode = "OCEAN"
	ModeFCL   Mode = "FCL"
	ModeLCL   Mode = "LCL"
	ModeAir   Mode = "AIR"
	ModeTruck Mode = "TRUCK"
	ModeRail  Mode = "RAIL"
)

// UOM is the canonical unit of measure for a rate charge.
type UOM string

const (
	UOMPerKg   UOM = "per_kg"
	UOMPerCbm  UOM = "per_cbm"
	UOMPerCnt  UOM = "per_cnt"
	UOMPerShpt UOM = "per_shpt"
	UOMFlat    UOM = "flat"
)

// Meta holds header-level quote information pulled from small
// summary sheets. Every field is optional; empty means absent.
type Meta struct {
	BidName      string `json:"bid_name,omitempty"`
	Customer     string `json:"customer,omitempty"`
	ValidFrom    string `json:"valid_from,omitempty"`
	ValidTo      string `json:"valid_to,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Currency     string `json:"currency,omitempty"`
}

// Endpoint is one end of a shipping lane.
type Endpoint struct {
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
	Port    string `json:"port,omitempty"`
	Airport string `json:"airport,omitempty"`
}

// Empty reports whether no subfield is set.
func (e Endpoint) Empty() bool {
	return e.Country == "" && e.City == "" && e.Port == "" && e.Airport == ""
}

// Demand carries expected volumes for a lane. Pointers distinguish
// "absent" from an explicit zero.
type Demand struct {
	ShipmentsPerYear *float64 `json:"shipments_per_year,omitempty"`
	AvgWeightKg      *float64 `json:"avg_weight_kg,omitempty"`
	AvgVolumeCbm     *float64 `json:"avg_volume_cbm,omitempty"`
}

// Lane is one shipping requirement extracted from a lane table row.
type Lane struct {
	Mode         Mode     `json:"mode,omitempty"`
	Incoterm     string   `json:"incoterm,omitempty"`
	Origin       Endpoint `json:"origin"`
	Destination  Endpoint `json:"destination"`
	ServiceLevel string   `json:"service_level,omitempty"`
	Equipment    string   `json:"equipment,omitempty"`
	Demand       Demand   `json:"demand"`
}

// RateScope identifies which rate a charge belongs to. The struct is
// comparable on purpose: two scopes are the same rate exactly when all
// six fields are equal, with empty string standing in for absent.
type RateScope struct {
	Mode          Mode   `json:"mode,omitempty"`
	Equipment     string `json:"equipment,omitempty"`
	OriginPort    string `json:"origin_port,omitempty"`
	DestPort      string `json:"dest_port,omitempty"`
	OriginAirport string `json:"origin_airport,omitempty"`
	DestAirport   string `json:"dest_airport,omitempty"`
}

// RateCharge is one priced line item within a rate.
type RateCharge struct {
	Name     string   `json:"name"`
	UOM      UOM      `json:"uom"`
	Rate     float64  `json:"rate"`
	Min      *float64 `json:"min,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// Rate is the pricing for one logistics scope, possibly assembled from
// several source rows (base freight plus surcharges).
type Rate struct {
	Mode     Mode         `json:"mode,omitempty"`
	Scope    RateScope    `json:"scope"`
	Currency string       `json:"currency,omitempty"`
	Charges  []RateCharge `json:"charges"`
}

// SheetRank records how strongly one sheet looked like a lane table
// and like a rate table.
type SheetRank struct {
	Sheet     string `json:"sheet"`
	LaneScore int    `json:"laneScore"`
	RateScore int    `json:"rateScore"`
}

// Diagnostics summarizes one extraction run.
type Diagnostics struct {
	SheetRanks []SheetRank `json:"sheetRanks"`
	Confidence float64     `json:"confidence"` // 0-1
}

// QuotePayload is the engine's complete output for one workbook.
type QuotePayload struct {
	Meta        Meta        `json:"meta"`
	Lanes       []Lane      `json:"lanes"`
	Rates       []Rate      `json:"rates"`
	Diagnostics Diagnostics `json:"diagnostics"`
}
