package model

// Site is one leased property's administrative and financial record as
// displayed by the dashboard. All values are kept as display strings; the
// API alternates between numbers and strings for the same column depending
// on which import path populated it, so typing happens at the formatting
// boundary, not here.
type Site struct {
	SiteID string `json:"site_id"`

	StoreName   string `json:"store_name"`
	Region      string `json:"region"`
	Division    string `json:"div"`
	Manager     string `json:"manager"`
	AsstManager string `json:"asst_manager"`
	Executive   string `json:"executive"`

	DOO                string `json:"doo"`
	Sqft               string `json:"sqft"`
	AgreementDate      string `json:"agreement_date"`
	RentPositionDate   string `json:"rent_position_date"`
	RentEffectiveDate  string `json:"rent_effective_date"`
	AgreementValidUpto string `json:"agreement_valid_upto"`
	CurrentDate        string `json:"current_date"`
	LeasePeriod        string `json:"lease_period"`
	RentFreePeriodDays string `json:"rent_free_period_days"`

	RentEffectiveAmount string `json:"rent_effective_amount"`
	PresentRent         string `json:"present_rent"`
	HikePercentage      string `json:"hike_percentage"`
	HikeYear            string `json:"hike_year"`
	RentDeposit         string `json:"rent_deposit"`

	OwnerName1  string `json:"owner_name1"`
	OwnerName2  string `json:"owner_name2"`
	OwnerName3  string `json:"owner_name3"`
	OwnerName4  string `json:"owner_name4"`
	OwnerName5  string `json:"owner_name5"`
	OwnerName6  string `json:"owner_name6"`
	OwnerMobile string `json:"owner_mobile"`
	GSTNumber   string `json:"gst_number"`
	PANNumber   string `json:"pan_number"`
	TDSPercent  string `json:"tds_percentage"`

	// Elapsed time since rent position date and time remaining on the
	// agreement. Formatted duration strings, not dates.
	CurrentDate1 string `json:"current_date1"`
	ValidityDate string `json:"validity_date"`

	Mature  string `json:"mature"`
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// Kind classifies how a field is formatted for display and converted back
// for the wire on save.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
	KindDuration
	KindCurrency
	KindPercent
)

// Field binds one canonical Site attribute to its ordered source keys.
// Key order is a deliberate priority rule: the legacy spreadsheet column
// label comes first, the snake_case API identifier second, because either
// may be populated depending on import path and the label wins when both
// are present. Name doubles as the snake_case key used in update payloads;
// date fields are submitted under Label instead.
type Field struct {
	Name  string
	Label string
	Keys  []string
	Kind  Kind

	Get func(*Site) string
	Set func(*Site, string)
}

// Fields is the ordered alias table for every Site attribute, in display
// order. The reconciler, the edit session, and both front ends iterate this
// table rather than matching keys dynamically.
var Fields = []Field{
	{"site_id", "SITE", []string{"SITE", "site", "site_id"}, KindText,
		func(s *Site) string { return s.SiteID }, func(s *Site, v string) { s.SiteID = v }},
	{"store_name", "STORE NAME", []string{"STORE NAME", "store_name"}, KindText,
		func(s *Site) string { return s.StoreName }, func(s *Site, v string) { s.StoreName = v }},
	{"region", "REGION", []string{"REGION", "region"}, KindText,
		func(s *Site) string { return s.Region }, func(s *Site, v string) { s.Region = v }},
	{"div", "DIV", []string{"DIV", "div", "division"}, KindText,
		func(s *Site) string { return s.Division }, func(s *Site, v string) { s.Division = v }},
	{"manager", "MANAGER", []string{"MANAGER", "manager"}, KindText,
		func(s *Site) string { return s.Manager }, func(s *Site, v string) { s.Manager = v }},
	{"asst_manager", "ASST MANAGER", []string{"ASST MANAGER", "asst_manager"}, KindText,
		func(s *Site) string { return s.AsstManager }, func(s *Site, v string) { s.AsstManager = v }},
	{"executive", "EXECUTIVE", []string{"EXECUTIVE", "executive"}, KindText,
		func(s *Site) string { return s.Executive }, func(s *Site, v string) { s.Executive = v }},
	{"doo", "D.O.O", []string{"D.O.O", "doo"}, KindDate,
		func(s *Site) string { return s.DOO }, func(s *Site, v string) { s.DOO = v }},
	{"sqft", "SQ.FT", []string{"SQ.FT", "sqft"}, KindNumber,
		func(s *Site) string { return s.Sqft }, func(s *Site, v string) { s.Sqft = v }},
	{"agreement_date", "AGREEMENT DATE", []string{"AGREEMENT DATE", "agreement_date"}, KindDate,
		func(s *Site) string { return s.AgreementDate }, func(s *Site, v string) { s.AgreementDate = v }},
	{"rent_position_date", "RENT POSITION DATE", []string{"RENT POSITION DATE", "rent_position_date"}, KindDate,
		func(s *Site) string { return s.RentPositionDate }, func(s *Site, v string) { s.RentPositionDate = v }},
	{"rent_effective_date", "RENT EFFECTIVE DATE", []string{"RENT EFFECTIVE DATE", "rent_effective_date"}, KindDate,
		func(s *Site) string { return s.RentEffectiveDate }, func(s *Site, v string) { s.RentEffectiveDate = v }},
	{"agreement_valid_upto", "AGREEMENT VALID UPTO", []string{"AGREEMENT VALID UPTO", "agreement_valid_upto"}, KindDate,
		func(s *Site) string { return s.AgreementValidUpto }, func(s *Site, v string) { s.AgreementValidUpto = v }},
	{"current_date", "CURRENT DATE", []string{"CURRENT DATE", "current_date"}, KindDate,
		func(s *Site) string { return s.CurrentDate }, func(s *Site, v string) { s.CurrentDate = v }},
	{"lease_period", "LEASE PERIOD", []string{"LEASE PERIOD", "lease_period"}, KindNumber,
		func(s *Site) string { return s.LeasePeriod }, func(s *Site, v string) { s.LeasePeriod = v }},
	{"rent_free_period_days", "RENT FREE PERIOD DAYS", []string{"RENT FREE PERIOD DAYS", "rent_free_period_days"}, KindNumber,
		func(s *Site) string { return s.RentFreePeriodDays }, func(s *Site, v string) { s.RentFreePeriodDays = v }},
	{"rent_effective_amount", "RENT EFFECTIVE AMOUNT", []string{"RENT EFFECTIVE AMOUNT", "rent_effective_amount"}, KindCurrency,
		func(s *Site) string { return s.RentEffectiveAmount }, func(s *Site, v string) { s.RentEffectiveAmount = v }},
	{"present_rent", "PRESENT RENT", []string{"PRESENT RENT", "present_rent"}, KindCurrency,
		func(s *Site) string { return s.PresentRent }, func(s *Site, v string) { s.PresentRent = v }},
	{"hike_percentage", "HIKE %", []string{"HIKE %", "hike_percentage"}, KindPercent,
		func(s *Site) string { return s.HikePercentage }, func(s *Site, v string) { s.HikePercentage = v }},
	{"hike_year", "HIKE YEAR", []string{"HIKE YEAR", "hike_year"}, KindNumber,
		func(s *Site) string { return s.HikeYear }, func(s *Site, v string) { s.HikeYear = v }},
	{"rent_deposit", "RENT DEPOSIT", []string{"RENT DEPOSIT", "rent_deposit"}, KindCurrency,
		func(s *Site) string { return s.RentDeposit }, func(s *Site, v string) { s.RentDeposit = v }},
	{"owner_name1", "OWNER NAME-1", []string{"OWNER NAME-1", "owner_name1"}, KindText,
		func(s *Site) string { return s.OwnerName1 }, func(s *Site, v string) { s.OwnerName1 = v }},
	{"owner_name2", "OWNER NAME-2", []string{"OWNER NAME-2", "owner_name2"}, KindText,
		func(s *Site) string { return s.OwnerName2 }, func(s *Site, v string) { s.OwnerName2 = v }},
	{"owner_name3", "OWNER NAME-3", []string{"OWNER NAME-3", "owner_name3"}, KindText,
		func(s *Site) string { return s.OwnerName3 }, func(s *Site, v string) { s.OwnerName3 = v }},
	{"owner_name4", "OWNER NAME-4", []string{"OWNER NAME-4", "owner_name4"}, KindText,
		func(s *Site) string { return s.OwnerName4 }, func(s *Site, v string) { s.OwnerName4 = v }},
	{"owner_name5", "OWNER NAME-5", []string{"OWNER NAME-5", "owner_name5"}, KindText,
		func(s *Site) string { return s.OwnerName5 }, func(s *Site, v string) { s.OwnerName5 = v }},
	{"owner_name6", "OWNER NAME-6", []string{"OWNER NAME-6", "owner_name6"}, KindText,
		func(s *Site) string { return s.OwnerName6 }, func(s *Site, v string) { s.OwnerName6 = v }},
	{"owner_mobile", "OWNER MOBILE", []string{"OWNER MOBILE", "owner_mobile"}, KindText,
		func(s *Site) string { return s.OwnerMobile }, func(s *Site, v string) { s.OwnerMobile = v }},
	{"current_date1", "CURRENT DATE 1", []string{"CURRENT DATE 1", "current_date1"}, KindDuration,
		func(s *Site) string { return s.CurrentDate1 }, func(s *Site, v string) { s.CurrentDate1 = v }},
	{"validity_date", "VALIDITY DATE", []string{"VALIDITY DATE", "validity_date"}, KindDuration,
		func(s *Site) string { return s.ValidityDate }, func(s *Site, v string) { s.ValidityDate = v }},
	{"gst_number", "GST NUMBER", []string{"GST NUMBER", "gst_number"}, KindText,
		func(s *Site) string { return s.GSTNumber }, func(s *Site, v string) { s.GSTNumber = v }},
	{"pan_number", "PAN NUMBER", []string{"PAN NUMBER", "pan_number"}, KindText,
		func(s *Site) string { return s.PANNumber }, func(s *Site, v string) { s.PANNumber = v }},
	{"tds_percentage", "TDS PERCENTAGE", []string{"TDS PERCENTAGE", "tds_percentage"}, KindPercent,
		func(s *Site) string { return s.TDSPercent }, func(s *Site, v string) { s.TDSPercent = v }},
	{"mature", "MATURE", []string{"MATURE", "mature"}, KindText,
		func(s *Site) string { return s.Mature }, func(s *Site, v string) { s.Mature = v }},
	{"status", "STATUS", []string{"STATUS", "status"}, KindText,
		func(s *Site) string { return s.Status }, func(s *Site, v string) { s.Status = v }},
	{"remarks", "REMARKS", []string{"REMARKS", "remarks"}, KindText,
		func(s *Site) string { return s.Remarks }, func(s *Site, v string) { s.Remarks = v }},
}

// FieldByName looks up an entry in the alias table. Returns nil for
// unknown names.
func FieldByName(name string) *Field {
	for i := range Fields {
		if Fields[i].Name == name {
			return &Fields[i]
		}
	}
	return nil
}
