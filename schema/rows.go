package schema

// Typed rows for the columnar and relational artifacts. Each struct mirrors
// its Table declaration field-for-field, in declaration order; the mirror is
// asserted by TestRowsMirrorTables. Numeric, boolean and struct columns are
// pointers so documents that omit them materialize as nulls rather than
// zero values. Text columns are plain strings because the normalizer
// guarantees they are never null or boolean when present.

// IDName is a generic id/label pair.
type IDName struct {
	ID   string `parquet:"id,optional" json:"id"`
	Name string `parquet:"name,optional" json:"name"`
}

// Facet is a World Bank style classification (id + display value).
type Facet struct {
	ID    string `parquet:"id,optional" json:"id"`
	Value string `parquet:"value,optional" json:"value"`
}

// CapitalCity is a named location with coordinates.
type CapitalCity struct {
	Name string   `parquet:"name,optional" json:"name"`
	Lng  *float64 `parquet:"lng,optional" json:"lng"`
	Lat  *float64 `parquet:"lat,optional" json:"lat"`
}

// Language is a spoken language entry of a country.
type Language struct {
	Code     string `parquet:"code,optional" json:"code"`
	Name     string `parquet:"name,optional" json:"name"`
	Official *bool  `parquet:"official,optional" json:"official"`
}

// Currency is a circulating currency of a country.
type Currency struct {
	Code   string `parquet:"code,optional" json:"code"`
	Name   string `parquet:"name,optional" json:"name"`
	Symbol string `parquet:"symbol,optional" json:"symbol"`
}

// Demonyms holds gendered demonym forms.
type Demonyms struct {
	Female string `parquet:"female,optional" json:"female"`
	Male   string `parquet:"male,optional" json:"male"`
}

// Gini is a Gini index measurement.
type Gini struct {
	Year  *int64   `parquet:"year,optional" json:"year"`
	Value *float64 `parquet:"value,optional" json:"value"`
}

// NativeName is a locale-qualified official/common name pair.
type NativeName struct {
	Official string `parquet:"official,optional" json:"official"`
	Common   string `parquet:"common,optional" json:"common"`
}

// Country is one row of the countries table.
type Country struct {
	Code         string                `parquet:"code,optional" json:"code"`
	Name         string                `parquet:"name,optional" json:"name"`
	ISO3Code     string                `parquet:"iso3code,optional" json:"iso3code"`
	CapitalCity  *CapitalCity          `parquet:"capital_city,optional" json:"capital_city"`
	Region       *Facet                `parquet:"region,optional" json:"region"`
	AdminRegion  *Facet                `parquet:"adminregion,optional" json:"adminregion"`
	IncomeLevel  *Facet                `parquet:"incomeLevel,optional" json:"incomeLevel"`
	LendingType  *Facet                `parquet:"lendingType,optional" json:"lendingType"`
	NumericCode  string                `parquet:"numeric_code,optional" json:"numeric_code"`
	WikidataID   string                `parquet:"wikidata_id,optional" json:"wikidata_id"`
	OfficialName string                `parquet:"official_name,optional" json:"official_name"`
	Languages    []Language            `parquet:"languages,list,optional" json:"languages"`
	Currencies   []Currency            `parquet:"currencies,list,optional" json:"currencies"`
	UNMember     *bool                 `parquet:"un_member,optional" json:"un_member"`
	Independent  *bool                 `parquet:"independent,optional" json:"independent"`
	Subregion    string                `parquet:"subregion,optional" json:"subregion"`
	Continents   []string              `parquet:"continents,list,optional" json:"continents"`
	Borders      []string              `parquet:"borders,list,optional" json:"borders"`
	Landlocked   *bool                 `parquet:"landlocked,optional" json:"landlocked"`
	TLD          string                `parquet:"tld,optional" json:"tld"`
	CallingCodes []string              `parquet:"calling_codes,list,optional" json:"calling_codes"`
	FlagEmoji    string                `parquet:"flag_emoji,optional" json:"flag_emoji"`
	CarSide      string                `parquet:"car_side,optional" json:"car_side"`
	StartOfWeek  string                `parquet:"start_of_week,optional" json:"start_of_week"`
	Demonyms     *Demonyms             `parquet:"demonyms,optional" json:"demonyms"`
	M49Code      string                `parquet:"m49_code,optional" json:"m49_code"`
	Population   *int64                `parquet:"population,optional" json:"population"`
	Area         *float64              `parquet:"area,optional" json:"area"`
	Gini         *Gini                 `parquet:"gini,optional" json:"gini"`
	Timezones    []string              `parquet:"timezones,list,optional" json:"timezones"`
	NativeNames  map[string]NativeName `parquet:"native_names,optional" json:"native_names"`
	OtherNames   []IDName              `parquet:"other_names,list,optional" json:"other_names"`
	CommonNames  []string              `parquet:"common_names,list,optional" json:"common_names"`
}

// Link is an external reference of a block.
type Link struct {
	URL  string `parquet:"url,optional" json:"url"`
	Type string `parquet:"type,optional" json:"type"`
}

// Translation is a locale-qualified display name.
type Translation struct {
	Lang string `parquet:"lang,optional" json:"lang"`
	Name string `parquet:"name,optional" json:"name"`
}

// Member is one roster entry of a block.
type Member struct {
	ID     string `parquet:"id,optional" json:"id"`
	Name   string `parquet:"name,optional" json:"name"`
	Type   string `parquet:"type,optional" json:"type"`
	Status string `parquet:"status,optional" json:"status"`
	Joined string `parquet:"joined,optional" json:"joined"`
	Role   string `parquet:"role,optional" json:"role"`
	Note   string `parquet:"note,optional" json:"note"`
}

// Topic is a subject tag with a display name.
type Topic struct {
	Key  string `parquet:"key,optional" json:"key"`
	Name string `parquet:"name,optional" json:"name"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat *float64 `parquet:"lat,optional" json:"lat"`
	Lng *float64 `parquet:"lng,optional" json:"lng"`
}

// Headquarters is a block's seat.
type Headquarters struct {
	City        string       `parquet:"city,optional" json:"city"`
	Country     string       `parquet:"country,optional" json:"country"`
	Coordinates *Coordinates `parquet:"coordinates,optional" json:"coordinates"`
}

// Acronym is a locale-qualified acronym of a block.
type Acronym struct {
	Lang  string `parquet:"lang,optional" json:"lang"`
	Value string `parquet:"value,optional" json:"value"`
}

// Block is one row of the intblocks table.
type Block struct {
	ID              string        `parquet:"id,optional" json:"id"`
	Blocktype       []string      `parquet:"blocktype,list,optional" json:"blocktype"`
	Status          string        `parquet:"status,optional" json:"status"`
	Name            string        `parquet:"name,optional" json:"name"`
	Languages       []string      `parquet:"languages,list,optional" json:"languages"`
	Links           []Link        `parquet:"links,list,optional" json:"links"`
	Translations    []Translation `parquet:"translations,list,optional" json:"translations"`
	Founded         string        `parquet:"founded,optional" json:"founded"`
	GeographicScope string        `parquet:"geographic_scope,optional" json:"geographic_scope"`
	Regions         []string      `parquet:"regions,list,optional" json:"regions"`
	Includes        []Member      `parquet:"includes,list,optional" json:"includes"`
	MembershipCount *int64        `parquet:"membership_count,optional" json:"membership_count"`
	WikidataID      string        `parquet:"wikidata_id,optional" json:"wikidata_id"`
	LegalStatus     string        `parquet:"legal_status,optional" json:"legal_status"`
	Description     string        `parquet:"description,optional" json:"description"`
	Tags            []string      `parquet:"tags,list,optional" json:"tags"`
	Topics          []Topic       `parquet:"topics,list,optional" json:"topics"`
	Headquarters    *Headquarters `parquet:"headquarters,optional" json:"headquarters"`
	Acronyms        []Acronym     `parquet:"acronyms,list,optional" json:"acronyms"`
	PartOf          []string      `parquet:"partof,list,optional" json:"partof"`
	Dissolved       string        `parquet:"dissolved,optional" json:"dissolved"`
	Predecessor     string        `parquet:"predecessor,optional" json:"predecessor"`
	Successor       string        `parquet:"successor,optional" json:"successor"`
	OtherNames      []IDName      `parquet:"other_names,list,optional" json:"other_names"`
}

// BlockType is one row of the blocktypes table.
type BlockType struct {
	ID         string        `parquet:"id,optional" json:"id"`
	Name       string        `parquet:"name,optional" json:"name"`
	OtherNames []Translation `parquet:"other_names,list,optional" json:"other_names"`
}
