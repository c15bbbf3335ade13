package ip2bin

import (
	"fmt"
	"strconv"
)

// Country is a country column value. The BIN format stores the ISO 3166
// short code and the full name back to back; one pointer reaches both.
type Country struct {
	ShortName string `json:"short_name"`
	LongName  string `json:"long_name"`
}

// ProxyStatus classifies a proxy-database row.
type ProxyStatus uint8

const (
	ProxyStatusUnknown ProxyStatus = iota
	NotAProxy
	IsAProxy
	IsADataCenterIPOrSearchEngineRobot
)

// String returns the classification name.
func (s ProxyStatus) String() string {
	switch s {
	case NotAProxy:
		return "not a proxy"
	case IsAProxy:
		return "proxy"
	case IsADataCenterIPOrSearchEngineRobot:
		return "data center IP or search engine robot"
	}
	return "unknown"
}

// DataCenterProxyTypes lists the proxy_type values classified as
// [IsADataCenterIPOrSearchEngineRobot]. SES was reclassified across DB
// revisions, so the set is a variable rather than a constant.
var DataCenterProxyTypes = []string{"DCH", "SES"}

// LocationRecord is a geolocation lookup result. String fields share the
// mapped file's memory and are valid until the DB is closed; fields absent
// from the database's type are left zero (see [DB.Has]).
type LocationRecord struct {
	IP                 string   `json:"ip"`
	Latitude           float32  `json:"latitude,omitempty"`
	Longitude          float32  `json:"longitude,omitempty"`
	Country            *Country `json:"country,omitempty"`
	Region             string   `json:"region,omitempty"`
	City               string   `json:"city,omitempty"`
	ISP                string   `json:"isp,omitempty"`
	Domain             string   `json:"domain,omitempty"`
	ZipCode            string   `json:"zip_code,omitempty"`
	TimeZone           string   `json:"time_zone,omitempty"`
	NetSpeed           string   `json:"net_speed,omitempty"`
	IDDCode            string   `json:"idd_code,omitempty"`
	AreaCode           string   `json:"area_code,omitempty"`
	WeatherStationCode string   `json:"weather_station_code,omitempty"`
	WeatherStationName string   `json:"weather_station_name,omitempty"`
	MCC                string   `json:"mcc,omitempty"`
	MNC                string   `json:"mnc,omitempty"`
	MobileBrand        string   `json:"mobile_brand,omitempty"`
	Elevation          float32  `json:"elevation,omitempty"`
	UsageType          string   `json:"usage_type,omitempty"`
	AddressType        string   `json:"address_type,omitempty"`
	Category           string   `json:"category,omitempty"`
	District           string   `json:"district,omitempty"`
	ASN                string   `json:"asn,omitempty"`
	ASName             string   `json:"as,omitempty"`
}

// ProxyRecord is a proxy-detection lookup result. String fields share the
// mapped file's memory and are valid until the DB is closed.
type ProxyRecord struct {
	IP        string      `json:"ip"`
	Country   *Country    `json:"country,omitempty"`
	Region    string      `json:"region,omitempty"`
	City      string      `json:"city,omitempty"`
	ISP       string      `json:"isp,omitempty"`
	Domain    string      `json:"domain,omitempty"`
	IsProxy   ProxyStatus `json:"is_proxy"`
	ProxyType string      `json:"proxy_type,omitempty"`
	ASN       string      `json:"asn,omitempty"`
	ASName    string      `json:"as,omitempty"`
	LastSeen  string      `json:"last_seen,omitempty"`
	Threat    string      `json:"threat,omitempty"`
	Provider  string      `json:"provider,omitempty"`
	UsageType string      `json:"usage_type,omitempty"`
}

// Record is a lookup result: exactly one of Location or Proxy is set,
// matching the opened database's product.
type Record struct {
	Location *LocationRecord `json:"location,omitempty"`
	Proxy    *ProxyRecord    `json:"proxy,omitempty"`
}

// fieldOff returns the absolute 1-based offset of f's column within the row
// starting at rowOff. IP_FROM occupies the first iplen bytes; every later
// column is 4 bytes wide.
func (db *DB) fieldOff(rowOff, iplen uint32, f Field) uint32 {
	return rowOff + iplen + 4*(uint32(position(db.h.product, db.h.dbType, f))-2)
}

// str follows a pointer column: the 4-byte value at off is the 0-based file
// offset of a length-prefixed string. rel shifts the target (the country
// long name sits 3 bytes past the short code).
func (db *DB) str(rowOff, iplen uint32, f Field, rel uint32) (string, error) {
	ptr, err := db.r.u32(db.fieldOff(rowOff, iplen, f))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRecordNotFound, f, err)
	}
	if ptr == 0 {
		return "", nil
	}
	s, err := db.r.pstring(ptr + rel + 1)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRecordNotFound, f, err)
	}
	return s, nil
}

func (db *DB) float(rowOff, iplen uint32, f Field) (float32, error) {
	v, err := db.r.f32(db.fieldOff(rowOff, iplen, f))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrRecordNotFound, f, err)
	}
	return v, nil
}

// materializeLocation decodes the matched row into a LocationRecord.
func (db *DB) materializeLocation(rowOff, iplen uint32) (*LocationRecord, error) {
	rec := &LocationRecord{}
	var err error

	if db.Has(FieldCountry) {
		var c Country
		if c.ShortName, err = db.str(rowOff, iplen, FieldCountry, 0); err != nil {
			return nil, err
		}
		if c.LongName, err = db.str(rowOff, iplen, FieldCountry, 3); err != nil {
			return nil, err
		}
		rec.Country = &c
	}
	if db.Has(FieldRegion) {
		if rec.Region, err = db.str(rowOff, iplen, FieldRegion, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldCity) {
		if rec.City, err = db.str(rowOff, iplen, FieldCity, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldLatitude) {
		if rec.Latitude, err = db.float(rowOff, iplen, FieldLatitude); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldLongitude) {
		if rec.Longitude, err = db.float(rowOff, iplen, FieldLongitude); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldISP) {
		if rec.ISP, err = db.str(rowOff, iplen, FieldISP, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldDomain) {
		if rec.Domain, err = db.str(rowOff, iplen, FieldDomain, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldZipCode) {
		if rec.ZipCode, err = db.str(rowOff, iplen, FieldZipCode, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldTimeZone) {
		if rec.TimeZone, err = db.str(rowOff, iplen, FieldTimeZone, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldNetSpeed) {
		if rec.NetSpeed, err = db.str(rowOff, iplen, FieldNetSpeed, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldIDDCode) {
		if rec.IDDCode, err = db.str(rowOff, iplen, FieldIDDCode, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldAreaCode) {
		if rec.AreaCode, err = db.str(rowOff, iplen, FieldAreaCode, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldWeatherStationCode) {
		if rec.WeatherStationCode, err = db.str(rowOff, iplen, FieldWeatherStationCode, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldWeatherStationName) {
		if rec.WeatherStationName, err = db.str(rowOff, iplen, FieldWeatherStationName, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldMCC) {
		if rec.MCC, err = db.str(rowOff, iplen, FieldMCC, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldMNC) {
		if rec.MNC, err = db.str(rowOff, iplen, FieldMNC, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldMobileBrand) {
		if rec.MobileBrand, err = db.str(rowOff, iplen, FieldMobileBrand, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldElevation) {
		// stored as a decimal string, not an inline float
		s, err := db.str(rowOff, iplen, FieldElevation, 0)
		if err != nil {
			return nil, err
		}
		if v, err := strconv.ParseFloat(s, 32); err == nil {
			rec.Elevation = float32(v)
		}
	}
	if db.Has(FieldUsageType) {
		if rec.UsageType, err = db.str(rowOff, iplen, FieldUsageType, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldAddressType) {
		if rec.AddressType, err = db.str(rowOff, iplen, FieldAddressType, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldCategory) {
		if rec.Category, err = db.str(rowOff, iplen, FieldCategory, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldDistrict) {
		if rec.District, err = db.str(rowOff, iplen, FieldDistrict, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldASN) {
		if rec.ASN, err = db.str(rowOff, iplen, FieldASN, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldASName) {
		if rec.ASName, err = db.str(rowOff, iplen, FieldASName, 0); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// materializeProxy decodes the matched row into a ProxyRecord.
func (db *DB) materializeProxy(rowOff, iplen uint32) (*ProxyRecord, error) {
	rec := &ProxyRecord{}
	var err error

	if db.Has(FieldProxyType) {
		if rec.ProxyType, err = db.str(rowOff, iplen, FieldProxyType, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldCountry) {
		var c Country
		if c.ShortName, err = db.str(rowOff, iplen, FieldCountry, 0); err != nil {
			return nil, err
		}
		if c.LongName, err = db.str(rowOff, iplen, FieldCountry, 3); err != nil {
			return nil, err
		}
		rec.Country = &c
		rec.IsProxy = classifyProxy(c.ShortName, rec.ProxyType)
	}
	if db.Has(FieldRegion) {
		if rec.Region, err = db.str(rowOff, iplen, FieldRegion, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldCity) {
		if rec.City, err = db.str(rowOff, iplen, FieldCity, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldISP) {
		if rec.ISP, err = db.str(rowOff, iplen, FieldISP, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldDomain) {
		if rec.Domain, err = db.str(rowOff, iplen, FieldDomain, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldUsageType) {
		if rec.UsageType, err = db.str(rowOff, iplen, FieldUsageType, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldASN) {
		if rec.ASN, err = db.str(rowOff, iplen, FieldASN, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldASName) {
		if rec.ASName, err = db.str(rowOff, iplen, FieldASName, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldLastSeen) {
		if rec.LastSeen, err = db.str(rowOff, iplen, FieldLastSeen, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldThreat) {
		if rec.Threat, err = db.str(rowOff, iplen, FieldThreat, 0); err != nil {
			return nil, err
		}
	}
	if db.Has(FieldProvider) {
		if rec.Provider, err = db.str(rowOff, iplen, FieldProvider, 0); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// classifyProxy derives the proxy status of a row: a "-" country marks a
// non-proxy range, and the proxy types in [DataCenterProxyTypes] mark
// hosting ranges and crawlers rather than anonymizers.
func classifyProxy(countryShort, proxyType string) ProxyStatus {
	if countryShort == "-" {
		return NotAProxy
	}
	for _, t := range DataCenterProxyTypes {
		if proxyType == t {
			return IsADataCenterIPOrSearchEngineRobot
		}
	}
	return IsAProxy
}
