package ip2bin

// Product identifies which database product a BIN file carries.
type Product uint8

const (
	ProductLocation Product = 1
	ProductProxy    Product = 2
)

// String returns the product name.
func (p Product) String() string {
	switch p {
	case ProductLocation:
		return "IP2Location"
	case ProductProxy:
		return "IP2Proxy"
	}
	return "unknown"
}

// prefix returns the db-type prefix used in product literature (DB5, PX11).
func (p Product) prefix() string {
	if p == ProductProxy {
		return "PX"
	}
	return "DB"
}

// maxType is the highest db_type with a known column layout.
func (p Product) maxType() uint8 {
	if p == ProductProxy {
		return uint8(len(pxProxyType) - 1)
	}
	return uint8(len(locCountry) - 1)
}

// Field identifies a semantic database column. Fields form a bitmask so a
// database's full column set can be carried in one value.
type Field uint32

const (
	FieldCountry Field = 1 << iota
	FieldRegion
	FieldCity
	FieldISP
	FieldLatitude
	FieldLongitude
	FieldDomain
	FieldZipCode
	FieldTimeZone
	FieldNetSpeed
	FieldIDDCode
	FieldAreaCode
	FieldWeatherStationCode
	FieldWeatherStationName
	FieldMCC
	FieldMNC
	FieldMobileBrand
	FieldElevation
	FieldUsageType
	FieldAddressType
	FieldCategory
	FieldDistrict
	FieldASN
	FieldASName
	FieldProxyType
	FieldLastSeen
	FieldThreat
	FieldProvider

	fieldMax Field = 1<<iota - 1
)

// String returns the column name as it appears in product literature.
func (f Field) String() string {
	switch f {
	case FieldCountry:
		return "country"
	case FieldRegion:
		return "region"
	case FieldCity:
		return "city"
	case FieldISP:
		return "isp"
	case FieldLatitude:
		return "latitude"
	case FieldLongitude:
		return "longitude"
	case FieldDomain:
		return "domain"
	case FieldZipCode:
		return "zip_code"
	case FieldTimeZone:
		return "time_zone"
	case FieldNetSpeed:
		return "net_speed"
	case FieldIDDCode:
		return "idd_code"
	case FieldAreaCode:
		return "area_code"
	case FieldWeatherStationCode:
		return "weather_station_code"
	case FieldWeatherStationName:
		return "weather_station_name"
	case FieldMCC:
		return "mcc"
	case FieldMNC:
		return "mnc"
	case FieldMobileBrand:
		return "mobile_brand"
	case FieldElevation:
		return "elevation"
	case FieldUsageType:
		return "usage_type"
	case FieldAddressType:
		return "address_type"
	case FieldCategory:
		return "category"
	case FieldDistrict:
		return "district"
	case FieldASN:
		return "asn"
	case FieldASName:
		return "as"
	case FieldProxyType:
		return "proxy_type"
	case FieldLastSeen:
		return "last_seen"
	case FieldThreat:
		return "threat"
	case FieldProvider:
		return "provider"
	}
	return "unknown"
}

// Column positions per db_type, index 0 unused. A value of 0 means the
// column is absent from that db_type; otherwise it is the 1-based column
// index within a row (column 1 is IP_FROM).
//
// IP2Location DB1..DB26.
var (
	locCountry   = [27]uint8{0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	locRegion    = [27]uint8{0, 0, 0, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3}
	locCity      = [27]uint8{0, 0, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	locISP       = [27]uint8{0, 0, 3, 0, 5, 0, 7, 5, 7, 0, 8, 0, 9, 0, 9, 0, 9, 0, 9, 7, 9, 0, 9, 7, 9, 9, 9}
	locLatitude  = [27]uint8{0, 0, 0, 0, 0, 5, 5, 0, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	locLongitude = [27]uint8{0, 0, 0, 0, 0, 6, 6, 0, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6}
	locDomain    = [27]uint8{0, 0, 0, 0, 0, 0, 0, 6, 8, 0, 9, 0, 10, 0, 10, 0, 10, 0, 10, 8, 10, 0, 10, 8, 10, 10, 10}
	locZipCode   = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 7, 7, 7, 7, 0, 7, 7, 7, 0, 7, 0, 7, 7, 7, 0, 7, 7, 7}
	locTimeZone  = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 8, 8, 7, 8, 8, 8, 7, 8, 0, 8, 8, 8, 0, 8, 8, 8}
	locNetSpeed  = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 8, 11, 0, 11, 8, 11, 0, 11, 0, 11, 0, 11, 11, 11}
	locIDDCode   = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9, 12, 0, 12, 0, 12, 9, 12, 0, 12, 12, 12}
	locAreaCode  = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 13, 0, 13, 0, 13, 10, 13, 0, 13, 13, 13}
	locWSCode    = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9, 14, 0, 14, 0, 14, 0, 14, 14, 14}
	locWSName    = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 15, 0, 15, 0, 15, 0, 15, 15, 15}
	locMCC       = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9, 16, 0, 16, 9, 16, 16, 16}
	locMNC       = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10, 17, 0, 17, 10, 17, 17, 17}
	locMobile    = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 11, 18, 0, 18, 11, 18, 18, 18}
	locElevation = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 11, 19, 0, 19, 19, 19}
	locUsageType = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 12, 20, 20, 20}
	locAddrType  = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 21, 21}
	locCategory  = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 22, 22}
	locDistrict  = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 23}
	locASN       = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 24}
	locASName    = [27]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 25}
)

// IP2Proxy PX1..PX11.
var (
	pxProxyType = [12]uint8{0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	pxCountry   = [12]uint8{0, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3}
	pxRegion    = [12]uint8{0, 0, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	pxCity      = [12]uint8{0, 0, 0, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	pxISP       = [12]uint8{0, 0, 0, 0, 6, 6, 6, 6, 6, 6, 6, 6}
	pxDomain    = [12]uint8{0, 0, 0, 0, 0, 7, 7, 7, 7, 7, 7, 7}
	pxUsageType = [12]uint8{0, 0, 0, 0, 0, 0, 8, 8, 8, 8, 8, 8}
	pxASN       = [12]uint8{0, 0, 0, 0, 0, 0, 0, 9, 9, 9, 9, 9}
	pxASName    = [12]uint8{0, 0, 0, 0, 0, 0, 0, 10, 10, 10, 10, 10}
	pxLastSeen  = [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 11, 11, 11, 11}
	pxThreat    = [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 12, 12, 12}
	pxProvider  = [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 13}
)

// position returns the 1-based column index of f for the given product and
// db_type, or 0 if the column is absent.
func position(p Product, t uint8, f Field) uint8 {
	if t > p.maxType() {
		return 0
	}
	if p == ProductProxy {
		switch f {
		case FieldProxyType:
			return pxProxyType[t]
		case FieldCountry:
			return pxCountry[t]
		case FieldRegion:
			return pxRegion[t]
		case FieldCity:
			return pxCity[t]
		case FieldISP:
			return pxISP[t]
		case FieldDomain:
			return pxDomain[t]
		case FieldUsageType:
			return pxUsageType[t]
		case FieldASN:
			return pxASN[t]
		case FieldASName:
			return pxASName[t]
		case FieldLastSeen:
			return pxLastSeen[t]
		case FieldThreat:
			return pxThreat[t]
		case FieldProvider:
			return pxProvider[t]
		}
		return 0
	}
	switch f {
	case FieldCountry:
		return locCountry[t]
	case FieldRegion:
		return locRegion[t]
	case FieldCity:
		return locCity[t]
	case FieldISP:
		return locISP[t]
	case FieldLatitude:
		return locLatitude[t]
	case FieldLongitude:
		return locLongitude[t]
	case FieldDomain:
		return locDomain[t]
	case FieldZipCode:
		return locZipCode[t]
	case FieldTimeZone:
		return locTimeZone[t]
	case FieldNetSpeed:
		return locNetSpeed[t]
	case FieldIDDCode:
		return locIDDCode[t]
	case FieldAreaCode:
		return locAreaCode[t]
	case FieldWeatherStationCode:
		return locWSCode[t]
	case FieldWeatherStationName:
		return locWSName[t]
	case FieldMCC:
		return locMCC[t]
	case FieldMNC:
		return locMNC[t]
	case FieldMobileBrand:
		return locMobile[t]
	case FieldElevation:
		return locElevation[t]
	case FieldUsageType:
		return locUsageType[t]
	case FieldAddressType:
		return locAddrType[t]
	case FieldCategory:
		return locCategory[t]
	case FieldDistrict:
		return locDistrict[t]
	case FieldASN:
		return locASN[t]
	case FieldASName:
		return locASName[t]
	}
	return 0
}

// fieldsFor computes the mask of columns present in (product, db_type).
func fieldsFor(p Product, t uint8) Field {
	var mask Field
	for f := Field(1); f < fieldMax; f <<= 1 {
		if position(p, t, f) != 0 {
			mask |= f
		}
	}
	return mask
}
