package ip2bin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationPositions(t *testing.T) {
	// DB1 is IP + country only
	assert.Equal(t, uint8(2), position(ProductLocation, 1, FieldCountry))
	assert.Equal(t, uint8(0), position(ProductLocation, 1, FieldRegion))
	assert.Equal(t, uint8(0), position(ProductLocation, 1, FieldLatitude))

	// DB3 adds region and city
	assert.Equal(t, uint8(3), position(ProductLocation, 3, FieldRegion))
	assert.Equal(t, uint8(4), position(ProductLocation, 3, FieldCity))

	// DB5 adds coordinates
	assert.Equal(t, uint8(5), position(ProductLocation, 5, FieldLatitude))
	assert.Equal(t, uint8(6), position(ProductLocation, 5, FieldLongitude))

	// DB7 carries ISP+domain but no coordinates
	assert.Equal(t, uint8(0), position(ProductLocation, 7, FieldLatitude))
	assert.Equal(t, uint8(5), position(ProductLocation, 7, FieldISP))
	assert.Equal(t, uint8(6), position(ProductLocation, 7, FieldDomain))

	// DB11 is the full base geo set
	assert.Equal(t, uint8(7), position(ProductLocation, 11, FieldZipCode))
	assert.Equal(t, uint8(8), position(ProductLocation, 11, FieldTimeZone))
	assert.Equal(t, uint8(0), position(ProductLocation, 11, FieldISP))

	// DB26 carries the district/ASN tail
	assert.Equal(t, uint8(23), position(ProductLocation, 26, FieldDistrict))
	assert.Equal(t, uint8(24), position(ProductLocation, 26, FieldASN))
	assert.Equal(t, uint8(25), position(ProductLocation, 26, FieldASName))
	assert.Equal(t, uint8(21), position(ProductLocation, 26, FieldAddressType))

	// proxy-only fields never appear in location schemas
	for typ := uint8(1); typ <= 26; typ++ {
		assert.Equal(t, uint8(0), position(ProductLocation, typ, FieldProxyType), "DB%d", typ)
		assert.Equal(t, uint8(0), position(ProductLocation, typ, FieldThreat), "DB%d", typ)
	}
}

func TestProxyPositions(t *testing.T) {
	// PX1 is IP + country only
	assert.Equal(t, uint8(2), position(ProductProxy, 1, FieldCountry))
	assert.Equal(t, uint8(0), position(ProductProxy, 1, FieldProxyType))

	// PX2 onwards moves country to 3 behind proxy_type
	assert.Equal(t, uint8(2), position(ProductProxy, 2, FieldProxyType))
	assert.Equal(t, uint8(3), position(ProductProxy, 2, FieldCountry))

	// PX11 is the full set
	assert.Equal(t, uint8(9), position(ProductProxy, 11, FieldASN))
	assert.Equal(t, uint8(10), position(ProductProxy, 11, FieldASName))
	assert.Equal(t, uint8(11), position(ProductProxy, 11, FieldLastSeen))
	assert.Equal(t, uint8(12), position(ProductProxy, 11, FieldThreat))
	assert.Equal(t, uint8(13), position(ProductProxy, 11, FieldProvider))

	// provider exists only in PX11
	for typ := uint8(1); typ <= 10; typ++ {
		assert.Equal(t, uint8(0), position(ProductProxy, typ, FieldProvider), "PX%d", typ)
	}
}

func TestPositionOutOfRange(t *testing.T) {
	assert.Equal(t, uint8(0), position(ProductLocation, 27, FieldCountry))
	assert.Equal(t, uint8(0), position(ProductProxy, 12, FieldCountry))
	assert.Equal(t, uint8(0), position(ProductLocation, 0, FieldCountry))
}

func TestFieldsFor(t *testing.T) {
	db1 := fieldsFor(ProductLocation, 1)
	assert.Equal(t, FieldCountry, db1)

	db11 := fieldsFor(ProductLocation, 11)
	assert.Equal(t, FieldCountry|FieldRegion|FieldCity|FieldLatitude|FieldLongitude|FieldZipCode|FieldTimeZone, db11)

	px11 := fieldsFor(ProductProxy, 11)
	assert.Equal(t, FieldCountry|FieldRegion|FieldCity|FieldISP|FieldDomain|FieldUsageType|
		FieldASN|FieldASName|FieldLastSeen|FieldThreat|FieldProvider|FieldProxyType, px11)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "country", FieldCountry.String())
	assert.Equal(t, "weather_station_name", FieldWeatherStationName.String())
	assert.Equal(t, "proxy_type", FieldProxyType.String())
	assert.Equal(t, "unknown", Field(0).String())
}
