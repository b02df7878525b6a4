// Package datasets holds the fixed list of collections exported from the
// open-data API, in the order a run processes them.
package datasets

import "opendata/internal/etl"

var (
	eatsafe = etl.Columns(
		etl.Col("name"),
		etl.Col("rating"),
		etl.Col("createdAt"),
		etl.Col("address1"),
		etl.Col("address2"),
		etl.Col("address3"),
		etl.Col("postCode"),
		etl.Col("latitude"),
		etl.Col("longitude"),
	)

	toilets = etl.Columns(
		etl.Col("id"),
		etl.Col("createdAt"),
		etl.Col("name"),
		etl.Col("parish"),
		etl.Col("latitude"),
		etl.Col("longitude"),
		etl.Column{Name: "ownerName", Extract: etl.NestedName("owner")},
		etl.Column{Name: "facilities", Extract: etl.Joined("facilities")},
	)

	defibrillators = etl.Columns(
		etl.Col("id"),
		etl.Col("location"),
		etl.Col("streetName"),
		etl.Col("parish"),
		etl.Col("postCode"),
		etl.Col("padNumber"),
		etl.Col("latitude"),
		etl.Col("longitude"),
		etl.Col("notes"),
	)

	recycling = etl.Columns(
		etl.Col("id"),
		etl.Col("createdAt"),
		etl.Col("location"),
		etl.Col("parish"),
		etl.Col("latitude"),
		etl.Col("longitude"),
		etl.Col("notes"),
		etl.Column{Name: "services", Extract: etl.Joined("services")},
	)

	vehicles = etl.Columns(
		etl.Col("make"),
		etl.Col("model"),
		etl.Col("color"),
		etl.Col("cylinderCapacity"),
		etl.Col("weight"),
		etl.Col("co2Emissions"),
		etl.Col("fuelType"),
		etl.Col("firstRegisteredAt"),
		etl.Col("firstRegisteredInJerseyAt"),
	)

	carparks = etl.Columns(
		etl.Col("id"),
		etl.Col("name"),
		etl.Col("surfaceType"),
		etl.Col("spaces"),
		etl.Col("disabledSpaces"),
		etl.Col("parentChildSpaces"),
		etl.Col("electricChargingSpaces"),
		etl.Col("multiStorey"),
		etl.Column{Name: "ownerName", Extract: etl.NestedName("owner")},
		etl.Column{Name: "paymentMethods", Extract: etl.Joined("paymentMethods")},
		etl.Col("notes"),
		etl.Col("latitude"),
		etl.Col("longitude"),
		etl.Col("payByPhoneCode"),
		etl.Col("type"),
	)

	foi = etl.Columns(
		etl.Col("id"),
		etl.Col("title"),
		etl.Col("author"),
		etl.Col("producer"),
		etl.Col("publishDate"),
	)
)

// Catalog returns the datasets of a full run.
func Catalog() []etl.Dataset {
	return []etl.Dataset{
		{Name: "eatsafe", Endpoint: "/eatsafe", Projection: eatsafe},
		{Name: "toilets", Endpoint: "/toilets", Exclude: []string{"createdAt"}, Projection: toilets},
		{Name: "defibrillators", Endpoint: "/defibrillators", Projection: defibrillators},
		{Name: "recycling", Endpoint: "/recycling", Projection: recycling},
		{Name: "vehicles", Endpoint: "/vehicles", Projection: vehicles},
		{Name: "vehicles-colors", Endpoint: "/vehicles/colors", Kind: etl.KindObjectMap, KeyColumn: "color", ValueColumn: "count"},
		{Name: "vehicles-makes", Endpoint: "/vehicles/makes", Kind: etl.KindObjectMap, KeyColumn: "make", ValueColumn: "count"},
		{Name: "vehicles-models", Endpoint: "/vehicles/models", Kind: etl.KindObjectMap, KeyColumn: "model", ValueColumn: "count"},
		{Name: "carparks", Endpoint: "/carparks", Projection: carparks},
		{Name: "carparks-spaces", Endpoint: "/carparks/spaces", Kind: etl.KindPivot, KeyColumn: "date"},
		{Name: "foi-requests", Endpoint: "/foi-requests", Projection: foi},
		{Name: "bus-stops", Endpoint: "/bus/stops", Projection: etl.Identity()},
	}
}
