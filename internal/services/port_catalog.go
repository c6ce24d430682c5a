package services

import (
	"sort"
	"strings"

	"shorex/internal/models/response_models"
)

type PortCatalogInterface interface {
	Search(query, region string, limit int) []response_models.CatalogPort
	Regions() []string
}

// PortCatalog serves a small built-in list of popular cruise ports so the
// client can offer autocomplete without a third-party places API.
type PortCatalog struct {
	ports []response_models.CatalogPort
}

func NewPortCatalog() PortCatalogInterface {
	return &PortCatalog{ports: catalogPorts}
}

var catalogPorts = []response_models.CatalogPort{
	{Name: "Barcelona", Country: "Spain", Region: "Mediterranean", Latitude: 41.3851, Longitude: 2.1734},
	{Name: "Civitavecchia (Rome)", Country: "Italy", Region: "Mediterranean", Latitude: 42.0924, Longitude: 11.7954},
	{Name: "Marseille", Country: "France", Region: "Mediterranean", Latitude: 43.2965, Longitude: 5.3698},
	{Name: "Piraeus (Athens)", Country: "Greece", Region: "Mediterranean", Latitude: 37.9420, Longitude: 23.6463},
	{Name: "Santorini", Country: "Greece", Region: "Mediterranean", Latitude: 36.3932, Longitude: 25.4615},
	{Name: "Dubrovnik", Country: "Croatia", Region: "Mediterranean", Latitude: 42.6507, Longitude: 18.0944},
	{Name: "Venice", Country: "Italy", Region: "Mediterranean", Latitude: 45.4408, Longitude: 12.3155},
	{Name: "Lisbon", Country: "Portugal", Region: "Mediterranean", Latitude: 38.7223, Longitude: -9.1393},
	{Name: "Nassau", Country: "Bahamas", Region: "Caribbean", Latitude: 25.0443, Longitude: -77.3504},
	{Name: "Cozumel", Country: "Mexico", Region: "Caribbean", Latitude: 20.4230, Longitude: -86.9223},
	{Name: "George Town", Country: "Cayman Islands", Region: "Caribbean", Latitude: 19.2866, Longitude: -81.3744},
	{Name: "San Juan", Country: "Puerto Rico", Region: "Caribbean", Latitude: 18.4655, Longitude: -66.1057},
	{Name: "St. Thomas", Country: "US Virgin Islands", Region: "Caribbean", Latitude: 18.3419, Longitude: -64.9307},
	{Name: "Bridgetown", Country: "Barbados", Region: "Caribbean", Latitude: 13.0975, Longitude: -59.6167},
	{Name: "Juneau", Country: "United States", Region: "Alaska", Latitude: 58.3019, Longitude: -134.4197},
	{Name: "Ketchikan", Country: "United States", Region: "Alaska", Latitude: 55.3422, Longitude: -131.6461},
	{Name: "Skagway", Country: "United States", Region: "Alaska", Latitude: 59.4583, Longitude: -135.3139},
	{Name: "Copenhagen", Country: "Denmark", Region: "Northern Europe", Latitude: 55.6761, Longitude: 12.5683},
	{Name: "Stockholm", Country: "Sweden", Region: "Northern Europe", Latitude: 59.3293, Longitude: 18.0686},
	{Name: "Tallinn", Country: "Estonia", Region: "Northern Europe", Latitude: 59.4370, Longitude: 24.7536},
	{Name: "Bergen", Country: "Norway", Region: "Northern Europe", Latitude: 60.3913, Longitude: 5.3221},
	{Name: "Singapore", Country: "Singapore", Region: "Asia", Latitude: 1.3521, Longitude: 103.8198},
	{Name: "Yokohama (Tokyo)", Country: "Japan", Region: "Asia", Latitude: 35.4437, Longitude: 139.6380},
	{Name: "Sydney", Country: "Australia", Region: "Oceania", Latitude: -33.8688, Longitude: 151.2093},
}

func (c *PortCatalog) Search(query, region string, limit int) []response_models.CatalogPort {
	if limit < 1 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	q := strings.ToLower(strings.TrimSpace(query))
	r := strings.ToLower(strings.TrimSpace(region))

	results := make([]response_models.CatalogPort, 0, limit)
	for _, port := range c.ports {
		if r != "" && strings.ToLower(port.Region) != r {
			continue
		}
		if q != "" && !matchesCatalogQuery(port, q) {
			continue
		}
		results = append(results, port)
		if len(results) == limit {
			break
		}
	}
	return results
}

func matchesCatalogQuery(port response_models.CatalogPort, q string) bool {
	return strings.Contains(strings.ToLower(port.Name), q) ||
		strings.Contains(strings.ToLower(port.Country), q) ||
		strings.Contains(strings.ToLower(port.Region), q)
}

func (c *PortCatalog) Regions() []string {
	seen := make(map[string]struct{})
	regions := make([]string, 0, 8)
	for _, port := range c.ports {
		if _, ok := seen[port.Region]; ok {
			continue
		}
		seen[port.Region] = struct{}{}
		regions = append(regions, port.Region)
	}
	sort.Strings(regions)
	return regions
}
