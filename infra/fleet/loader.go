// Package fleet loads delivery plans (locations, routes, vehicles and
// pending orders) from YAML files.
package fleet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/priyamshah/greenroute/core/model"
)

type LocationDef struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

func (l LocationDef) ToModel() model.Location {
	return model.Location{Name: l.Name, Lat: l.Lat, Lon: l.Lon}
}

type RouteDef struct {
	Origin        string  `yaml:"origin"`
	Destination   string  `yaml:"destination"`
	DistanceKm    float64 `yaml:"distance_km"`
	TrafficFactor float64 `yaml:"traffic_factor"`
	WeatherFactor float64 `yaml:"weather_factor"`
	TollCost      float64 `yaml:"toll_cost"`
	FuelEstimateL float64 `yaml:"fuel_estimate_l,omitempty"`
}

func (r RouteDef) ToModel() model.RouteRecord {
	rec := model.RouteRecord{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DistanceKm:    r.DistanceKm,
		TrafficFactor: r.TrafficFactor,
		WeatherFactor: r.WeatherFactor,
		TollCost:      r.TollCost,
		FuelEstimateL: r.FuelEstimateL,
	}
	if rec.TrafficFactor == 0 {
		rec.TrafficFactor = 1.0
	}
	if rec.WeatherFactor == 0 {
		rec.WeatherFactor = 1.0
	}
	return rec
}

type VehicleDef struct {
	ID               string  `yaml:"id"`
	Type             string  `yaml:"type"`
	CapacityKg       float64 `yaml:"capacity_kg"`
	EfficiencyKmPerL float64 `yaml:"efficiency_km_per_l"`
	CO2KgPerKm       float64 `yaml:"co2_kg_per_km"`
	Status           string  `yaml:"status"`
	SpeedKmh         float64 `yaml:"speed_kmh,omitempty"`
	CostPerKm        float64 `yaml:"cost_per_km,omitempty"`
	CostPerHour      float64 `yaml:"cost_per_hour,omitempty"`
}

func (v VehicleDef) ToModel() (model.VehicleRecord, error) {
	status, err := model.ParseVehicleStatus(v.Status)
	if err != nil {
		return model.VehicleRecord{}, fmt.Errorf("vehicle %s: %w", v.ID, err)
	}
	return model.VehicleRecord{
		ID:               v.ID,
		Type:             v.Type,
		CapacityKg:       v.CapacityKg,
		EfficiencyKmPerL: v.EfficiencyKmPerL,
		CO2KgPerKm:       v.CO2KgPerKm,
		Status:           status,
		SpeedKmh:         v.SpeedKmh,
		CostPerKm:        v.CostPerKm,
		CostPerHour:      v.CostPerHour,
	}, nil
}

type OrderDef struct {
	Origin      string  `yaml:"origin"`
	Destination string  `yaml:"destination"`
	WeightKg    float64 `yaml:"weight_kg"`
	Priority    string  `yaml:"priority"`
}

func (o OrderDef) ToModel() (model.OrderRequest, error) {
	priority, err := model.ParsePriority(o.Priority)
	if err != nil {
		return model.OrderRequest{}, fmt.Errorf("order %s->%s: %w", o.Origin, o.Destination, err)
	}
	return model.OrderRequest{
		Origin:      o.Origin,
		Destination: o.Destination,
		WeightKg:    o.WeightKg,
		Priority:    priority,
	}, nil
}

// Plan is one delivery planning problem: the known network plus the orders
// awaiting a vehicle assignment.
type Plan struct {
	Name      string        `yaml:"name"`
	Locations []LocationDef `yaml:"locations,omitempty"`
	Routes    []RouteDef    `yaml:"routes"`
	Vehicles  []VehicleDef  `yaml:"vehicles"`
	Orders    []OrderDef    `yaml:"orders"`
}

// LocationIndex returns the locations keyed by name for coordinate lookups.
func (p *Plan) LocationIndex() map[string]model.Location {
	if len(p.Locations) == 0 {
		return nil
	}
	idx := make(map[string]model.Location, len(p.Locations))
	for _, l := range p.Locations {
		idx[l.Name] = l.ToModel()
	}
	return idx
}

// RouteRecords converts the route table.
func (p *Plan) RouteRecords() []model.RouteRecord {
	out := make([]model.RouteRecord, 0, len(p.Routes))
	for _, r := range p.Routes {
		out = append(out, r.ToModel())
	}
	return out
}

// VehicleRecords converts the vehicle table.
func (p *Plan) VehicleRecords() ([]model.VehicleRecord, error) {
	out := make([]model.VehicleRecord, 0, len(p.Vehicles))
	for _, v := range p.Vehicles {
		rec, err := v.ToModel()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// OrderRequests converts the pending orders.
func (p *Plan) OrderRequests() ([]model.OrderRequest, error) {
	out := make([]model.OrderRequest, 0, len(p.Orders))
	for _, o := range p.Orders {
		req, err := o.ToModel()
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if len(p.Vehicles) == 0 {
		return nil, fmt.Errorf("plan %s: no vehicles defined", path)
	}
	return &p, nil
}
