package fleet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyamshah/greenroute/core/model"
)

const samplePlan = `name: western-corridor
locations:
  - name: Mumbai
    lat: 19.0760
    lon: 72.8777
  - name: Delhi
    lat: 28.7041
    lon: 77.1025
routes:
  - origin: Mumbai
    destination: Delhi
    distance_km: 1400
    traffic_factor: 1.2
    toll_cost: 400
vehicles:
  - id: TRK-1
    type: Large_Truck
    capacity_kg: 5000
    efficiency_km_per_l: 6
    co2_kg_per_km: 0.5
    status: Available
  - id: VAN-1
    type: Small_Van
    capacity_kg: 800
    efficiency_km_per_l: 12
    co2_kg_per_km: 0.25
    status: Maintenance
    speed_kmh: 70
orders:
  - origin: Mumbai
    destination: Delhi
    weight_kg: 500
    priority: Express
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPlan(t *testing.T) {
	plan, err := Load(writePlan(t, samplePlan))
	require.NoError(t, err)
	assert.Equal(t, "western-corridor", plan.Name)

	routes := plan.RouteRecords()
	require.Len(t, routes, 1)
	assert.Equal(t, 1.2, routes[0].TrafficFactor)
	// Unset factors normalize to 1.0 so they do not zero out travel time.
	assert.Equal(t, 1.0, routes[0].WeatherFactor)

	vehicles, err := plan.VehicleRecords()
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, model.StatusAvailable, vehicles[0].Status)
	assert.Equal(t, model.StatusMaintenance, vehicles[1].Status)
	assert.Equal(t, 70.0, vehicles[1].SpeedKmh)

	orders, err := plan.OrderRequests()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.PriorityExpress, orders[0].Priority)

	idx := plan.LocationIndex()
	require.Contains(t, idx, "Mumbai")
	assert.InDelta(t, 19.0760, idx["Mumbai"].Lat, 1e-9)
}

func TestLoadPlanRejectsUnknownStatus(t *testing.T) {
	plan, err := Load(writePlan(t, `
routes: []
vehicles:
  - id: X
    capacity_kg: 100
    status: Parked
orders: []
`))
	require.NoError(t, err)
	_, err = plan.VehicleRecords()
	assert.Error(t, err)
}

func TestLoadPlanRequiresVehicles(t *testing.T) {
	_, err := Load(writePlan(t, "routes: []\norders: []\n"))
	assert.Error(t, err)
}
