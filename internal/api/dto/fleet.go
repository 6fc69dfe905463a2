package dto

// Read-only fleet views returned by the list endpoints.

type DriverResponse struct {
	DriverID      int    `json:"driver_id"`
	Name          string `json:"name"`
	ShiftHours    int    `json:"shift_hours"`
	PastWeekHours []int  `json:"past_week_hours"`
}

type ListDriversResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

type RouteResponse struct {
	RouteID     int     `json:"route_id"`
	DistanceKm  float64 `json:"distance_km"`
	Traffic     string  `json:"traffic_level"`
	BaseTimeMin int     `json:"base_time_min"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type OrderResponse struct {
	ID           int     `json:"id"`
	OrderID      string  `json:"order_id"`
	ValueRs      float64 `json:"value_rs"`
	RouteID      int     `json:"route_id"`
	DeliveryTime string  `json:"delivery_time"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
