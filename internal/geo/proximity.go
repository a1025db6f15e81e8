package geo

import "math"

// earthRadiusKm - радиус сферической модели Земли
const earthRadiusKm = 6371.0

// Haversine возвращает расстояние по дуге большого круга между двумя
// точками в километрах
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ProximityResult - результат проверки близости инцидента к подписчику
type ProximityResult struct {
	Accepted   bool
	DistanceKm *float64
}

// ProximityFilter отсекает инциденты дальше заданного радиуса от подписчика.
// Если местоположение подписчика неизвестно, фильтр пропускает все.
type ProximityFilter struct {
	subscriber *Point
}

// NewProximityFilter создает фильтр близости. subscriber может быть nil
func NewProximityFilter(subscriber *Point) *ProximityFilter {
	return &ProximityFilter{subscriber: subscriber}
}

// Subscriber возвращает известное местоположение подписчика или nil
func (f *ProximityFilter) Subscriber() *Point {
	return f.subscriber
}

// Check проверяет, находится ли точка в пределах radiusKm от подписчика.
// Фильтр применяется только при приеме инцидента: уже принятые инциденты
// при смене радиуса не перепроверяются.
func (f *ProximityFilter) Check(lat, lng, radiusKm float64) ProximityResult {
	if f.subscriber == nil {
		return ProximityResult{Accepted: true}
	}

	dist := Haversine(f.subscriber.Latitude, f.subscriber.Longitude, lat, lng)
	return ProximityResult{
		Accepted:   dist <= radiusKm,
		DistanceKm: &dist,
	}
}
