package geo

// Point - географическая координата в градусах
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Region - прямоугольная область, границы включительно
type Region struct {
	Name  string
	North float64
	South float64
	East  float64
	West  float64
}

// Contains проверяет, попадает ли точка в прямоугольник.
// Точки ровно на границе считаются внутри.
func (r Region) Contains(lat, lng float64) bool {
	return lat >= r.South && lat <= r.North && lng >= r.West && lng <= r.East
}

// Validator определяет, является ли координата допустимой сушей:
// точка должна лежать внутри рабочей области и вне всех зон исключения.
type Validator struct {
	bounds     Region
	exclusions []Region
}

// NewValidator создает Validator с рабочей областью и зонами исключения
func NewValidator(bounds Region, exclusions []Region) *Validator {
	return &Validator{
		bounds:     bounds,
		exclusions: exclusions,
	}
}

// NewChennaiValidator возвращает Validator с областью по умолчанию:
// Ченнаи и пригороды, исключая акваторию Бенгальского залива и устья рек.
func NewChennaiValidator() *Validator {
	bounds := Region{
		Name:  "chennai",
		North: 13.25,
		South: 12.85,
		East:  80.33,
		West:  80.10,
	}
	exclusions := []Region{
		{Name: "bay_of_bengal", North: 13.25, South: 12.85, East: 80.33, West: 80.31},
		{Name: "adyar_estuary", North: 13.02, South: 13.00, East: 80.31, West: 80.27},
		{Name: "ennore_creek", North: 13.25, South: 13.20, East: 80.33, West: 80.30},
	}
	return NewValidator(bounds, exclusions)
}

// IsValidLocation возвращает true, если координата внутри рабочей области
// и вне всех зон исключения. Чистый предикат без побочных эффектов.
func (v *Validator) IsValidLocation(lat, lng float64) bool {
	if !v.bounds.Contains(lat, lng) {
		return false
	}
	for _, zone := range v.exclusions {
		if zone.Contains(lat, lng) {
			return false
		}
	}
	return true
}

// Bounds возвращает рабочую область валидатора
func (v *Validator) Bounds() Region {
	return v.bounds
}
