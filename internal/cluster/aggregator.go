package cluster

import (
	"math"

	"github.com/shenikar/incident_alert_engine/internal/classifier"
	"github.com/shenikar/incident_alert_engine/internal/models"
)

const (
	// tileSize - размер тайла Web Mercator в пикселях
	tileSize = 256.0
	// maxSeverity - верхняя граница шкалы severity для нормализации весов
	maxSeverity = 5.0
)

// Aggregator группирует активные инциденты в кластеры для отображения
// на карте. Кластеризация однолинкерная (single-linkage): два инцидента
// попадают в один кластер, если пиксельное расстояние между ними на текущем
// зуме не превышает радиус, связность транзитивна.
type Aggregator struct {
	radiusPx float64
}

// NewAggregator создает Aggregator с пиксельным радиусом кластеризации
func NewAggregator(radiusPx float64) *Aggregator {
	return &Aggregator{radiusPx: radiusPx}
}

// SetRadiusPx меняет пиксельный радиус кластеризации
func (a *Aggregator) SetRadiusPx(radiusPx float64) {
	a.radiusPx = radiusPx
}

// project переводит координату в пиксельные координаты Web Mercator
// на заданном уровне зума
func project(lat, lng float64, zoom int) (x, y float64) {
	scale := tileSize * math.Exp2(float64(zoom))
	x = (lng + 180) / 360 * scale

	sinLat := math.Sin(lat * math.Pi / 180)
	y = (0.5 - math.Log((1+sinLat)/(1-sinLat))/(4*math.Pi)) * scale
	return x, y
}

// pixelDistance возвращает расстояние между двумя инцидентами в пикселях
// на заданном зуме
func pixelDistance(a, b *models.Incident, zoom int) float64 {
	ax, ay := project(a.Latitude, a.Longitude, zoom)
	bx, by := project(b.Latitude, b.Longitude, zoom)
	return math.Hypot(ax-bx, ay-by)
}

// Recompute строит разбиение инцидентов на кластеры. Разбиение не зависит
// от порядка на входе; доминирующая категория при равенстве счетчиков
// определяется первой встреченной при обходе участников в порядке прибытия.
func (a *Aggregator) Recompute(incidents []*models.Incident, zoom int) []models.Cluster {
	n := len(incidents)
	if n == 0 {
		return []models.Cluster{}
	}

	// Union-Find по парам ближе радиуса
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[rj] = ri
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if pixelDistance(incidents[i], incidents[j], zoom) <= a.radiusPx {
				union(i, j)
			}
		}
	}

	// Собираем участников по корням, сохраняя порядок прибытия
	order := make([]int, 0, n)
	groups := make(map[int][]*models.Incident)
	for i, inc := range incidents {
		root := find(i)
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], inc)
	}

	clusters := make([]models.Cluster, 0, len(order))
	for _, root := range order {
		members := groups[root]
		dominant := dominantCategory(members)

		var sumLat, sumLng float64
		for _, m := range members {
			sumLat += m.Latitude
			sumLng += m.Longitude
		}

		clusters = append(clusters, models.Cluster{
			Members:          members,
			MemberCount:      len(members),
			DominantCategory: dominant,
			Icon:             classifier.CategoryIcon(dominant),
			Latitude:         sumLat / float64(len(members)),
			Longitude:        sumLng / float64(len(members)),
		})
	}
	return clusters
}

// dominantCategory возвращает категорию с наибольшим числом участников;
// при равенстве итоговых счетчиков побеждает категория, встреченная первой
// при обходе участников в порядке прибытия
func dominantCategory(members []*models.Incident) models.Category {
	counts := make(map[models.Category]int)
	maxCount := 0
	for _, m := range members {
		counts[m.Category]++
		if counts[m.Category] > maxCount {
			maxCount = counts[m.Category]
		}
	}
	for _, m := range members {
		if counts[m.Category] == maxCount {
			return m.Category
		}
	}
	return ""
}

// HeatWeights отображает severity каждого инцидента линейно на [0,1].
// Список не кластеризуется: каждый инцидент дает собственную точку.
func HeatWeights(incidents []*models.Incident) []models.HeatPoint {
	points := make([]models.HeatPoint, 0, len(incidents))
	for _, inc := range incidents {
		points = append(points, models.HeatPoint{
			Latitude:  inc.Latitude,
			Longitude: inc.Longitude,
			Weight:    float64(inc.Severity) / maxSeverity,
		})
	}
	return points
}
