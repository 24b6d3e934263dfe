package fallback

import (
	"math/rand/v2"
	"sync"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/util/numberutils"
)

const (
	// CityDescription marks a record substituted for a single failed city.
	CityDescription = "Clear sky"
	// SetDescription marks records synthesized because the whole API was unreachable.
	SetDescription = "Weather data unavailable"
)

// ForCity returns the fixed placeholder record used when one city's fetch fails.
func ForCity(city entity.City, now time.Time) entity.WeatherRecord {
	return entity.NewWeatherRecord(city, entity.Measurements{
		Temperature: 20,
		FeelsLike:   20,
		Humidity:    50,
		WindSpeed:   10,
		Pressure:    1013,
		UVIndex:     5,
		Visibility:  10,
		Condition:   entity.ConditionSunny,
		Description: CityDescription,
		ObservedAt:  now,
	})
}

// Generator synthesizes randomized records for the whole catalog.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator seeded from the runtime's random source.
func NewGenerator() *Generator {
	return NewGeneratorWith(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), time.Now)
}

// NewGeneratorWith returns a generator using the given source and clock.
func NewGeneratorWith(rng *rand.Rand, now func() time.Time) *Generator {
	return &Generator{rng: rng, now: now}
}

// ForCatalog returns one synthesized record per city, in order.
func (g *Generator) ForCatalog(cities []entity.City) []entity.WeatherRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	conditions := entity.Conditions()
	now := g.now()
	records := make([]entity.WeatherRecord, 0, len(cities))
	for _, city := range cities {
		records = append(records, entity.NewWeatherRecord(city, entity.Measurements{
			Temperature: g.scaled(40, -5),
			FeelsLike:   g.scaled(40, -5),
			Humidity:    g.scaled(100, 0),
			WindSpeed:   g.scaled(30, 0),
			Pressure:    g.scaled(50, 1000),
			UVIndex:     g.scaled(11, 0),
			Visibility:  g.scaled(20, 5),
			Condition:   conditions[g.rng.IntN(len(conditions))],
			Description: SetDescription,
			ObservedAt:  now,
		}))
	}
	return records
}

// scaled returns round(r*span + offset) for r uniform in [0, 1)
func (g *Generator) scaled(span, offset float64) int {
	return numberutils.RoundToInt(g.rng.Float64()*span + offset)
}
