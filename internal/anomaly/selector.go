package anomaly

import (
	"errors"

	"go.uber.org/zap"

	"github.com/xtding233/esslend-store/internal/chance"
)

var ErrCatalogEmpty = errors.New("anomaly catalog is empty")

// Selector draws from a catalog, never returning the same id twice in a
// row unless the catalog has a single entry.
type Selector struct {
	catalog Catalog
	rng     chance.RandomSource
	log     *zap.Logger

	lastID  string
	hasLast bool
}

// NewSelector creates a selector over c. A nil rng uses chance.DefaultRNG,
// a nil logger discards output.
func NewSelector(c Catalog, rng chance.RandomSource, log *zap.Logger) *Selector {
	if rng == nil {
		rng = chance.DefaultRNG()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{catalog: c, rng: rng, log: log}
}

func (s *Selector) Catalog() Catalog { return s.catalog }

// Last returns the id of the previous successful draw.
func (s *Selector) Last() (string, bool) { return s.lastID, s.hasLast }

// Draw picks one definition uniformly among the entries whose id differs
// from the previous draw. With a single entry the previous one is eligible.
func (s *Selector) Draw() (Definition, error) {
	if s.catalog.Len() == 0 {
		s.log.Error("anomaly draw failed", zap.Error(ErrCatalogEmpty))
		return Definition{}, ErrCatalogEmpty
	}

	eligible := make([]Definition, 0, s.catalog.Len())
	for _, d := range s.catalog.entries {
		if s.hasLast && d.ID == s.lastID {
			continue
		}
		eligible = append(eligible, d)
	}
	if len(eligible) == 0 {
		eligible = s.catalog.entries
	}

	i, err := chance.Pick(len(eligible), s.rng)
	if err != nil {
		return Definition{}, err
	}
	picked := eligible[i]
	s.lastID, s.hasLast = picked.ID, true
	s.log.Debug("anomaly drawn",
		zap.String("id", picked.ID),
		zap.Int("tier", int(picked.Tier)),
		zap.Int("eligible", len(eligible)),
	)
	return picked, nil
}
