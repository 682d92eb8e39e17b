// Package random provides random property values for the
// population of mesh bases with test data.
package random

import (
	"math/rand"
	"strings"
	"time"

	"github.com/goombaio/namegenerator"

	"github.com/mandelsoft/meshmodel/pkg/model/primitives"
)

var currencies = []string{"USD", "EUR", "GBP", "JPY", "CHF"}

type Generator struct {
	rand  *rand.Rand
	names namegenerator.Generator
}

func New(seed ...int64) *Generator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &Generator{
		rand:  rand.New(rand.NewSource(s)),
		names: namegenerator.NewNameGenerator(s),
	}
}

func (g *Generator) Name() string {
	return g.names.Generate()
}

func (g *Generator) Chance(percent int) bool {
	return g.rand.Intn(100) < percent
}

// Value provides a random value conforming to the given data type.
// If no conforming value can be generated, false is returned.
func (g *Generator) Value(dt primitives.DataType) (primitives.PropertyValue, bool) {
	var v primitives.PropertyValue

	switch t := dt.(type) {
	case *primitives.StringDataType:
		v = primitives.NewString(g.Name())
	case *primitives.BlobDataType:
		mime := t.DefaultMimeType()
		if !strings.HasPrefix(mime, "text/") {
			return nil, false
		}
		if mime == primitives.MIME_TEXT_HTML {
			v = primitives.NewTextBlob(mime, "<p>"+g.Name()+"</p>")
		} else {
			v = primitives.NewTextBlob(mime, g.Name())
		}
	case *primitives.BooleanDataType:
		v = primitives.NewBoolean(g.rand.Intn(2) == 1)
	case *primitives.ColorDataType:
		v = primitives.NewColor(g.rand.Intn(256), g.rand.Intn(256), g.rand.Intn(256), 255)
	case *primitives.CurrencyDataType:
		u := primitives.FindUnitForCode(currencies[g.rand.Intn(len(currencies))])
		if u == nil {
			return nil, false
		}
		v = primitives.NewCurrency(true, g.rand.Int63n(10000), g.rand.Intn(100), u)
	case *primitives.EnumeratedDataType:
		domain := t.Domain()
		v = domain[g.rand.Intn(len(domain))]
	case *primitives.ExtentDataType:
		v = primitives.NewExtent(float64(g.rand.Intn(1000)), float64(g.rand.Intn(1000)))
	case *primitives.FloatDataType:
		v = primitives.NewFloat(g.float(t.Min(), t.Max()))
	case *primitives.IntegerDataType:
		v = primitives.NewInteger(g.integer(t.Min(), t.Max()))
	case *primitives.MultiplicityDataType:
		min := g.rand.Intn(3)
		max := primitives.N
		if g.Chance(50) {
			max = min + g.rand.Intn(5) + 1
		}
		v = primitives.NewMultiplicity(min, max)
	case *primitives.PointDataType:
		v = primitives.NewPoint(float64(g.rand.Intn(2000)-1000), float64(g.rand.Intn(2000)-1000))
	case *primitives.TimePeriodDataType:
		v = primitives.NewTimePeriod(g.rand.Intn(5), g.rand.Intn(12), g.rand.Intn(28), g.rand.Intn(24), g.rand.Intn(60), float64(g.rand.Intn(60)))
	case *primitives.TimeStampDataType:
		v = primitives.NewTimeStampFor(time.Now().Add(-time.Duration(g.rand.Int63n(int64(365 * 24 * time.Hour)))))
	default:
		return nil, false
	}
	if dt.Conforms(v) != nil {
		return nil, false
	}
	return v, true
}

func (g *Generator) float(min, max *float64) float64 {
	lo, hi := -1000.0, 1000.0
	if min != nil {
		lo = *min
		if max == nil {
			hi = lo + 1000
		}
	}
	if max != nil {
		hi = *max
		if min == nil {
			lo = hi - 1000
		}
	}
	return lo + g.rand.Float64()*(hi-lo)
}

func (g *Generator) integer(min, max *int64) int64 {
	lo, hi := int64(-1000), int64(1000)
	if min != nil {
		lo = *min
		if max == nil {
			hi = lo + 1000
		}
	}
	if max != nil {
		hi = *max
		if min == nil {
			lo = hi - 1000
		}
	}
	return lo + g.rand.Int63n(hi-lo+1)
}
