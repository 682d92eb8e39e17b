package primitives

import (
	"fmt"
	"strconv"
	"strings"
)

const CURRENCY = "Currency"

// Unit is a currency unit identified by its ISO 4217 code.
type Unit struct {
	code     string
	symbol   string
	fraction int
}

func newUnit(code string, symbol string, fraction int) *Unit {
	return &Unit{code, symbol, fraction}
}

func (u *Unit) Code() string {
	return u.code
}

func (u *Unit) Symbol() string {
	return u.symbol
}

func (u *Unit) FractionDigits() int {
	return u.fraction
}

// FractionMultiplier is the number of fraction units of a whole unit.
func (u *Unit) FractionMultiplier() int {
	m := 1
	for i := 0; i < u.fraction; i++ {
		m *= 10
	}
	return m
}

func (u *Unit) String() string {
	return u.code
}

var (
	AED = newUnit("AED", "", 2)
	ARS = newUnit("ARS", "", 2)
	AUD = newUnit("AUD", "", 2)
	BHD = newUnit("BHD", "", 3)
	BIF = newUnit("BIF", "", 0)
	BRL = newUnit("BRL", "", 2)
	CAD = newUnit("CAD", "", 2)
	CHF = newUnit("CHF", "", 2)
	CLP = newUnit("CLP", "", 0)
	CNY = newUnit("CNY", "", 1)
	CZK = newUnit("CZK", "", 2)
	DKK = newUnit("DKK", "", 2)
	EUR = newUnit("EUR", "€", 2)
	GBP = newUnit("GBP", "£", 2)
	HKD = newUnit("HKD", "", 2)
	HUF = newUnit("HUF", "", 2)
	IDR = newUnit("IDR", "", 0)
	ILS = newUnit("ILS", "", 2)
	INR = newUnit("INR", "", 2)
	ISK = newUnit("ISK", "", 0)
	JOD = newUnit("JOD", "", 3)
	JPY = newUnit("JPY", "¥", 0)
	KRW = newUnit("KRW", "", 0)
	KWD = newUnit("KWD", "", 3)
	MXN = newUnit("MXN", "", 2)
	NOK = newUnit("NOK", "", 2)
	NZD = newUnit("NZD", "", 2)
	OMR = newUnit("OMR", "", 3)
	PLN = newUnit("PLN", "", 2)
	RUB = newUnit("RUB", "", 2)
	SEK = newUnit("SEK", "", 2)
	SGD = newUnit("SGD", "", 2)
	THB = newUnit("THB", "", 2)
	TND = newUnit("TND", "", 3)
	TRY = newUnit("TRY", "", 2)
	TWD = newUnit("TWD", "", 1)
	USD = newUnit("USD", "$", 2)
	VND = newUnit("VND", "", 0)
	ZAR = newUnit("ZAR", "", 2)
)

var units = []*Unit{
	AED, ARS, AUD, BHD, BIF, BRL, CAD, CHF, CLP, CNY, CZK, DKK, EUR, GBP, HKD, HUF, IDR, ILS, INR, ISK,
	JOD, JPY, KRW, KWD, MXN, NOK, NZD, OMR, PLN, RUB, SEK, SGD, THB, TND, TRY, TWD, USD, VND, ZAR,
}

// Units lists all known currency units.
func Units() []*Unit {
	return append([]*Unit(nil), units...)
}

func FindUnitForCode(code string) *Unit {
	code = strings.ToUpper(code)
	for _, u := range units {
		if u.code == code {
			return u
		}
	}
	return nil
}

func FindUnitForSymbol(sym string) *Unit {
	for _, u := range units {
		if u.symbol != "" && u.symbol == sym {
			return u
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////

// CurrencyValue is an amount of money given as sign, whole units
// and fraction units.
type CurrencyValue struct {
	positive bool
	whole    int64
	fraction int
	unit     *Unit
}

var _ PropertyValue = (*CurrencyValue)(nil)

func NewCurrency(positive bool, whole int64, fraction int, unit *Unit) *CurrencyValue {
	return &CurrencyValue{positive, whole, fraction, unit}
}

func (v *CurrencyValue) IsPositive() bool {
	return v.positive
}

func (v *CurrencyValue) Whole() int64 {
	return v.whole
}

func (v *CurrencyValue) Fraction() int {
	return v.fraction
}

func (v *CurrencyValue) Unit() *Unit {
	return v.unit
}

// Float provides the amount as float number.
func (v *CurrencyValue) Float() float64 {
	f := float64(v.whole) + float64(v.fraction)/float64(v.unit.FractionMultiplier())
	if !v.positive {
		return -f
	}
	return f
}

func (v *CurrencyValue) String() string {
	var b strings.Builder
	if !v.positive {
		b.WriteString("-")
	}
	b.WriteString(strconv.FormatInt(v.whole, 10))
	if v.unit.fraction > 0 {
		fmt.Fprintf(&b, ".%0*d", v.unit.fraction, v.fraction)
	}
	b.WriteString(" ")
	b.WriteString(v.unit.code)
	return b.String()
}

func (v *CurrencyValue) DataTypeName() string {
	return CURRENCY
}

func (v *CurrencyValue) Equals(o PropertyValue) bool {
	if c, ok := o.(*CurrencyValue); ok && c != nil {
		return v.unit == c.unit && v.whole == c.whole && v.fraction == c.fraction &&
			(v.positive == c.positive || (v.whole == 0 && v.fraction == 0))
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

type CurrencyDataType struct {
	dataType[*CurrencyValue]
}

var _ DataType = (*CurrencyDataType)(nil)

var TheCurrencyType = &CurrencyDataType{dataType[*CurrencyValue]{name: CURRENCY}}

func (d *CurrencyDataType) DefaultValue() PropertyValue {
	return NewCurrency(true, 1, 0, USD)
}

func (d *CurrencyDataType) Conforms(v PropertyValue) error {
	c, ok, err := d.cast(v)
	if !ok || err != nil {
		return err
	}
	if c.unit == nil {
		return nonConforming(d, c, "missing unit")
	}
	if c.whole < 0 || c.fraction < 0 || c.fraction >= c.unit.FractionMultiplier() {
		return nonConforming(d, c, "invalid amount")
	}
	return nil
}

// Parse accepts amounts followed by an ISO code (1.50 USD)
// or preceded by a unit symbol ($1.50).
func (d *CurrencyDataType) Parse(s string) (PropertyValue, error) {
	l, err := currencyParser.ParseString("", s)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	var unit *Unit
	switch {
	case l.Symbol != "" && l.Code != "":
		return nil, d.parseError(s, fmt.Errorf("symbol and code given"))
	case l.Symbol != "":
		unit = FindUnitForSymbol(l.Symbol)
	case l.Code != "":
		unit = FindUnitForCode(l.Code)
	default:
		return nil, d.parseError(s, fmt.Errorf("missing currency unit"))
	}
	if unit == nil {
		return nil, d.parseError(s, fmt.Errorf("unknown currency unit"))
	}

	w, f, _ := strings.Cut(l.Amount, ".")
	whole, err := strconv.ParseInt(w, 10, 64)
	if err != nil {
		return nil, d.parseError(s, err)
	}
	fraction := 0
	if f != "" {
		if len(f) > unit.fraction {
			return nil, d.parseError(s, fmt.Errorf("%s supports only %d fraction digits", unit.code, unit.fraction))
		}
		fraction, err = strconv.Atoi(f)
		if err != nil {
			return nil, d.parseError(s, err)
		}
		for i := len(f); i < unit.fraction; i++ {
			fraction *= 10
		}
	}
	return NewCurrency(l.Sign != "-", whole, fraction, unit), nil
}

func (d *CurrencyDataType) String() string {
	return d.name
}
