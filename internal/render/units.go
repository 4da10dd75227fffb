package render

// Unit is a named scale factor. Length factors are the unit's size in
// mm; angle factors are the unit count in half a turn, with 0 meaning
// "radians, no conversion applied".
type Unit struct {
	Name   string
	Factor float64
}

// LengthUnits are the length units a rendering may be expressed in.
var LengthUnits = []Unit{
	{"mm", 1.0},
	{"light-year", 9.4607e18},
	{"astronomical unit", 149597870700000.0},
	{"parsec", 3.0857e19},

	// Unusual
	{"horizontal pitch", 5.08},
	{"hammer unit", 19.05},
	{"rack U", 44.45},
	{"light-ns", 299.792},
	{"metric foot", 300.0},
	{"horse", 2400.0},
	{"boat", 19000.0},
	{"Manhattan block", 80000.0},
	{"Earth radius", 6371000000.0},
	{"Siriometer", 149.6e18},

	// Humorous
	{"Altuve", 1650.0},
	{"Attoparsec", 30.86},
	{"Beard-second", 10e-6},
	{"Sheppey", 1400000.0},
	{"Smoot", 1700.0},

	// English
	{"line", 2.12},
	{"barleycorn", 8.47},
	{"digit", 19.05},
	{"finger", 22.23},
	{"inch", 25.4},
	{"nail", 57.15},
	{"palm", 76.2},
	{"hand", 101.6},
	{"foot", 304.8},
	{"cubit", 457.2},
	{"yard", 914.0},
	{"ell", 1143.0},
	{"fathom", 1829.0},
	{"rod", 5000.0},
	{"chain", 20116.0},
	{"furlong", 2011680.0},
	{"mile", 1610000.0},
	{"NM", 1852000.0},
	{"league", 4830000.0},
}

// AngleUnits are the angle units a polar rendering may be expressed in.
var AngleUnits = []Unit{
	{"rad", 0},
	{"degree", 180.0},
	{"arcminute", 10800.0},
	{"arcsecond", 1296000.0 / 2.0},
	{"grad", 200.0},
	{"hour angle", 12.0},
	{"compass point", 16.0},
	{"binary degree", 128.0},
	{"quadrant", 2.0},
	{"sextant", 3.0},
	{"hexacontade", 30.0},
	{"diameter part", 376.991 / 2.0},
	{"zam", 112.0},
	{"Akhnam", 16.0},
}
