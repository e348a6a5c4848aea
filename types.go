package gettext

// Value is one node of a message tree. The set of implementations is closed:
// Text, Integer, Float, Bool, Unit, Datetime, Array, FormattedText and the
// seven translation calls.
type Value interface {
	value()
}

// Argument carries the substitution arguments attached to a node. It is
// either Positional or Keyword; a nil Argument means no explicit arguments.
type Argument interface {
	argument()
}

// Text is a literal string rendered as-is.
type Text string

// Integer renders as its decimal representation.
type Integer int64

// Float renders as its shortest decimal representation.
type Float float64

// Bool renders as the translated "yes" or "no" token.
type Bool bool

// Unit is the absence of a value, rendered as the translated "n/a" token.
type Unit struct{}

// Datetime is a unix timestamp rendered through a strftime style pattern.
type Datetime struct {
	Pattern string
	Epoch   int64
}

// Array joins its elements with the first element used as separator.
type Array []Value

// FormattedText substitutes Args into Text without any translation lookup.
type FormattedText struct {
	Text string
	Args Argument
}

// GetText translates MsgID.
type GetText struct {
	MsgID string
	Args  Argument
}

// NGetText translates a plural message for count N.
type NGetText struct {
	Singular string
	Plural   string
	N        uint32
	Args     Argument
}

// PGetText translates MsgID under a disambiguating context.
type PGetText struct {
	Context string
	MsgID   string
	Args    Argument
}

// DGetText translates MsgID within Domain.
type DGetText struct {
	Domain string
	MsgID  string
	Args   Argument
}

// DNGetText translates a plural message within Domain.
type DNGetText struct {
	Domain   string
	Singular string
	Plural   string
	N        uint32
	Args     Argument
}

// NPGetText translates a plural message under a disambiguating context.
type NPGetText struct {
	Context  string
	Singular string
	Plural   string
	N        uint32
	Args     Argument
}

// DCNGetText translates a plural message within Domain for a locale category.
type DCNGetText struct {
	Domain   string
	Singular string
	Plural   string
	N        uint32
	Category LocaleCategory
	Args     Argument
}

func (Text) value()          {}
func (Integer) value()       {}
func (Float) value()         {}
func (Bool) value()          {}
func (Unit) value()          {}
func (Datetime) value()      {}
func (Array) value()         {}
func (FormattedText) value() {}
func (GetText) value()       {}
func (NGetText) value()      {}
func (PGetText) value()      {}
func (DGetText) value()      {}
func (DNGetText) value()     {}
func (NPGetText) value()     {}
func (DCNGetText) value()    {}

// Positional arguments fill %s style placeholders in order.
type Positional []Value

// Keyword arguments fill %(name)s style placeholders.
type Keyword map[string]Value

func (Positional) argument() {}
func (Keyword) argument()    {}
