package domain

// Configurable field names, shared by the grouped config, the individual values and the presets.
const (
	FieldMode                      = "mode"
	FieldTokenPreset               = "tokenPreset"
	FieldStickyTopOffset           = "stickyTopOffset"
	FieldStickyWidth               = "stickyWidth"
	FieldStickyMaxWidth            = "stickyMaxWidth"
	FieldStickyBorderRadius        = "stickyBorderRadius"
	FieldStickyShadow              = "stickyShadow"
	FieldTickerBackgroundColor     = "tickerBackgroundColor"
	FieldTickerTextColor           = "tickerTextColor"
	FieldTickerEdgeFadeColor       = "tickerEdgeFadeColor"
	FieldTickerEdgeFadeWidth       = "tickerEdgeFadeWidth"
	FieldTickerItemBackgroundColor = "tickerItemBackgroundColor"
	FieldTickerItemBorderRadius    = "tickerItemBorderRadius"
	FieldTickerItemGap             = "tickerItemGap"
	FieldTickerPaddingY            = "tickerPaddingY"
	FieldTickerItemPadding         = "tickerItemPadding"
	FieldTickerShadow              = "tickerShadow"
	FieldTickerBorderRadius        = "tickerBorderRadius"
	FieldTickerSpeedSeconds        = "tickerSpeedSeconds"
	FieldInfoColor                 = "infoColor"
	FieldErrorColor                = "errorColor"
	FieldWarningColor              = "warningColor"
	FieldSuccessColor              = "successColor"
)

// FieldKind selects the normalizer applied to a resolved raw value.
type FieldKind int

const (
	KindEnum FieldKind = iota
	KindLength
	KindString
	KindPositiveNumber
	KindColor
)

// Field describes one configurable field.
type Field struct {
	Name string
	Kind FieldKind
	// Token fields fall back to the active preset and can be overridden per field.
	Token bool
	// Integer fields are exchanged with the editor shell as integers.
	Integer bool
}

// Fields is the catalog of fields a host can configure, in editor order.
var Fields = []Field{
	{Name: FieldMode, Kind: KindEnum},
	{Name: FieldTokenPreset, Kind: KindEnum},
	{Name: FieldStickyTopOffset, Kind: KindLength, Token: true},
	{Name: FieldStickyWidth, Kind: KindLength, Token: true},
	{Name: FieldStickyMaxWidth, Kind: KindLength, Token: true},
	{Name: FieldStickyBorderRadius, Kind: KindLength, Token: true},
	{Name: FieldStickyShadow, Kind: KindString, Token: true},
	{Name: FieldTickerBackgroundColor, Kind: KindString, Token: true},
	{Name: FieldTickerTextColor, Kind: KindString, Token: true},
	{Name: FieldTickerEdgeFadeColor, Kind: KindString, Token: true},
	{Name: FieldTickerEdgeFadeWidth, Kind: KindLength, Token: true},
	{Name: FieldTickerItemBackgroundColor, Kind: KindString, Token: true},
	{Name: FieldTickerSpeedSeconds, Kind: KindPositiveNumber, Token: true, Integer: true},
	{Name: FieldInfoColor, Kind: KindColor},
	{Name: FieldErrorColor, Kind: KindColor},
	{Name: FieldWarningColor, Kind: KindColor},
	{Name: FieldSuccessColor, Kind: KindColor},
}

// LookupField returns the catalog entry for name.
func LookupField(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// TokenFields returns the names of the preset-backed fields a host may override.
func TokenFields() []string {
	names := make([]string, 0, len(Fields))
	for _, f := range Fields {
		if f.Token {
			names = append(names, f.Name)
		}
	}
	return names
}

// IsIntegerField reports whether the field is exchanged as an integer.
func IsIntegerField(name string) bool {
	f, ok := LookupField(name)
	return ok && f.Integer
}

// IsTokenField reports whether the field is preset-backed.
func IsTokenField(name string) bool {
	f, ok := LookupField(name)
	return ok && f.Token
}
