package core

type testColor string

const (
	colorRed  testColor = "red"
	colorBlue testColor = "blue"
)

func (testColor) KnownValues() []testColor { return []testColor{colorRed, colorBlue} }

type testLevel int

const (
	levelLow  testLevel = 1
	levelHigh testLevel = 2
)

func (testLevel) KnownValues() []testLevel { return []testLevel{levelLow, levelHigh} }

type widgetPart struct{ Object }

var (
	partSKU    = NewField[string]("widgetPart", "sku", Required)
	partColor  = NewField[Enum[testColor]]("widgetPart", "color")
	partSchema = NewSchema("widgetPart", partSKU, partColor)
)

func (p *widgetPart) Validate() error { return partSchema.Validate(&p.Object) }

type widget struct{ Object }

var (
	widgetName   = NewField[string]("widget", "name", Required)
	widgetCount  = NewField[int64]("widget", "count")
	widgetNote   = NewField[string]("widget", "note", Nullable)
	widgetParts  = NewField[[]widgetPart]("widget", "parts", Nullable)
	widgetMain   = NewField[widgetPart]("widget", "main_part")
	widgetTags   = NewField[map[string]Enum[testColor]]("widget", "tags", Nullable)
	widgetLabel  = NewField[string]("widget", "label", Required, Nullable)
	widgetSchema = NewSchema("widget", widgetName, widgetCount, widgetNote, widgetParts, widgetMain, widgetTags, widgetLabel)
)

func (w *widget) Validate() error { return widgetSchema.Validate(&w.Object) }

func newPart(sku string, color Enum[testColor]) widgetPart {
	var p widgetPart
	partSKU.Set(&p.Object, sku)
	partColor.Set(&p.Object, color)
	return p
}

func newValidWidget() *widget {
	w := &widget{}
	widgetName.Set(&w.Object, "w-1")
	widgetLabel.SetNull(&w.Object)
	return w
}
