package subtitle

// output of a single conversion run
type Result struct {
	Document    string
	Captions    []Caption
	Diagnostics []Diagnostic
	Log         Log
}

// reports whether no caption survived parsing. The document is still
// complete but callers should not offer it for export.
func (r Result) Empty() bool {
	return len(r.Captions) == 0
}

// Converter turns SRT text into a styled ASS document. A zero Pool means
// GeneratePool(); a zero Info means DefaultScriptInfo(); a nil Rand means a
// randomly seeded source. Each Convert call uses its own StyleSelector.
type Converter struct {
	Pool []Style
	Info ScriptInfo
	Rand RandSource
}

func NewConverter() *Converter {
	return &Converter{
		Pool: GeneratePool(),
		Info: DefaultScriptInfo(),
	}
}

func (c *Converter) Convert(text string) Result {
	pool := c.Pool
	if len(pool) == 0 {
		pool = GeneratePool()
	}
	info := c.Info
	if info == (ScriptInfo{}) {
		info = DefaultScriptInfo()
	}

	selector := newStyleSelector(pool, c.Rand)

	var log Log
	log.Info("Parsing...")

	captions, diagnostics := ParseSRT(text)
	for _, d := range diagnostics {
		log.Error(d.Message)
	}

	document := NewASSWriter(info).Render(captions, pool, selector)
	log.Info("Parsing complete")

	return Result{
		Document:    document,
		Captions:    captions,
		Diagnostics: diagnostics,
		Log:         log,
	}
}
