package locale

// NewEnUS builds the "en-US" bundle gocsl ships out of the box. It
// also serves as the data behind the "en" and "root" (invariant)
// codes: in real deployments those would be distinct, sparser CSL
// locale XML files, but a single populated table is enough to drive
// the rendering core end to end without an XML parser (out of scope
// for this package).
func NewEnUS(code string) *BuiltinProvider {
	p := NewBuiltinProvider(code)

	p.SetTerm("et-al", Long, false, "et al.")
	p.SetTermBoth("and", Long, "and")
	p.SetTermBoth("and", Symbol, "&")

	p.SetTerm("page", Long, false, "page")
	p.SetTerm("page", Long, true, "pages")
	p.SetTerm("page", Short, false, "p.")
	p.SetTerm("page", Short, true, "pp.")
	p.SetTerm("page-range-delimiter", Long, false, "–")

	p.SetTerm("editor", Long, false, "editor")
	p.SetTerm("editor", Long, true, "editors")
	p.SetTerm("editor", Short, false, "ed.")
	p.SetTerm("editor", Short, true, "eds.")
	p.SetTerm("translator", Long, false, "translator")
	p.SetTerm("translator", Long, true, "translators")
	p.SetTerm("translator", Short, false, "trans.")
	p.SetTerm("translator", Short, true, "trans.")
	p.SetTerm("editortranslator", Long, false, "editor & translator")
	p.SetTerm("editortranslator", Long, true, "editors & translators")
	p.SetTerm("author", Long, false, "author")
	p.SetTerm("author", Long, true, "authors")

	p.SetTerm("bc", Long, false, "BC")
	p.SetTerm("ad", Long, false, "AD")

	p.SetTerm("open-quote", Long, false, "“")
	p.SetTerm("close-quote", Long, false, "”")
	p.SetTerm("open-inner-quote", Long, false, "‘")
	p.SetTerm("close-inner-quote", Long, false, "’")

	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthsShort := []string{
		"Jan.", "Feb.", "Mar.", "Apr.", "May", "Jun.",
		"Jul.", "Aug.", "Sep.", "Oct.", "Nov.", "Dec.",
	}
	for i, m := range months {
		name := monthTermName(i + 1)
		p.SetTerm(name, Long, false, m)
		p.SetTerm(name, Short, false, monthsShort[i])
	}
	seasons := []string{"Spring", "Summer", "Autumn", "Winter"}
	for i, s := range seasons {
		p.SetTerm(seasonTermName(i+1), Long, false, s)
	}

	p.SetLimitDayOrdinalsToDay1(true)

	p.SetDateParts(NumericDate, []DatePart{
		{Name: PartMonth, Format: PartNumeric, Suffix: "/"},
		{Name: PartDay, Format: PartNumeric, Suffix: "/"},
		{Name: PartYear, Format: PartNumeric},
	})
	p.SetDateParts(TextDate, []DatePart{
		{Name: PartMonth, Format: PartLong, Suffix: " "},
		{Name: PartDay, Format: PartNumeric, Suffix: ", "},
		{Name: PartYear, Format: PartNumeric},
	})

	return p
}

func monthTermName(n int) string {
	names := [...]string{
		1: "month-01", 2: "month-02", 3: "month-03", 4: "month-04",
		5: "month-05", 6: "month-06", 7: "month-07", 8: "month-08",
		9: "month-09", 10: "month-10", 11: "month-11", 12: "month-12",
	}
	return names[n]
}

func seasonTermName(n int) string {
	names := [...]string{
		1: "season-01", 2: "season-02", 3: "season-03", 4: "season-04",
	}
	return names[n]
}
