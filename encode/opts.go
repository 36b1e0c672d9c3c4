package encode

type EncodeOption func(*EncState)

// EncodeFormatter replaces the default formatter.
func EncodeFormatter(f *Formatter) EncodeOption {
	return func(es *EncState) {
		if f != nil {
			es.formatter = f
		}
	}
}

// EncodeTheme applies theme on top of the formatter.
func EncodeTheme(theme Theme) EncodeOption {
	return func(es *EncState) { es.theme = theme }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.theme = c.Theme()
		}
	}
}
