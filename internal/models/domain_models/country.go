package domain_models

// Country is the canonical externally-sourced description of a nation,
// shaped after the REST Countries v3.1 payload. Immutable once fetched.
type Country struct {
	Name       CountryName         `json:"name"`
	Capital    []string            `json:"capital"`
	Flags      CountryFlags        `json:"flags"`
	LatLng     []float64           `json:"latlng"`
	Population int64               `json:"population"`
	Currencies map[string]Currency `json:"currencies"`
	Languages  map[string]string   `json:"languages"`
	Region     string              `json:"region"`
}

type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

type CountryFlags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Clone deep-copies the country so saved trips stay frozen even if the
// source record is reused for a later journey.
func (c Country) Clone() Country {
	out := c

	out.Capital = append([]string(nil), c.Capital...)
	out.LatLng = append([]float64(nil), c.LatLng...)

	if c.Currencies != nil {
		out.Currencies = make(map[string]Currency, len(c.Currencies))
		for code, cur := range c.Currencies {
			out.Currencies[code] = cur
		}
	}
	if c.Languages != nil {
		out.Languages = make(map[string]string, len(c.Languages))
		for code, name := range c.Languages {
			out.Languages[code] = name
		}
	}
	return out
}
