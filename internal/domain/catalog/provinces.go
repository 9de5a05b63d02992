package catalog

// Province is a fixed reference entry used to validate and display the
// project's location. The planner itself does not derive anything from it.
type Province struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var provinces = []Province{
	{ID: "caba", Name: "Ciudad de Buenos Aires"},
	{ID: "buenosaires", Name: "Buenos Aires (Provincia)"},
	{ID: "cordoba", Name: "Córdoba"},
	{ID: "santafe", Name: "Santa Fe"},
	{ID: "entrerios", Name: "Entre Ríos"},
	{ID: "misiones", Name: "Misiones"},
	{ID: "corrientes", Name: "Corrientes"},
	{ID: "mendoza", Name: "Mendoza"},
	{ID: "sanjuan", Name: "San Juan"},
	{ID: "sanluis", Name: "San Luis"},
	{ID: "salta", Name: "Salta"},
	{ID: "jujuy", Name: "Jujuy"},
	{ID: "tucuman", Name: "Tucumán"},
	{ID: "catamarca", Name: "Catamarca"},
	{ID: "neuquen", Name: "Neuquén"},
	{ID: "rionegro", Name: "Río Negro"},
	{ID: "chubut", Name: "Chubut"},
}

// Provinces returns the full reference list.
func Provinces() []Province {
	out := make([]Province, len(provinces))
	copy(out, provinces)
	return out
}

// ProvinceByID looks up a province by its identifier.
func ProvinceByID(id string) (Province, bool) {
	for _, p := range provinces {
		if p.ID == id {
			return p, true
		}
	}
	return Province{}, false
}
