package filters

// FacetAll is the explicit "no filter" sentinel of every facet.
// Criteria are always fully specified, a facet is never left undefined.
const FacetAll = "all"

func orAll(value string) string {
	if value == "" {
		return FacetAll
	}
	return value
}
