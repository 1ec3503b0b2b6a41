package model

// InteractionRecord is one reported interaction between two gene/protein symbols.
type InteractionRecord struct {
	SymbolA string `json:"symbol_a"`
	SymbolB string `json:"symbol_b"`
}

// InteractionTable is the provider-independent two-column view of a response.
// Columns carries the provider's field names for display; records keep
// response order and are never deduplicated.
type InteractionTable struct {
	Columns [2]string           `json:"columns"`
	Records []InteractionRecord `json:"records"`
}

func NewInteractionTable(colA, colB string) InteractionTable {
	return InteractionTable{Columns: [2]string{colA, colB}}
}

func (t *InteractionTable) Append(a, b string) {
	t.Records = append(t.Records, InteractionRecord{SymbolA: a, SymbolB: b})
}

func (t InteractionTable) Len() int {
	return len(t.Records)
}

func (t InteractionTable) Empty() bool {
	return len(t.Records) == 0
}
