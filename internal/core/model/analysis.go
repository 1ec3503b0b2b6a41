package model

// Notice levels mirror how the page styles a message.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// TableStats describes row-level redundancy in an InteractionTable.
type TableStats struct {
	Rows          int `json:"rows"`
	DistinctPairs int `json:"distinct_pairs"`
	DuplicateRows int `json:"duplicate_rows"`
	SelfLoops     int `json:"self_loops"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Analysis is the render description produced for one user action.
type Analysis struct {
	ID          string           `json:"id"`
	Protein     string           `json:"protein"`
	Provider    string           `json:"provider"`
	Table       InteractionTable `json:"table"`
	Notices     []Notice         `json:"notices,omitempty"`
	NodeCount   int              `json:"node_count"`
	EdgeCount   int              `json:"edge_count"`
	Stats       TableStats       `json:"stats"`
	Components  []int            `json:"components,omitempty"`
	Communities map[string]int   `json:"communities,omitempty"`
	Nodes       []string         `json:"nodes,omitempty"`
	Edges       []GraphEdge      `json:"edges,omitempty"`
	Layout      map[string]Point `json:"layout,omitempty"`
	Rankings    []Ranking        `json:"rankings,omitempty"`
	Summary     string           `json:"summary,omitempty"`
}

func (a *Analysis) AddNotice(level, msg string) {
	a.Notices = append(a.Notices, Notice{Level: level, Message: msg})
}

// HasGraph reports whether the drawing and rankings should be shown.
func (a *Analysis) HasGraph() bool {
	return a.NodeCount > 0
}

// HubSummary is the JSON shape the narrator asks the LLM to answer with.
type HubSummary struct {
	Summary string `json:"summary"`
}
