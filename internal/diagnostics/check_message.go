package diagnostics

// SubMessage is leaf-level evidence attached to a check outcome. It is
// never nested further.
type SubMessage struct {
	Message string `json:"message"`
	Passed  bool   `json:"passed"`
}

// CheckMessage is the outcome of one completeness check. Message is fixed
// per check kind; only Passed and SubMessages vary between evaluations.
type CheckMessage struct {
	Message     string       `json:"message"`
	Passed      bool         `json:"passed"`
	SubMessages []SubMessage `json:"sub_messages,omitempty"`
}

// MaturityMessages groups evaluated checks by the maturity tier they gate.
type MaturityMessages struct {
	Experimental []CheckMessage `json:"experimental"`
	Beta         []CheckMessage `json:"beta"`
	Production   []CheckMessage `json:"production"`
}
