package ledger

// Block is a single entry of the transcript.
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Exchange  Exchange `json:"exchange"`
}

// Exchange is a revealed commit-reveal exchange.
type Exchange struct {
	Stage        string `json:"stage"`
	Range        int    `json:"range"`
	Commitment   string `json:"commitment"`
	Contribution int    `json:"contribution"`
	Value        int    `json:"value"`
	Key          string `json:"key"`
	Index        int    `json:"index"`
	Verified     bool   `json:"verified"`
}
