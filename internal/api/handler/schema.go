package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// viewerResponse is the slim identity shown on every portal page.
type viewerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// pageResponse is the document rendered for a portal page.
type pageResponse struct {
	Page   string          `json:"page"`
	Title  string          `json:"title"`
	Viewer *viewerResponse `json:"viewer,omitempty"`
	Data   any             `json:"data,omitempty"`
}

type candidateItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Stage    string `json:"stage"`
	ClientID string `json:"client_id"`
}

type jobItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ClientID string `json:"client_id"`
	Status   string `json:"status"`
	Openings int    `json:"openings"`
}

type invoiceItem struct {
	ID       string  `json:"id"`
	ClientID string  `json:"client_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

type checklistItem struct {
	Task string `json:"task"`
	Done bool   `json:"done"`
}

type kpiItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}
