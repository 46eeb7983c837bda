package handler

// Static mock content for the portal pages.

var mockCandidates = []candidateItem{
	{ID: "cand_001", Name: "Jordan Blake", Title: "Senior Go Engineer", Stage: "interview", ClientID: "client_001"},
	{ID: "cand_002", Name: "Priya Natarajan", Title: "Data Analyst", Stage: "screening", ClientID: "client_002"},
	{ID: "cand_003", Name: "Mateo Ruiz", Title: "DevOps Engineer", Stage: "offer", ClientID: "client_001"},
	{ID: "cand_004", Name: "Amara Okafor", Title: "Product Designer", Stage: "sourced", ClientID: "client_003"},
}

var mockJobs = []jobItem{
	{ID: "job_101", Title: "Senior Go Engineer", ClientID: "client_001", Status: "open", Openings: 2},
	{ID: "job_102", Title: "Data Analyst", ClientID: "client_002", Status: "open", Openings: 1},
	{ID: "job_103", Title: "Product Designer", ClientID: "client_003", Status: "on_hold", Openings: 1},
}

var mockInvoices = []invoiceItem{
	{ID: "inv_2026_031", ClientID: "client_001", Amount: 18500, Currency: "USD", Status: "paid"},
	{ID: "inv_2026_032", ClientID: "client_002", Amount: 9200, Currency: "USD", Status: "pending"},
}

var mockOnboarding = []checklistItem{
	{Task: "Sign offer letter", Done: true},
	{Task: "Submit tax forms", Done: true},
	{Task: "Background check", Done: false},
	{Task: "Equipment request", Done: false},
}

var mockKPIs = []kpiItem{
	{Label: "Active placements", Value: 42},
	{Label: "Open requisitions", Value: 17},
	{Label: "Time to fill", Value: 23.5, Unit: "days"},
	{Label: "Monthly revenue", Value: 184000, Unit: "USD"},
}
