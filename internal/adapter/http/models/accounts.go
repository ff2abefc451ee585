package models

type AccountResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
